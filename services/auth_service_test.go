package services

import (
	"errors"
	"testing"

	"github.com/vjay-git/shivashray/models"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	user, err := svc.Register(RegisterInput{
		Email:    " Asha@Example.com ",
		Password: "supersecret",
		FullName: "Asha Verma",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "asha@example.com" {
		t.Errorf("email = %q, want normalized lowercase", user.Email)
	}
	if user.Role != models.RoleGuest {
		t.Errorf("role = %q, new users must be guests", user.Role)
	}
	if user.HashedPassword == "supersecret" {
		t.Error("password stored in plain text")
	}

	got, err := svc.Authenticate("asha@example.com", "supersecret")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("authenticated user %d, want %d", got.ID, user.ID)
	}

	if _, err := svc.Authenticate("asha@example.com", "wrongpass"); !errors.Is(err, ErrForbidden) {
		t.Errorf("wrong password: got %v, want ErrForbidden", err)
	}
	if _, err := svc.Authenticate("nobody@example.com", "supersecret"); !errors.Is(err, ErrForbidden) {
		t.Errorf("unknown email: got %v, want ErrForbidden", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	if _, err := svc.Register(RegisterInput{Email: "bad", Password: "supersecret", FullName: "X"}); !errors.Is(err, ErrValidation) {
		t.Errorf("bad email: got %v, want ErrValidation", err)
	}
	if _, err := svc.Register(RegisterInput{Email: "a@b.com", Password: "short", FullName: "X"}); !errors.Is(err, ErrValidation) {
		t.Errorf("short password: got %v, want ErrValidation", err)
	}
	if _, err := svc.Register(RegisterInput{Email: "a@b.com", Password: "supersecret", FullName: " "}); !errors.Is(err, ErrValidation) {
		t.Errorf("blank name: got %v, want ErrValidation", err)
	}

	if _, err := svc.Register(RegisterInput{Email: "a@b.com", Password: "supersecret", FullName: "X"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Register(RegisterInput{Email: "a@b.com", Password: "supersecret", FullName: "Y"}); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate email: got %v, want ErrConflict", err)
	}
}

func TestAuthenticateRejectsInactiveUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	user, err := svc.Register(RegisterInput{Email: "a@b.com", Password: "supersecret", FullName: "X"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := db.Model(user).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	if _, err := svc.Authenticate("a@b.com", "supersecret"); !errors.Is(err, ErrForbidden) {
		t.Errorf("inactive user: got %v, want ErrForbidden", err)
	}
}
