package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/vjay-git/shivashray/models"
)

// AuthService handles registration and credential checks. Token issuance
// lives in utils/jwt.go; this layer only deals in users and passwords.
type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Phone    string
}

func (s *AuthService) Register(in RegisterInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, validationf("a valid email is required")
	}
	if len(in.Password) < 8 {
		return nil, validationf("password must be at least 8 characters")
	}
	if strings.TrimSpace(in.FullName) == "" {
		return nil, validationf("full_name is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:          email,
		HashedPassword: string(hash),
		FullName:       strings.TrimSpace(in.FullName),
		Phone:          strings.TrimSpace(in.Phone),
		IsActive:       true,
		Role:           models.RoleGuest,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		if isDuplicateKeyErr(err) {
			return nil, conflictf("email already registered")
		}
		return nil, err
	}
	return &user, nil
}

// Authenticate verifies credentials and returns the active user. The same
// error covers unknown email, bad password and deactivated accounts so the
// response does not leak which one it was.
func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, forbiddenf("invalid credentials")
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, forbiddenf("invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) != nil {
		return nil, forbiddenf("invalid credentials")
	}
	return &user, nil
}

// GetUser resolves the principal attached by the auth middleware.
func (s *AuthService) GetUser(userID uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("user %d not found", userID)
		}
		return nil, err
	}
	return &user, nil
}
