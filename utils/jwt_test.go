package utils

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	const secret = "testsecret"

	token, err := CreateToken(secret, 42, "admin")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := ValidateToken(secret, token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != 42 || claims.Role != "admin" {
		t.Fatalf("claims = %+v, want userId=42 role=admin", claims)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := CreateToken("secret-a", 1, "guest")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ValidateToken("secret-b", token); err == nil {
		t.Fatal("token verified with the wrong secret")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateToken("secret", ""); err == nil {
		t.Fatal("empty token accepted")
	}
	if _, err := ValidateToken("secret", "not.a.token"); err == nil {
		t.Fatal("malformed token accepted")
	}
}
