package auth

import (
	"errors"
	"testing"
	"time"
)

func newTestService(expiry time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExpiry: expiry,
		TokenIssuer: "groupdesk.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(time.Hour)

	token, expiresIn, err := svc.GenerateToken(42, "ops@groupdesk.app", "ADMIN")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if expiresIn != 3600 {
		t.Errorf("expected expiresIn 3600, got %d", expiresIn)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "ops@groupdesk.app" || claims.Role != "ADMIN" {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if claims.Issuer != "groupdesk.test" {
		t.Errorf("unexpected issuer %q", claims.Issuer)
	}
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, _, err := svc.GenerateToken(1, "ops@groupdesk.app", "OPERATOR")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := newTestService(time.Hour)
	other := NewJWTService(JWTConfig{SecretKey: "other-secret", TokenExpiry: time.Hour, TokenIssuer: "groupdesk.test"})

	token, _, err := svc.GenerateToken(1, "ops@groupdesk.app", "OPERATOR")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := other.ValidateToken(token); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "abc.def.ghi" {
		t.Errorf("unexpected token %q", token)
	}

	if _, err := ExtractBearerToken(""); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("empty header: expected ErrInvalidFormat, got %v", err)
	}

	// A header without the Bearer prefix is taken as the raw token.
	raw, err := ExtractBearerToken("abc.def.ghi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw != "abc.def.ghi" {
		t.Errorf("unexpected raw token %q", raw)
	}
}
