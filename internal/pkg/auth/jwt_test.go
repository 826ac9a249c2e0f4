package auth

import (
	"errors"
	"testing"
	"time"
)

func newTestJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		SessionExp:  exp,
		TokenIssuer: "sibeca-test",
	})
}

func TestSessionTokenRoundTrip(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	token, expiry, err := svc.GenerateSessionToken(42, "alumno@uni.edu", "Ana Torres", "alumno")
	if err != nil {
		t.Fatalf("GenerateSessionToken() error = %v", err)
	}
	if time.Until(expiry) <= 0 {
		t.Fatalf("expiry %v is not in the future", expiry)
	}

	claims, err := svc.ValidateSessionToken(token)
	if err != nil {
		t.Fatalf("ValidateSessionToken() error = %v", err)
	}

	if claims.AccountID != 42 {
		t.Errorf("AccountID = %d, want 42", claims.AccountID)
	}
	if claims.Email != "alumno@uni.edu" {
		t.Errorf("Email = %q, want alumno@uni.edu", claims.Email)
	}
	if claims.FullName != "Ana Torres" {
		t.Errorf("FullName = %q, want Ana Torres", claims.FullName)
	}
	if claims.Role != "alumno" {
		t.Errorf("Role = %q, want alumno", claims.Role)
	}
	if claims.Issuer != "sibeca-test" {
		t.Errorf("Issuer = %q, want sibeca-test", claims.Issuer)
	}
}

func TestValidateSessionTokenExpired(t *testing.T) {
	svc := newTestJWTService(-time.Minute)

	token, _, err := svc.GenerateSessionToken(1, "a@b.c", "A", "alumno")
	if err != nil {
		t.Fatalf("GenerateSessionToken() error = %v", err)
	}

	if _, err := svc.ValidateSessionToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("ValidateSessionToken() error = %v, want ErrExpiredToken", err)
	}
}

func TestValidateSessionTokenWrongSecret(t *testing.T) {
	token, _, err := newTestJWTService(time.Hour).GenerateSessionToken(1, "a@b.c", "A", "alumno")
	if err != nil {
		t.Fatalf("GenerateSessionToken() error = %v", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "another-secret", SessionExp: time.Hour, TokenIssuer: "sibeca-test"})
	if _, err := other.ValidateSessionToken(token); err == nil {
		t.Error("ValidateSessionToken() accepted a token signed with a different secret")
	}
}

func TestValidateSessionTokenGarbage(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	if _, err := svc.ValidateSessionToken("not.a.token"); err == nil {
		t.Error("ValidateSessionToken() accepted garbage input")
	}
}
