package jwt

import (
	"strings"
	"testing"
	"time"

	"surgitrack/config"

	"github.com/google/uuid"
)

func testConfig(expiry time.Duration) config.SessionConfig {
	return config.SessionConfig{
		Secret:     "test-secret",
		Expiry:     expiry,
		CookieName: "token",
	}
}

func TestGenerateAndValidate(t *testing.T) {
	svc := NewTokenService(testConfig(time.Hour))
	accountID := uuid.New()

	token, err := svc.Generate(accountID, "doc@example.com")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.AccountID != accountID {
		t.Errorf("AccountID = %s, want %s", claims.AccountID, accountID)
	}
	if claims.Email != "doc@example.com" {
		t.Errorf("Email = %s, want doc@example.com", claims.Email)
	}
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		t.Fatal("expected issued-at and expires-at to be set")
	}
	gotExpiry := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if gotExpiry != time.Hour {
		t.Errorf("expiry window = %s, want 1h", gotExpiry)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := NewTokenService(testConfig(-time.Minute))

	token, err := svc.Generate(uuid.New(), "doc@example.com")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := svc.Validate(token); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestValidateTamperedToken(t *testing.T) {
	svc := NewTokenService(testConfig(time.Hour))

	token, err := svc.Generate(uuid.New(), "doc@example.com")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	// Flip one byte of the signature.
	last := token[len(token)-1]
	replacement := byte('A')
	if last == replacement {
		replacement = 'B'
	}
	tampered := token[:len(token)-1] + string(replacement)

	if _, err := svc.Validate(tampered); err == nil {
		t.Error("expected error for tampered token")
	}
}

func TestValidateWrongSecret(t *testing.T) {
	svc := NewTokenService(testConfig(time.Hour))
	other := NewTokenService(config.SessionConfig{Secret: "other-secret", Expiry: time.Hour})

	token, err := svc.Generate(uuid.New(), "doc@example.com")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := other.Validate(token); err == nil {
		t.Error("expected error for token signed with a different secret")
	}
}

func TestValidateGarbage(t *testing.T) {
	svc := NewTokenService(testConfig(time.Hour))

	for _, token := range []string{"", "not-a-token", strings.Repeat("x", 200)} {
		if _, err := svc.Validate(token); err == nil {
			t.Errorf("expected error for token %q", token)
		}
	}
}
