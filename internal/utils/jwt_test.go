package utils

import (
	"testing"
	"time"
)

func TestGenerateJWTToken_Roundtrip(t *testing.T) {
	token, err := GenerateJWTToken("refgame-tracker", 42, time.Hour, "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.SignedString == "" {
		t.Fatal("expected non-empty signed string")
	}

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "secret", "refgame-tracker")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.UserID != 42 {
		t.Errorf("expected UserID=42, got %d", parsed.UserID)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{name: "empty issuer", issuer: "", duration: time.Hour, key: "secret"},
		{name: "zero duration", issuer: "svc", duration: 0, key: "secret"},
		{name: "empty key", issuer: "svc", duration: time.Hour, key: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	token, err := GenerateJWTToken("svc", 1, time.Hour, "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err = ValidateAndParseJWTToken(token.SignedString, "other-key", "svc"); err == nil {
		t.Error("expected validation error for wrong key")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	token, err := GenerateJWTToken("svc", 1, time.Hour, "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err = ValidateAndParseJWTToken(token.SignedString, "secret", "someone-else"); err == nil {
		t.Error("expected validation error for wrong issuer")
	}
}

func TestParseBearerToken(t *testing.T) {
	raw, err := ParseBearerToken("Bearer abc.def.ghi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw != "abc.def.ghi" {
		t.Errorf("expected token part, got %q", raw)
	}

	if _, err = ParseBearerToken("Bearer"); err == nil {
		t.Error("expected error for header without token")
	}
	if _, err = ParseBearerToken(""); err == nil {
		t.Error("expected error for empty header")
	}
}

func TestParseUserIDFromJWT(t *testing.T) {
	token, err := GenerateJWTToken("svc", 99, time.Hour, "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id, err := ParseUserIDFromJWT(token.SignedString)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 99 {
		t.Errorf("expected 99, got %d", id)
	}
}
