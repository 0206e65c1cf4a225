package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := IssueToken("user-123")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if token == "" {
		t.Fatal("IssueToken returned empty token")
	}

	userID, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if userID != "user-123" {
		t.Fatalf("got user id %q, want %q", userID, "user-123")
	}
}

func TestParseTokenRejectsInvalid(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	issued, err := IssueToken("user-123")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	cases := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-token"},
		{"tampered", issued + "x"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseToken(tc.token); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	claims := TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	claims.User.ID = "user-123"
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ParseToken(signed); err == nil {
		t.Fatal("expired token should not verify")
	}
}

func TestEnsureSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if err := EnsureSecret(); err == nil {
		t.Fatal("empty secret should be rejected")
	}

	t.Setenv("JWT_SECRET", "configured")
	if err := EnsureSecret(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := IssueToken("user-123")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	t.Setenv("JWT_SECRET", "second-secret")
	if _, err := ParseToken(token); err == nil {
		t.Fatal("token signed with old secret should not verify")
	}
}
