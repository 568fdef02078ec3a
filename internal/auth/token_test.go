package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndParse(t *testing.T) {
	tm := NewTokenManager("test-secret", 30)

	token, err := tm.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	email, err := tm.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if email != "alice@example.com" {
		t.Errorf("Parse subject = %q, want %q", email, "alice@example.com")
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-one", 30).Issue("alice@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := NewTokenManager("secret-two", 30).Parse(token); err == nil {
		t.Error("Parse accepted a token signed with a different secret")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	tm := NewTokenManager("test-secret", 30)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice@example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}

	if _, err := tm.Parse(token); err == nil {
		t.Error("Parse accepted an expired token")
	}
}

func TestParseRejectsMissingSubject(t *testing.T) {
	tm := NewTokenManager("test-secret", 30)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}

	if _, err := tm.Parse(token); err == nil {
		t.Error("Parse accepted a token without a subject")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", 30)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := tm.Parse(token); err == nil {
			t.Errorf("Parse accepted %q", token)
		}
	}
}
