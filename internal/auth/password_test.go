package auth

import (
	"strings"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("HashPassword returned the plaintext")
	}

	if !CheckPassword(hash, "correct horse battery staple") {
		t.Error("CheckPassword rejected the right password")
	}
	if CheckPassword(hash, "wrong password") {
		t.Error("CheckPassword accepted the wrong password")
	}
}

func TestLongPasswordsAreTruncated(t *testing.T) {
	// bcrypt only looks at the first 72 bytes; anything longer must still
	// hash instead of erroring, matching the registration behaviour.
	long := strings.Repeat("a", 100)
	hash, err := HashPassword(long)
	if err != nil {
		t.Fatalf("HashPassword returned error for a long password: %v", err)
	}

	if !CheckPassword(hash, long) {
		t.Error("CheckPassword rejected the original long password")
	}
	if !CheckPassword(hash, strings.Repeat("a", 72)) {
		t.Error("CheckPassword rejected the 72-byte prefix")
	}
}
