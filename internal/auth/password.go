package auth

import "golang.org/x/crypto/bcrypt"

// bcrypt only hashes the first 72 bytes; longer input makes it error out.
const maxPasswordBytes = 72

func truncatePassword(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

// HashPassword returns the bcrypt hash of a plaintext password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncatePassword(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncatePassword(password)) == nil
}
