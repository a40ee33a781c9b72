package services

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a plaintext password with a fresh random salt, so the
// same input produces a different digest on every call.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether password matches the stored digest.
// A malformed digest verifies as false rather than failing.
func VerifyPassword(password string, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
