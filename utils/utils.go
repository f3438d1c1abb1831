package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a bcrypt hash with a per-call random salt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash reports only whether the password matches; a
// malformed hash is a mismatch, never an error to the caller.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
