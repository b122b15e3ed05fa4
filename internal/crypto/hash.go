package crypto

import (
	"golang.org/x/crypto/bcrypt"
)

// HashCost is the fixed bcrypt work factor for all stored passwords.
const HashCost = 10

// HashPassword hashes a password with bcrypt at the fixed cost.
// bcrypt generates its own random salt, so two hashes of the same
// password never match.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether a candidate password matches the
// stored bcrypt hash. The comparison inside bcrypt is constant-time.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
