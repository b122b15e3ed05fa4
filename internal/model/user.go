package model

import (
	"strings"
	"time"
)

// User represents a registered account in the database.
// PasswordHash holds a bcrypt digest — never the plaintext.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser builds a User from already-hashed credentials, applying the
// same normalization the store relies on: name and email are trimmed
// and the email is lowercased so uniqueness is case-insensitive.
func NewUser(name, email, passwordHash string) (*User, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)

	if name == "" {
		return nil, &ValidationError{Field: "name", Reason: "name is required"}
	}
	if email == "" {
		return nil, &ValidationError{Field: "email", Reason: "email is required"}
	}
	if passwordHash == "" {
		return nil, &ValidationError{Field: "password", Reason: "password is required"}
	}

	return &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}, nil
}

// NormalizeEmail lowercases and trims an email so lookups and the
// unique index agree on a single canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
