package model

import (
	"strings"
	"time"
)

// User represents a registered identity. Email and ID are immutable after
// signup; users are never updated or deleted.
type User struct {
	ID           uint      `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	CreatedAt    time.Time `json:"createdAt"`
}

// Identity is the authenticated caller derived from a verified token. It is
// reconstructed on every request and never stored.
type Identity struct {
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
}

// NormalizeEmail canonicalizes an address before it is used as a uniqueness
// key: trimmed and lowercased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
