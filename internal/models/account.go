package models

import "strings"

// Role enumerates the two actor roles known to the system.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Valid reports whether the role is one of the closed set.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleAdmin
}

// Account represents a login identity. The credential is an opaque secret
// compared for equality only; it is kept in the persisted document verbatim.
type Account struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Credential string `json:"password"`
	Role       Role   `json:"role"`
}

// EmailMatches compares emails case-insensitively, ignoring surrounding space.
func (a Account) EmailMatches(email string) bool {
	return NormalizeEmail(a.Email) == NormalizeEmail(email)
}

// NormalizeEmail lowercases and trims an email for use as a uniqueness key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
