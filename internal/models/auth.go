package models

import "github.com/golang-jwt/jwt/v5"

// JWTClaims carries the authenticated account through the HTTP layer.
type JWTClaims struct {
	AccountID string `json:"account_id"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	jwt.RegisteredClaims
}

// LoginRequest is the credential payload for authentication.
type LoginRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Credential string `json:"password" validate:"required"`
}

// RegisterRequest is the signup payload. Program and Year only apply when
// the requested role is student.
type RegisterRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email" validate:"required,email"`
	Credential string `json:"password" validate:"required"`
	Role       Role   `json:"role" validate:"required,oneof=student admin"`
	Program    string `json:"program"`
	Year       string `json:"year"`
}

// AccountInfo is the public projection of an account.
type AccountInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// SessionResponse is returned after a successful login or signup.
type SessionResponse struct {
	AccessToken string      `json:"access_token"`
	ExpiresIn   int64       `json:"expires_in"`
	Account     AccountInfo `json:"account"`
}

// Info converts an Account into its public projection.
func (a Account) Info() AccountInfo {
	return AccountInfo{ID: a.ID, Name: a.Name, Email: a.Email, Role: a.Role}
}
