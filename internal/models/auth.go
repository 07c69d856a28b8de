package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims is the subset of identity provider claims the API relies on.
// The subject (sub) is the user id.
type TokenClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Principal is the verified caller attached to each authenticated request.
type Principal struct {
	UserID string
	Email  string
	Name   string
}
