package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by an access token.
type Claims struct {
	Username string
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating signed
// tokens. It abstracts the signing details from the use cases so they
// can be tested without real cryptographic primitives.
type TokenService interface {
	// IssueToken creates a signed token bound to the given username.
	IssueToken(username string) (string, error)

	// ValidateToken checks the validity of a token string and returns
	// its claims. Malformed, tampered and expired tokens all fail.
	ValidateToken(tokenString string) (*Claims, error)
}
