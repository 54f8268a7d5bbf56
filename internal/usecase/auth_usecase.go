// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// LoginInput defines the data required for the admin to log in.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput returns the signed token after a successful login.
type LoginOutput struct {
	Token string `json:"token"`
}

// AuthUsecase defines the interface for authentication operations.
type AuthUsecase interface {
	// Login verifies the credentials against the stored admin identity
	// and issues a signed token. Unknown username and wrong password
	// fail identically so the caller cannot enumerate usernames.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// EnsureAdminPassword seeds the stored password hash from the
	// bootstrap config when the hash is still empty. Called once at
	// startup; a no-op otherwise.
	EnsureAdminPassword(ctx context.Context) error
}
