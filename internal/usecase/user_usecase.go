// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the signed access token after a successful login.
type LoginOutput struct {
	Token string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., HTTP handlers) will depend on.
type UserUsecase interface {
	// Register hashes the password and persists the account. Returns the
	// public projection only; the credential never leaves the service.
	Register(ctx context.Context, input *RegisterInput) (*entity.PublicUser, error)

	// Login verifies the credentials and issues an access token. Failure is
	// always ErrInvalidCredentials, whether the email is unknown or the
	// password is wrong, and both paths cost one full derivation.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// ListUsers returns the public projection of every account.
	ListUsers(ctx context.Context) ([]entity.PublicUser, error)
}
