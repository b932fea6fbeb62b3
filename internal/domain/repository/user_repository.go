// Package repository defines the persistence contracts the domain depends on.
// Concrete implementations live in internal/infra/persistence.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrUserNotFound signals a lookup miss. Repositories return it instead of
// leaking driver-specific not-found errors.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	// Create persists a new user. A duplicate email surfaces as a
	// domain ConflictError, never as raw driver text.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a single user, credential included, or
	// ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns all users ordered by id.
	List(ctx context.Context) ([]*entity.User, error)
}
