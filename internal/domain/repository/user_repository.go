// Package repository defines the persistence interfaces the use case layer
// depends on, keeping it independent of GORM and PostgreSQL.
package repository

import (
	"context"

	"courier/internal/domain/entity"
	"courier/internal/errors"
)

// ErrUserNotFound is returned when a user does not exist.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines persistence operations over users.
type UserRepository interface {
	// Create persists a new user and fills in the generated fields.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by its numeric ID.
	// Returns ErrUserNotFound when absent.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByEmail retrieves a user by its unique email.
	// Returns ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns users ordered by creation time, optionally filtered by role.
	List(ctx context.Context, role *entity.Role) ([]*entity.User, error)

	// ListActiveByRole returns active users with the given role, ordered by name.
	ListActiveByRole(ctx context.Context, role entity.Role) ([]*entity.User, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user permanently.
	Delete(ctx context.Context, id uint) error
}
