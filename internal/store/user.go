package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/rfoley/taskward-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The user's plaintext Password is
	// hashed before storage and cleared from the struct; HashedPassword is
	// populated on return.
	// Returns ErrEmailExists if the email is already registered.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address. Email comparison
	// is case-sensitive, matching the unique constraint in the schema.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
