package store

import (
	"context"

	"github.com/phrazzld/bookmark-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create inserts user and fills in its ID and timestamps.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update applies patch to the user and returns the stored result.
	// Returns ErrUserNotFound if the user does not exist and ErrEmailExists
	// if the new email belongs to another account.
	Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error)
}
