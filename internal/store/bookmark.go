package store

import (
	"context"

	"github.com/phrazzld/bookmark-api/internal/domain"
)

// BookmarkStore persists bookmarks. Every lookup and mutation is scoped to an
// owner: a bookmark belonging to someone else is reported as not found.
type BookmarkStore interface {
	// ListByUser returns all bookmarks owned by userID, oldest first.
	ListByUser(ctx context.Context, userID int64) ([]*domain.Bookmark, error)

	// FindOwned returns the bookmark with id owned by userID.
	// Returns ErrBookmarkNotFound when there is no such row.
	FindOwned(ctx context.Context, userID, id int64) (*domain.Bookmark, error)

	// Insert stores bookmark and fills in its ID and timestamps.
	// Returns ErrInvalidEntity if the owner does not exist.
	Insert(ctx context.Context, bookmark *domain.Bookmark) error

	// UpdatePartial applies patch to the owned bookmark and returns the result.
	// Returns ErrBookmarkNotFound when there is no such row.
	UpdatePartial(ctx context.Context, userID, id int64, patch domain.BookmarkPatch) (*domain.Bookmark, error)

	// Delete removes the owned bookmark.
	// Returns ErrBookmarkNotFound when there is no such row.
	Delete(ctx context.Context, userID, id int64) error
}
