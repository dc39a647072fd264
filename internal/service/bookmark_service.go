package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/bookmark-api/internal/domain"
	"github.com/phrazzld/bookmark-api/internal/platform/logger"
	"github.com/phrazzld/bookmark-api/internal/store"
)

// BookmarkService manages bookmarks on behalf of an authenticated user.
// The userID argument always comes from the verified token.
type BookmarkService interface {
	// List returns every bookmark owned by userID.
	List(ctx context.Context, userID int64) ([]*domain.Bookmark, error)

	// GetByID returns the bookmark if userID owns it, or nil with no error
	// when there is no such bookmark.
	GetByID(ctx context.Context, userID, bookmarkID int64) (*domain.Bookmark, error)

	// Create stores a new bookmark owned by userID.
	Create(ctx context.Context, userID int64, title, link string, description *string) (*domain.Bookmark, error)

	// Update applies patch to an owned bookmark.
	// Returns ErrResourceNotFound when userID owns no bookmark with that id.
	Update(ctx context.Context, userID, bookmarkID int64, patch domain.BookmarkPatch) (*domain.Bookmark, error)

	// Delete removes an owned bookmark.
	// Returns ErrResourceNotFound when userID owns no bookmark with that id.
	Delete(ctx context.Context, userID, bookmarkID int64) error
}

type bookmarkServiceImpl struct {
	bookmarkStore store.BookmarkStore
	logger        *slog.Logger
}

// NewBookmarkService creates a BookmarkService.
func NewBookmarkService(bookmarkStore store.BookmarkStore, logger *slog.Logger) (BookmarkService, error) {
	if bookmarkStore == nil {
		return nil, domain.NewValidationError("bookmarkStore", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &bookmarkServiceImpl{
		bookmarkStore: bookmarkStore,
		logger:        logger.With(slog.String("component", "bookmark_service")),
	}, nil
}

// List implements BookmarkService.List.
func (s *bookmarkServiceImpl) List(ctx context.Context, userID int64) ([]*domain.Bookmark, error) {
	bookmarks, err := s.bookmarkStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, NewServiceError("bookmark", "list", "failed to list bookmarks", err)
	}
	return bookmarks, nil
}

// GetByID implements BookmarkService.GetByID.
func (s *bookmarkServiceImpl) GetByID(ctx context.Context, userID, bookmarkID int64) (*domain.Bookmark, error) {
	b, err := s.bookmarkStore.FindOwned(ctx, userID, bookmarkID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, NewServiceError("bookmark", "get", "failed to retrieve bookmark", err)
	}
	return b, nil
}

// Create implements BookmarkService.Create.
func (s *bookmarkServiceImpl) Create(
	ctx context.Context,
	userID int64,
	title, link string,
	description *string,
) (*domain.Bookmark, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	b, err := domain.NewBookmark(userID, title, link, description)
	if err != nil {
		return nil, err
	}

	if err := s.bookmarkStore.Insert(ctx, b); err != nil {
		log.Error("failed to create bookmark",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return nil, NewServiceError("bookmark", "create", "failed to save bookmark", err)
	}

	return b, nil
}

// Update implements BookmarkService.Update. The ownership lookup and the
// write are separate statements; ownership never changes, so the gap is
// harmless.
func (s *bookmarkServiceImpl) Update(
	ctx context.Context,
	userID, bookmarkID int64,
	patch domain.BookmarkPatch,
) (*domain.Bookmark, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := patch.Validate(); err != nil {
		return nil, err
	}

	current, err := s.bookmarkStore.FindOwned(ctx, userID, bookmarkID)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("update rejected: bookmark not owned",
				slog.Int64("user_id", userID),
				slog.Int64("bookmark_id", bookmarkID))
			return nil, ErrResourceNotFound
		}
		return nil, NewServiceError("bookmark", "update", "failed to retrieve bookmark", err)
	}

	if patch.IsEmpty() {
		return current, nil
	}

	updated, err := s.bookmarkStore.UpdatePartial(ctx, userID, bookmarkID, patch)
	if err != nil {
		if store.IsNotFoundError(err) {
			// deleted between the lookup and the write
			return nil, ErrResourceNotFound
		}
		return nil, NewServiceError("bookmark", "update", "failed to update bookmark", err)
	}

	return updated, nil
}

// Delete implements BookmarkService.Delete.
func (s *bookmarkServiceImpl) Delete(ctx context.Context, userID, bookmarkID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.bookmarkStore.FindOwned(ctx, userID, bookmarkID); err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("delete rejected: bookmark not owned",
				slog.Int64("user_id", userID),
				slog.Int64("bookmark_id", bookmarkID))
			return ErrResourceNotFound
		}
		return NewServiceError("bookmark", "delete", "failed to retrieve bookmark", err)
	}

	if err := s.bookmarkStore.Delete(ctx, userID, bookmarkID); err != nil {
		if store.IsNotFoundError(err) {
			return ErrResourceNotFound
		}
		return NewServiceError("bookmark", "delete", "failed to delete bookmark", err)
	}

	log.Info("bookmark deleted",
		slog.Int64("user_id", userID),
		slog.Int64("bookmark_id", bookmarkID))
	return nil
}
