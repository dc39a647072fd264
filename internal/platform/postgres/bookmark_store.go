package postgres

import (
	"context"
	"log/slog"

	"github.com/phrazzld/bookmark-api/internal/domain"
	"github.com/phrazzld/bookmark-api/internal/platform/logger"
	"github.com/phrazzld/bookmark-api/internal/store"
)

const bookmarkColumns = `id, user_id, title, link, description, created_at, updated_at`

// PostgresBookmarkStore implements store.BookmarkStore. Every statement
// filters on user_id as well as id.
type PostgresBookmarkStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresBookmarkStore creates a bookmark store over db.
// If logger is nil, a default logger will be used.
func NewPostgresBookmarkStore(db store.DBTX, logger *slog.Logger) *PostgresBookmarkStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresBookmarkStore{
		db:     db,
		logger: logger.With(slog.String("component", "bookmark_store")),
	}
}

var _ store.BookmarkStore = (*PostgresBookmarkStore)(nil)

func scanBookmark(row rowScanner) (*domain.Bookmark, error) {
	var b domain.Bookmark
	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.Title,
		&b.Link,
		&b.Description,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ListByUser implements store.BookmarkStore.ListByUser.
// Returns an empty slice, never nil, when the user has no bookmarks.
func (s *PostgresBookmarkStore) ListByUser(ctx context.Context, userID int64) ([]*domain.Bookmark, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + bookmarkColumns + ` FROM bookmarks WHERE user_id = $1 ORDER BY id`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to query bookmarks",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return nil, store.NewStoreError("bookmark", "list", "query failed", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	bookmarks := []*domain.Bookmark{}
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			log.Error("failed to scan bookmark row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("bookmark", "list", "scan failed", err)
		}
		bookmarks = append(bookmarks, b)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("bookmark", "list", "row iteration failed", err)
	}

	log.Debug("listed bookmarks",
		slog.Int64("user_id", userID),
		slog.Int("count", len(bookmarks)))
	return bookmarks, nil
}

// FindOwned implements store.BookmarkStore.FindOwned.
func (s *PostgresBookmarkStore) FindOwned(ctx context.Context, userID, id int64) (*domain.Bookmark, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + bookmarkColumns + ` FROM bookmarks WHERE id = $1 AND user_id = $2`
	b, err := scanBookmark(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if IsNotFoundError(err) {
			log.Debug("bookmark not found",
				slog.Int64("bookmark_id", id),
				slog.Int64("user_id", userID))
			return nil, store.ErrBookmarkNotFound
		}
		log.Error("failed to get bookmark",
			slog.String("error", err.Error()),
			slog.Int64("bookmark_id", id))
		return nil, store.NewStoreError("bookmark", "find", "query failed", err)
	}
	return b, nil
}

// Insert implements store.BookmarkStore.Insert.
func (s *PostgresBookmarkStore) Insert(ctx context.Context, bookmark *domain.Bookmark) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := bookmark.Validate(); err != nil {
		log.Warn("bookmark validation failed during insert", slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO bookmarks (user_id, title, link, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		bookmark.UserID,
		bookmark.Title,
		bookmark.Link,
		bookmark.Description,
	).Scan(&bookmark.ID, &bookmark.CreatedAt, &bookmark.UpdatedAt)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("bookmark owner does not exist", slog.Int64("user_id", bookmark.UserID))
		} else {
			log.Error("failed to insert bookmark",
				slog.String("error", err.Error()),
				slog.Int64("user_id", bookmark.UserID))
		}
		return store.NewStoreError("bookmark", "insert", "insert failed", MapError(err))
	}

	log.Info("bookmark created successfully",
		slog.Int64("bookmark_id", bookmark.ID),
		slog.Int64("user_id", bookmark.UserID))
	return nil
}

// UpdatePartial implements store.BookmarkStore.UpdatePartial.
// Nil patch fields are bound as NULL and COALESCE keeps the stored value.
func (s *PostgresBookmarkStore) UpdatePartial(
	ctx context.Context,
	userID, id int64,
	patch domain.BookmarkPatch,
) (*domain.Bookmark, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := patch.Validate(); err != nil {
		return nil, err
	}

	query := `
		UPDATE bookmarks
		SET title = COALESCE($1, title),
		    link = COALESCE($2, link),
		    description = COALESCE($3, description),
		    updated_at = NOW()
		WHERE id = $4 AND user_id = $5
		RETURNING ` + bookmarkColumns

	b, err := scanBookmark(s.db.QueryRowContext(
		ctx,
		query,
		patch.Title,
		patch.Link,
		patch.Description,
		id,
		userID,
	))
	if err != nil {
		if IsNotFoundError(err) {
			log.Debug("bookmark not found for update",
				slog.Int64("bookmark_id", id),
				slog.Int64("user_id", userID))
			return nil, store.ErrBookmarkNotFound
		}
		log.Error("failed to update bookmark",
			slog.String("error", err.Error()),
			slog.Int64("bookmark_id", id))
		return nil, store.NewStoreError("bookmark", "update", "update failed", MapError(err))
	}

	log.Info("bookmark updated successfully", slog.Int64("bookmark_id", id))
	return b, nil
}

// Delete implements store.BookmarkStore.Delete.
func (s *PostgresBookmarkStore) Delete(ctx context.Context, userID, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM bookmarks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		log.Error("failed to delete bookmark",
			slog.String("error", err.Error()),
			slog.Int64("bookmark_id", id))
		return store.NewStoreError("bookmark", "delete", "delete failed", err)
	}

	if err := CheckRowsAffected(result, store.ErrBookmarkNotFound); err != nil {
		if IsNotFoundError(err) {
			log.Debug("bookmark not found for delete", slog.Int64("bookmark_id", id))
		}
		return err
	}

	log.Info("bookmark deleted successfully", slog.Int64("bookmark_id", id))
	return nil
}
