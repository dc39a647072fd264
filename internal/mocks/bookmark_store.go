package mocks

import (
	"context"

	"github.com/phrazzld/bookmark-api/internal/domain"
	"github.com/phrazzld/bookmark-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// BookmarkStore is a testify mock of store.BookmarkStore.
type BookmarkStore struct {
	mock.Mock
}

var _ store.BookmarkStore = (*BookmarkStore)(nil)

// ListByUser is a mock implementation of store.BookmarkStore.ListByUser
func (m *BookmarkStore) ListByUser(ctx context.Context, userID int64) ([]*domain.Bookmark, error) {
	args := m.Called(ctx, userID)
	if bookmarks, ok := args.Get(0).([]*domain.Bookmark); ok {
		return bookmarks, args.Error(1)
	}
	return nil, args.Error(1)
}

// FindOwned is a mock implementation of store.BookmarkStore.FindOwned
func (m *BookmarkStore) FindOwned(ctx context.Context, userID, id int64) (*domain.Bookmark, error) {
	args := m.Called(ctx, userID, id)
	if b, ok := args.Get(0).(*domain.Bookmark); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

// Insert is a mock implementation of store.BookmarkStore.Insert
func (m *BookmarkStore) Insert(ctx context.Context, bookmark *domain.Bookmark) error {
	args := m.Called(ctx, bookmark)
	return args.Error(0)
}

// UpdatePartial is a mock implementation of store.BookmarkStore.UpdatePartial
func (m *BookmarkStore) UpdatePartial(
	ctx context.Context,
	userID, id int64,
	patch domain.BookmarkPatch,
) (*domain.Bookmark, error) {
	args := m.Called(ctx, userID, id, patch)
	if b, ok := args.Get(0).(*domain.Bookmark); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

// Delete is a mock implementation of store.BookmarkStore.Delete
func (m *BookmarkStore) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}
