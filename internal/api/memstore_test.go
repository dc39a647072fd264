package api_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/phrazzld/bookmark-api/internal/domain"
	"github.com/phrazzld/bookmark-api/internal/store"
)

// memStore is an in-memory store.UserStore and store.BookmarkStore with the
// same not-found and uniqueness behaviour as the Postgres stores.
type memStore struct {
	mu         sync.Mutex
	users      map[int64]domain.User
	bookmarks  map[int64]domain.Bookmark
	nextUserID int64
	nextBookID int64
}

func newMemStore() *memStore {
	return &memStore{
		users:     map[int64]domain.User{},
		bookmarks: map[int64]domain.Bookmark{},
	}
}

type memUsers struct{ *memStore }
type memBookmarks struct{ *memStore }

var (
	_ store.UserStore     = memUsers{}
	_ store.BookmarkStore = memBookmarks{}
)

func (s memUsers) Create(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return store.ErrEmailExists
		}
	}
	s.nextUserID++
	now := time.Now().UTC()
	user.ID, user.CreatedAt, user.UpdatedAt = s.nextUserID, now, now
	s.users[user.ID] = *user
	return nil
}

func (s memUsers) GetByID(_ context.Context, id int64) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &u, nil
}

func (s memUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (s memUsers) Update(_ context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	if patch.Email != nil {
		for otherID, other := range s.users {
			if otherID != id && other.Email == *patch.Email {
				return nil, store.ErrEmailExists
			}
		}
	}
	u = applyUserPatch(u, patch)
	u.UpdatedAt = time.Now().UTC()
	s.users[id] = u
	return &u, nil
}

func (s memBookmarks) ListByUser(_ context.Context, userID int64) ([]*domain.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*domain.Bookmark{}
	for _, b := range s.bookmarks {
		if b.UserID == userID {
			b := b
			out = append(out, &b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s memBookmarks) FindOwned(_ context.Context, userID, id int64) (*domain.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookmarks[id]
	if !ok || b.UserID != userID {
		return nil, store.ErrBookmarkNotFound
	}
	return &b, nil
}

func (s memBookmarks) Insert(_ context.Context, bookmark *domain.Bookmark) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[bookmark.UserID]; !ok {
		return store.ErrInvalidEntity
	}
	s.nextBookID++
	now := time.Now().UTC()
	bookmark.ID, bookmark.CreatedAt, bookmark.UpdatedAt = s.nextBookID, now, now
	s.bookmarks[bookmark.ID] = *bookmark
	return nil
}

func (s memBookmarks) UpdatePartial(
	_ context.Context,
	userID, id int64,
	patch domain.BookmarkPatch,
) (*domain.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookmarks[id]
	if !ok || b.UserID != userID {
		return nil, store.ErrBookmarkNotFound
	}
	b = applyBookmarkPatch(b, patch)
	b.UpdatedAt = time.Now().UTC()
	s.bookmarks[id] = b
	return &b, nil
}

func (s memBookmarks) Delete(_ context.Context, userID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookmarks[id]
	if !ok || b.UserID != userID {
		return store.ErrBookmarkNotFound
	}
	delete(s.bookmarks, id)
	return nil
}

func applyUserPatch(u domain.User, p domain.UserPatch) domain.User {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.FirstName != nil {
		v := *p.FirstName
		u.FirstName = &v
	}
	if p.LastName != nil {
		v := *p.LastName
		u.LastName = &v
	}
	return u
}

func applyBookmarkPatch(b domain.Bookmark, p domain.BookmarkPatch) domain.Bookmark {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Link != nil {
		b.Link = *p.Link
	}
	if p.Description != nil {
		d := *p.Description
		b.Description = &d
	}
	return b
}
