package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/bookmark-api/internal/api/shared"
	"github.com/phrazzld/bookmark-api/internal/domain"
	"github.com/phrazzld/bookmark-api/internal/mocks"
	"github.com/phrazzld/bookmark-api/internal/service"
	"github.com/phrazzld/bookmark-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// serveAs routes req through a chi router so URL params resolve, with userID
// already authenticated.
func serveAs(userID int64, pattern string, handler http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.MethodFunc(req.Method, pattern, handler)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req.WithContext(shared.WithUserID(req.Context(), userID)))
	return rec
}

func newTestBookmarkHandler(t *testing.T, store *mocks.BookmarkStore) *BookmarkHandler {
	t.Helper()
	svc, err := service.NewBookmarkService(store, nil)
	require.NoError(t, err)
	return NewBookmarkHandler(svc)
}

func TestBookmarkHandler_StoreFailureIsOpaque(t *testing.T) {
	store := new(mocks.BookmarkStore)
	store.On("ListByUser", mock.Anything, int64(1)).
		Return(nil, errors.New("dial tcp 10.0.0.5:5432: connection refused"))
	h := newTestBookmarkHandler(t, store)

	rec := serveAs(1, "/bookmarks", h.List, httptest.NewRequest(http.MethodGet, "/bookmarks", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
	assert.Contains(t, rec.Body.String(), "An unexpected error occurred")
}

func TestBookmarkHandler_CreateUsesAuthenticatedUser(t *testing.T) {
	store := new(mocks.BookmarkStore)
	store.On("Insert", mock.Anything, mock.MatchedBy(func(b *domain.Bookmark) bool {
		return b.UserID == 7 && b.Description != nil && *b.Description == "d"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Bookmark).ID = 3
	}).Return(nil)
	h := newTestBookmarkHandler(t, store)

	body := `{"title":"t","link":"https://l.example","description":"d","user_id":99}`
	req := httptest.NewRequest(http.MethodPost, "/bookmarks", strings.NewReader(body))
	rec := serveAs(7, "/bookmarks", h.Create, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":7`)
	store.AssertExpectations(t)
}

func TestBookmarkHandler_EditEmptyPatch(t *testing.T) {
	bodies := map[string]io.Reader{
		"empty object": strings.NewReader(`{}`),
		"no body":      nil,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			bookmarks := new(mocks.BookmarkStore)
			current := &domain.Bookmark{ID: 3, UserID: 7, Title: "t", Link: "l"}
			bookmarks.On("FindOwned", mock.Anything, int64(7), int64(3)).Return(current, nil)
			h := newTestBookmarkHandler(t, bookmarks)

			req := httptest.NewRequest(http.MethodPatch, "/bookmarks/3", body)
			rec := serveAs(7, "/bookmarks/{id}", h.Edit, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), `"title":"t"`)
			bookmarks.AssertNotCalled(t, "UpdatePartial", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestBookmarkHandler_EditWithoutBodyChecksOwnership(t *testing.T) {
	bookmarks := new(mocks.BookmarkStore)
	bookmarks.On("FindOwned", mock.Anything, int64(7), int64(99)).Return(nil, store.ErrBookmarkNotFound)
	h := newTestBookmarkHandler(t, bookmarks)

	rec := serveAs(7, "/bookmarks/{id}", h.Edit, httptest.NewRequest(http.MethodPatch, "/bookmarks/99", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Access to resource denied")
}

func TestBookmarkHandler_RequiresUserInContext(t *testing.T) {
	h := newTestBookmarkHandler(t, new(mocks.BookmarkStore))

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/bookmarks", nil).WithContext(context.Background()))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
