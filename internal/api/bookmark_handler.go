package api

import (
	"net/http"

	"github.com/phrazzld/bookmark-api/internal/api/shared"
	"github.com/phrazzld/bookmark-api/internal/service"
)

// BookmarkHandler serves the owner-scoped bookmark endpoints.
type BookmarkHandler struct {
	bookmarks service.BookmarkService
}

// NewBookmarkHandler creates a new BookmarkHandler.
func NewBookmarkHandler(bookmarks service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{bookmarks: bookmarks}
}

// List handles GET /bookmarks.
func (h *BookmarkHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := handleUserID(w, r)
	if !ok {
		return
	}

	bookmarks, err := h.bookmarks.List(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, bookmarks)
}

// Get handles GET /bookmarks/{id}. A bookmark the caller does not own gets a
// 200 with an empty body.
func (h *BookmarkHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, bookmarkID, ok := handleUserIDAndPathID(w, r, "id")
	if !ok {
		return
	}

	bookmark, err := h.bookmarks.GetByID(r.Context(), userID, bookmarkID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if bookmark == nil {
		shared.RespondWithStatus(w, http.StatusOK)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, bookmark)
}

// Create handles POST /bookmarks.
func (h *BookmarkHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := handleUserID(w, r)
	if !ok {
		return
	}

	var req CreateBookmarkRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	bookmark, err := h.bookmarks.Create(r.Context(), userID, req.Title, req.Link, req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, bookmark)
}

// Edit handles PATCH /bookmarks/{id}.
func (h *BookmarkHandler) Edit(w http.ResponseWriter, r *http.Request) {
	userID, bookmarkID, ok := handleUserIDAndPathID(w, r, "id")
	if !ok {
		return
	}

	var req EditBookmarkRequest
	if !decodePatchAndValidate(w, r, &req) {
		return
	}

	bookmark, err := h.bookmarks.Update(r.Context(), userID, bookmarkID, req.toPatch())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, bookmark)
}

// Delete handles DELETE /bookmarks/{id}.
func (h *BookmarkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, bookmarkID, ok := handleUserIDAndPathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.bookmarks.Delete(r.Context(), userID, bookmarkID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithStatus(w, http.StatusNoContent)
}
