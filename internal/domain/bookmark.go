package domain

import "time"

// Bookmark is a saved link owned by exactly one user.
type Bookmark struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewBookmark builds an unsaved bookmark owned by userID.
func NewBookmark(userID int64, title, link string, description *string) (*Bookmark, error) {
	b := &Bookmark{
		UserID:      userID,
		Title:       title,
		Link:        link,
		Description: description,
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate checks the bookmark's required fields.
func (b *Bookmark) Validate() error {
	if b.UserID <= 0 {
		return NewValidationError("user_id", "must be positive", ErrInvalidID)
	}
	if b.Title == "" {
		return NewValidationError("title", "cannot be empty", ErrValidation)
	}
	if b.Link == "" {
		return NewValidationError("link", "cannot be empty", ErrValidation)
	}
	return nil
}

// BookmarkPatch is a partial update. Nil fields keep their stored value.
type BookmarkPatch struct {
	Title       *string
	Link        *string
	Description *string
}

// IsEmpty reports whether the patch changes nothing.
func (p BookmarkPatch) IsEmpty() bool {
	return p.Title == nil && p.Link == nil && p.Description == nil
}

// Validate rejects attempts to blank out a required field.
func (p BookmarkPatch) Validate() error {
	if p.Title != nil && *p.Title == "" {
		return NewValidationError("title", "cannot be empty", ErrValidation)
	}
	if p.Link != nil && *p.Link == "" {
		return NewValidationError("link", "cannot be empty", ErrValidation)
	}
	return nil
}
