package api

import "github.com/phrazzld/bookmark-api/internal/domain"

// AuthRequest is the payload of /auth/signup and /auth/signin. Any non-empty
// password is accepted.
type AuthRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by both auth endpoints.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
}

// EditUserRequest is the payload of PATCH /users. Absent fields are left unchanged.
type EditUserRequest struct {
	Email     *string `json:"email"      validate:"omitempty,email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

func (req EditUserRequest) toPatch() domain.UserPatch {
	return domain.UserPatch{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
}

// CreateBookmarkRequest is the payload of POST /bookmarks.
type CreateBookmarkRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Link        string  `json:"link"        validate:"required"`
	Description *string `json:"description"`
}

// EditBookmarkRequest is the payload of PATCH /bookmarks/{id}. Absent fields
// are left unchanged; present title and link must not be empty.
type EditBookmarkRequest struct {
	Title       *string `json:"title"`
	Link        *string `json:"link"`
	Description *string `json:"description"`
}

// Validate implements the interface checked by shared.ValidateRequest.
func (req EditBookmarkRequest) Validate() error {
	return req.toPatch().Validate()
}

func (req EditBookmarkRequest) toPatch() domain.BookmarkPatch {
	return domain.BookmarkPatch{
		Title:       req.Title,
		Link:        req.Link,
		Description: req.Description,
	}
}
