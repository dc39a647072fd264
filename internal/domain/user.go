package domain

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// User is a registered account. The store assigns ID, CreatedAt and
// UpdatedAt.
type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	FirstName      *string   `json:"first_name"`
	LastName       *string   `json:"last_name"`
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser prepares a user for insertion. The password must already be hashed.
func NewUser(email, hashedPassword string) (*User, error) {
	user := &User{
		Email:          strings.TrimSpace(email),
		HashedPassword: hashedPassword,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	return user, nil
}

// Validate checks the fields a user must always have.
func (u *User) Validate() error {
	if err := ValidateEmail(u.Email); err != nil {
		return err
	}
	if u.HashedPassword == "" {
		return NewValidationError("password", "cannot be empty", ErrValidation)
	}
	return nil
}

// ValidateEmail reports whether email is present and well formed.
func ValidateEmail(email string) error {
	if email == "" {
		return NewValidationError("email", "cannot be empty", ErrValidation)
	}
	if err := validate.Var(email, "email"); err != nil {
		return NewValidationError("email", "has invalid format", ErrInvalidEmail)
	}
	return nil
}

// UserPatch lists the profile fields a user may change. Nil fields are left
// untouched.
type UserPatch struct {
	Email     *string
	FirstName *string
	LastName  *string
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Email == nil && p.FirstName == nil && p.LastName == nil
}

// Validate checks the supplied fields.
func (p UserPatch) Validate() error {
	if p.Email != nil {
		return ValidateEmail(*p.Email)
	}
	return nil
}
