package mocks

import (
	"strings"

	"github.com/phrazzld/bookmark-api/internal/service/auth"
)

// MockPasswordHasher implements auth.PasswordHasher for testing.
// By default Hash prefixes the password with "hashed:" and Compare accepts
// exactly that encoding.
type MockPasswordHasher struct {
	HashFn    func(password string) (string, error)
	CompareFn func(hashedPassword, password string) error
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash implements auth.PasswordHasher.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	return "hashed:" + password, nil
}

// Compare implements auth.PasswordHasher.
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if !strings.HasPrefix(hashedPassword, "hashed:") {
		return auth.ErrInvalidHash
	}
	if strings.TrimPrefix(hashedPassword, "hashed:") != password {
		return auth.ErrPasswordMismatch
	}
	return nil
}
