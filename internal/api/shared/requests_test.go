package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email string `json:"email" validate:"required,email"`
}

func TestDecodeJSON(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		var v sample
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@b.co","extra":1}`))
		require.NoError(t, DecodeJSON(req, &v))
		assert.Equal(t, "a@b.co", v.Email)
	})

	t.Run("empty body", func(t *testing.T) {
		var v sample
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		assert.ErrorIs(t, DecodeJSON(req, &v), ErrEmptyBody)
	})

	t.Run("malformed", func(t *testing.T) {
		var v sample
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":`))
		err := DecodeJSON(req, &v)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrEmptyBody)
	})

	t.Run("too large", func(t *testing.T) {
		var v sample
		big := `{"email":"` + strings.Repeat("a", MaxRequestBodyBytes) + `"}`
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(big))
		assert.Error(t, DecodeJSON(req, &v))
	})
}

type selfValidating struct{ ok bool }

func (s selfValidating) Validate() error {
	if !s.ok {
		return assert.AnError
	}
	return nil
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, ValidateRequest(&sample{Email: "a@b.co"}))
	assert.Error(t, ValidateRequest(&sample{Email: "nope"}))
	assert.Error(t, ValidateRequest(&sample{}))

	assert.NoError(t, ValidateRequest(selfValidating{ok: true}))
	assert.ErrorIs(t, ValidateRequest(selfValidating{}), assert.AnError)
}

func TestUserIDContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := UserIDFromContext(req.Context())
	assert.False(t, ok)

	ctx := WithUserID(req.Context(), 5)
	id, ok := UserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(5), id)

	_, ok = UserIDFromContext(WithUserID(req.Context(), 0))
	assert.False(t, ok)
}
