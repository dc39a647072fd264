package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/bookmark-api/internal/domain"
	"github.com/phrazzld/bookmark-api/internal/mocks"
	"github.com/phrazzld/bookmark-api/internal/service"
	"github.com/phrazzld/bookmark-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T, users *mocks.UserStore) service.UserService {
	t.Helper()
	svc, err := service.NewUserService(users, testLogger())
	require.NoError(t, err)
	return svc
}

func TestUserService_GetMe(t *testing.T) {
	ctx := context.Background()
	users := new(mocks.UserStore)
	me := &domain.User{ID: 1, Email: "test@gmail.com"}
	users.On("GetByID", mock.Anything, int64(1)).Return(me, nil)
	users.On("GetByID", mock.Anything, int64(2)).Return(nil, store.ErrUserNotFound)
	users.On("GetByID", mock.Anything, int64(3)).Return(nil, errors.New("timeout"))

	svc := newUserService(t, users)

	got, err := svc.GetMe(ctx, 1)
	require.NoError(t, err)
	assert.Same(t, me, got)

	_, err = svc.GetMe(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = svc.GetMe(ctx, 3)
	var svcErr *service.ServiceError
	assert.ErrorAs(t, err, &svcErr)
}

func TestUserService_Edit(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update", func(t *testing.T) {
		users := new(mocks.UserStore)
		patch := domain.UserPatch{FirstName: strPtr("Vladimir")}
		updated := &domain.User{ID: 1, Email: "test@gmail.com", FirstName: strPtr("Vladimir")}
		users.On("Update", mock.Anything, int64(1), patch).Return(updated, nil)

		got, err := newUserService(t, users).Edit(ctx, 1, patch)
		require.NoError(t, err)
		assert.Equal(t, "Vladimir", *got.FirstName)
	})

	t.Run("email taken", func(t *testing.T) {
		users := new(mocks.UserStore)
		patch := domain.UserPatch{Email: strPtr("taken@gmail.com")}
		users.On("Update", mock.Anything, int64(1), patch).Return(nil, store.ErrEmailExists)

		_, err := newUserService(t, users).Edit(ctx, 1, patch)
		assert.ErrorIs(t, err, service.ErrCredentialsTaken)
	})

	t.Run("invalid email", func(t *testing.T) {
		users := new(mocks.UserStore)
		_, err := newUserService(t, users).Edit(ctx, 1, domain.UserPatch{Email: strPtr("nope")})
		assert.ErrorIs(t, err, domain.ErrValidation)
		users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty patch reads current profile", func(t *testing.T) {
		users := new(mocks.UserStore)
		me := &domain.User{ID: 1, Email: "test@gmail.com"}
		users.On("GetByID", mock.Anything, int64(1)).Return(me, nil)

		got, err := newUserService(t, users).Edit(ctx, 1, domain.UserPatch{})
		require.NoError(t, err)
		assert.Same(t, me, got)
		users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}
