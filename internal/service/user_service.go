package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/bookmark-api/internal/domain"
	"github.com/phrazzld/bookmark-api/internal/platform/logger"
	"github.com/phrazzld/bookmark-api/internal/store"
)

// UserService serves the authenticated user's own profile.
type UserService interface {
	// GetMe returns the user identified by userID.
	// Returns domain.ErrUnauthorized when the user no longer exists.
	GetMe(ctx context.Context, userID int64) (*domain.User, error)

	// Edit applies patch to the user's profile.
	// Returns ErrCredentialsTaken if the new email belongs to another account.
	Edit(ctx context.Context, userID int64, patch domain.UserPatch) (*domain.User, error)
}

type userServiceImpl struct {
	userStore store.UserStore
	logger    *slog.Logger
}

// NewUserService creates a UserService.
func NewUserService(userStore store.UserStore, logger *slog.Logger) (UserService, error) {
	if userStore == nil {
		return nil, domain.NewValidationError("userStore", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &userServiceImpl{
		userStore: userStore,
		logger:    logger.With(slog.String("component", "user_service")),
	}, nil
}

// GetMe implements UserService.GetMe.
func (s *userServiceImpl) GetMe(ctx context.Context, userID int64) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Warn("token subject has no user", slog.Int64("user_id", userID))
			return nil, domain.ErrUnauthorized
		}
		return nil, NewServiceError("user", "get_me", "failed to retrieve user", err)
	}
	return user, nil
}

// Edit implements UserService.Edit.
func (s *userServiceImpl) Edit(ctx context.Context, userID int64, patch domain.UserPatch) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := patch.Validate(); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return s.GetMe(ctx, userID)
	}

	user, err := s.userStore.Update(ctx, userID, patch)
	if err != nil {
		switch {
		case store.IsDuplicateError(err):
			log.Debug("profile edit rejected: email taken", slog.Int64("user_id", userID))
			return nil, ErrCredentialsTaken
		case store.IsNotFoundError(err):
			return nil, domain.ErrUnauthorized
		}
		return nil, NewServiceError("user", "edit", "failed to update user", err)
	}

	log.Info("user profile updated", slog.Int64("user_id", userID))
	return user, nil
}
