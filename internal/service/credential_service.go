package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/phrazzld/bookmark-api/internal/domain"
	"github.com/phrazzld/bookmark-api/internal/platform/logger"
	"github.com/phrazzld/bookmark-api/internal/service/auth"
	"github.com/phrazzld/bookmark-api/internal/store"
)

// Token is the result of a successful signup or signin.
type Token struct {
	AccessToken string `json:"access_token"`
}

// CredentialService registers users and exchanges credentials for tokens.
type CredentialService interface {
	// Signup creates a user and returns a token for it.
	// Returns ErrCredentialsTaken when the email is already registered.
	Signup(ctx context.Context, email, password string) (*Token, error)

	// Signin verifies the credentials and returns a token.
	// Returns ErrInvalidCredentials for an unknown email or a wrong password.
	Signin(ctx context.Context, email, password string) (*Token, error)

	// IssueToken signs an access token for the given user.
	IssueToken(ctx context.Context, userID int64, email string) (*Token, error)
}

type credentialServiceImpl struct {
	userStore  store.UserStore
	hasher     auth.PasswordHasher
	jwtService auth.JWTService
	logger     *slog.Logger
}

// NewCredentialService creates a CredentialService.
// It returns an error if any of the required dependencies are nil.
func NewCredentialService(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	jwtService auth.JWTService,
	logger *slog.Logger,
) (CredentialService, error) {
	if userStore == nil {
		return nil, domain.NewValidationError("userStore", "cannot be nil", domain.ErrValidation)
	}
	if hasher == nil {
		return nil, domain.NewValidationError("hasher", "cannot be nil", domain.ErrValidation)
	}
	if jwtService == nil {
		return nil, domain.NewValidationError("jwtService", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &credentialServiceImpl{
		userStore:  userStore,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger.With(slog.String("component", "credential_service")),
	}, nil
}

// Signup implements CredentialService.Signup.
func (s *credentialServiceImpl) Signup(ctx context.Context, email, password string) (*Token, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	email = strings.TrimSpace(email)
	if err := domain.ValidateEmail(email); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return nil, NewServiceError("credential", "signup", "failed to hash password", err)
	}

	user, err := domain.NewUser(email, hash)
	if err != nil {
		return nil, err
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			log.Debug("signup rejected: email already registered")
			return nil, ErrCredentialsTaken
		}
		log.Error("failed to create user", slog.String("error", err.Error()))
		return nil, NewServiceError("credential", "signup", "failed to create user", err)
	}

	log.Info("user signed up", slog.Int64("user_id", user.ID))
	return s.IssueToken(ctx, user.ID, user.Email)
}

// Signin implements CredentialService.Signin.
func (s *credentialServiceImpl) Signin(ctx context.Context, email, password string) (*Token, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	email = strings.TrimSpace(email)
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("signin rejected: unknown email")
			return nil, ErrInvalidCredentials
		}
		log.Error("failed to look up user", slog.String("error", err.Error()))
		return nil, NewServiceError("credential", "signin", "failed to look up user", err)
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			log.Debug("signin rejected: password mismatch", slog.Int64("user_id", user.ID))
		} else {
			log.Error("stored password hash could not be verified",
				slog.String("error", err.Error()),
				slog.Int64("user_id", user.ID))
		}
		return nil, ErrInvalidCredentials
	}

	log.Debug("user signed in", slog.Int64("user_id", user.ID))
	return s.IssueToken(ctx, user.ID, user.Email)
}

// IssueToken implements CredentialService.IssueToken.
func (s *credentialServiceImpl) IssueToken(ctx context.Context, userID int64, email string) (*Token, error) {
	token, err := s.jwtService.GenerateToken(ctx, userID, email)
	if err != nil {
		return nil, NewServiceError("credential", "issue_token", "failed to sign token", err)
	}
	return &Token{AccessToken: token}, nil
}
