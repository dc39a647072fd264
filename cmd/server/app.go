package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/bookmark-api/internal/config"
	"github.com/phrazzld/bookmark-api/internal/platform/postgres"
	"github.com/phrazzld/bookmark-api/internal/service"
	"github.com/phrazzld/bookmark-api/internal/service/auth"
	"github.com/phrazzld/bookmark-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore     store.UserStore
	bookmarkStore store.BookmarkStore

	jwtService     auth.JWTService
	passwordHasher auth.PasswordHasher

	credentialService service.CredentialService
	userService       service.UserService
	bookmarkService   service.BookmarkService
}

// newApplication creates a new application instance with all dependencies initialized.
// The database handle must already be open; the application takes ownership of it.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if db == nil {
		return nil, fmt.Errorf("database cannot be nil")
	}

	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.bookmarkStore = postgres.NewPostgresBookmarkStore(db, logger)

	if err := app.initAuth(); err != nil {
		return nil, err
	}
	if err := app.initServices(); err != nil {
		return nil, err
	}

	return app, nil
}

func (app *application) initAuth() error {
	var err error

	app.jwtService, err = auth.NewJWTService(app.config.Auth)
	if err != nil {
		return fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	app.logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", app.config.Auth.TokenLifetimeMinutes)

	hasher, err := auth.NewArgon2Hasher(app.config.Auth.Argon2)
	if err != nil {
		return fmt.Errorf("failed to initialize password hasher: %w", err)
	}
	app.passwordHasher = hasher

	return nil
}

func (app *application) initServices() error {
	var err error

	app.credentialService, err = service.NewCredentialService(
		app.userStore,
		app.passwordHasher,
		app.jwtService,
		app.logger,
	)
	if err != nil {
		return fmt.Errorf("failed to create credential service: %w", err)
	}

	app.userService, err = service.NewUserService(app.userStore, app.logger)
	if err != nil {
		return fmt.Errorf("failed to create user service: %w", err)
	}

	app.bookmarkService, err = service.NewBookmarkService(app.bookmarkStore, app.logger)
	if err != nil {
		return fmt.Errorf("failed to create bookmark service: %w", err)
	}

	return nil
}

// Run serves HTTP until ctx is cancelled, then shuts down and releases resources.
func (app *application) Run(ctx context.Context) error {
	return app.startHTTPServer(ctx, app.setupRouter())
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	app.logger.Info("Cleaning up application resources")
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database connection", "error", err)
		}
	}
}
