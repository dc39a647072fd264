// Package main implements the entry point for the bookmark API server,
// which stores users' bookmarks behind email/password authentication.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/bookmark-api/internal/config"
	"github.com/phrazzld/bookmark-api/internal/platform/logger"
)

// cliOptions holds the parsed command line flags.
type cliOptions struct {
	migrateCmd     string
	migrateOnStart bool
}

func parseFlags(args []string, output io.Writer) (cliOptions, error) {
	var opts cliOptions

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.migrateCmd, "migrate", "",
		"Run a database migration command and exit (up|down|status|version|reset)")
	fs.BoolVar(&opts.migrateOnStart, "migrate-on-start", false,
		"Apply pending migrations before serving requests")

	if err := fs.Parse(args); err != nil {
		return cliOptions{}, err
	}
	if opts.migrateCmd != "" && !isSupportedMigrationCommand(opts.migrateCmd) {
		return cliOptions{}, fmt.Errorf("unsupported migration command %q", opts.migrateCmd)
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	cfg, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, opts); err != nil {
		slog.Error("Server exited with error", "error", err)
		stop()
		os.Exit(1)
	}
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if _, err := logger.Setup(cfg.Server); err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_url", maskDatabaseURL(cfg.Database.URL))

	return cfg, nil
}

// run either executes a one-shot migration command or serves HTTP until ctx
// is cancelled.
func run(ctx context.Context, cfg *config.Config, opts cliOptions) error {
	if opts.migrateCmd != "" {
		return runMigrations(ctx, cfg, opts.migrateCmd)
	}

	if opts.migrateOnStart {
		if err := runMigrations(ctx, cfg, "up"); err != nil {
			return fmt.Errorf("failed to apply migrations on start: %w", err)
		}
	}

	db, err := setupAppDatabase(ctx, cfg, slog.Default())
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, slog.Default(), db)
	if err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("Failed to close database", "error", closeErr)
		}
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
