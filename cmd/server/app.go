package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/rfoley/taskward-api/internal/config"
	"github.com/rfoley/taskward-api/internal/platform/postgres"
	"github.com/rfoley/taskward-api/internal/service/auth"
	"github.com/rfoley/taskward-api/internal/store"
)

// application holds the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore store.UserStore
	taskStore store.TaskStore

	// Service interfaces
	jwtService       auth.JWTService
	passwordHasher   *auth.BcryptHasher
	identityResolver *auth.IdentityResolver
}

// newApplication creates a new application instance with all dependencies
// initialized. Configuration, logger, and database connection must already
// be established.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordHasher = auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	app.userStore = postgres.NewPostgresUserStore(db, app.passwordHasher, logger)
	app.taskStore = postgres.NewPostgresTaskStore(db, logger)

	mode := auth.ModeToken
	if cfg.Auth.SkipAuth {
		mode = auth.ModeBypass
		logger.Warn("AUTHENTICATION BYPASS ENABLED",
			"detail", "every request resolves to a synthetic identity without credential checks; development use only")
	}
	app.identityResolver = auth.NewIdentityResolver(mode, app.jwtService, app.userStore)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		closeDatabase(app.db, app.logger)
	}

	app.logger.Info("Application shutdown completed")
}
