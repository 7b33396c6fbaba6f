// Package main implements the entry point for the taskward API server,
// a multi-tenant task tracker with token-based authentication.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/rfoley/taskward-api/internal/config"
	"github.com/rfoley/taskward-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "", "run a migration command (up, down, status) and exit")
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

// run loads configuration, wires dependencies, and either executes a
// migration command or starts the HTTP server.
func run(migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	if migrateCmd != "" {
		defer closeDatabase(db, appLogger)
		return runMigrations(db, migrateCmd, appLogger)
	}

	// Pending migrations are applied on every normal startup so the schema
	// is always current before the first request.
	if err := runMigrations(db, "up", appLogger); err != nil {
		closeDatabase(db, appLogger)
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		closeDatabase(db, appLogger)
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(context.Background())
}
