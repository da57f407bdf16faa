package cmd

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Rana718/groundwork/internal/config"
	"github.com/Rana718/groundwork/internal/database"
	"github.com/Rana718/groundwork/internal/migrator"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func connect(ctx context.Context, cfg *config.Config) (*database.Connection, error) {
	conn, err := database.Connect(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return conn, nil
}

// newMigrator accepts a nil conn for operations that only touch files.
func newMigrator(cfg *config.Config, conn *database.Connection) *migrator.Migrator {
	if conn == nil {
		return migrator.New(nil, squirrel.StatementBuilder, cfg.MigrationsPath, logger.Named("migrator"))
	}
	return migrator.New(conn.DB, conn.Builder, cfg.MigrationsPath, logger.Named("migrator"))
}
