package main

import (
	"context"
	"database/sql"
	"fmt"

	"kakanin/cmd"
	"kakanin/internal/adapters/out/postgres"

	"github.com/lib/pq"
	"github.com/spf13/cobra"
)

const maintenanceDB = "postgres"

func createDBCmd(config func() cmd.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "createdb",
		Short: "Create the PostgreSQL database named by DB_NAME if it does not exist",
		RunE: func(c *cobra.Command, _ []string) error {
			cfg := config()
			if cfg.DBDriver != postgres.DriverPostgres {
				return fmt.Errorf("createdb needs the %s driver, got %q", postgres.DriverPostgres, cfg.DBDriver)
			}

			created, err := createDatabase(c.Context(), cfg.ConnectionConfig())
			if err != nil {
				return err
			}
			logger := newLogger(cfg)
			if created {
				logger.InfoContext(c.Context(), "Database created", "name", cfg.DBName)
			} else {
				logger.InfoContext(c.Context(), "Database already exists", "name", cfg.DBName)
			}
			return nil
		},
	}
}

// createDatabase connects to the maintenance database with lib/pq and issues
// CREATE DATABASE when target.Name is missing. It reports whether it created it.
func createDatabase(ctx context.Context, target postgres.ConnectionConfig) (bool, error) {
	maintenance := target
	maintenance.Name = maintenanceDB

	db, err := sql.Open("postgres", maintenance.DSN())
	if err != nil {
		return false, err
	}
	defer func() { _ = db.Close() }()

	var exists bool
	err = db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", target.Name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check database %q: %w", target.Name, err)
	}
	if exists {
		return false, nil
	}

	if _, err = db.ExecContext(ctx, createDatabaseStatement(target.Name)); err != nil {
		return false, fmt.Errorf("create database %q: %w", target.Name, err)
	}
	return true, nil
}

func createDatabaseStatement(name string) string {
	return "CREATE DATABASE " + pq.QuoteIdentifier(name)
}
