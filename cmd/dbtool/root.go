package main

import (
	"log/slog"
	"os"

	"kakanin/cmd"
	"kakanin/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newRootCmd() *cobra.Command {
	var driver string

	root := &cobra.Command{
		Use:          "dbtool",
		Short:        "Database maintenance for the kakanin order tracker",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&driver, "driver", "", "database driver (postgres or sqlite), overrides DB_DRIVER")

	config := func() cmd.Config {
		config := cmd.LoadConfig(os.Getenv)
		if driver != "" {
			config.DBDriver = driver
		}
		return config
	}

	root.AddCommand(
		createDBCmd(config),
		migrateCmd(config),
		seedCmd(config),
		exportCmd(config),
		adminCmd(config),
	)
	return root
}

func newLogger(config cmd.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: config.SlogLevel()}))
}

// openMigrated opens the configured database and brings the schema up to date.
func openMigrated(config cmd.Config) (*gorm.DB, error) {
	db, err := postgres.Open(config.ConnectionConfig())
	if err != nil {
		return nil, err
	}
	if err = postgres.AutoMigrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
