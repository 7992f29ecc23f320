package main

import (
	"kakanin/cmd"

	"github.com/spf13/cobra"
)

func migrateCmd(config func() cmd.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the users, buyer_info and orders tables",
		RunE: func(c *cobra.Command, _ []string) error {
			cfg := config()
			if _, err := openMigrated(cfg); err != nil {
				return err
			}
			newLogger(cfg).InfoContext(c.Context(), "Schema ready", "driver", cfg.DBDriver)
			return nil
		},
	}
}
