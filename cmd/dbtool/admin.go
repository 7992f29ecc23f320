package main

import (
	"kakanin/cmd"

	"github.com/spf13/cobra"
)

func adminCmd(config func() cmd.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "admin",
		Short: "Create the administrator from ADMIN_USERNAME and ADMIN_PASSWORD if none exists",
		RunE: func(c *cobra.Command, _ []string) error {
			cfg := config()
			db, err := openMigrated(cfg)
			if err != nil {
				return err
			}

			app := cmd.NewCompositionRoot(cfg, db)
			return app.EnsureAdminUser(c.Context(), newLogger(cfg))
		},
	}
}
