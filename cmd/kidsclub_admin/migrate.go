package main

import (
	"fmt"

	"github.com/SscSPs/kidsclub_backend/internal/platform/config"
	"github.com/SscSPs/kidsclub_backend/pkg/database"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	var down bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations from MIGRATIONS_PATH",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			direction := database.MigrateUp
			if down {
				direction = database.MigrateDown
			}
			return database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, direction)
		},
	}
	cmd.Flags().BoolVar(&down, "down", false, "Roll back every migration instead of applying them")
	return cmd
}
