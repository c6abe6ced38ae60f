package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/SscSPs/kidsclub_backend/internal/platform/bootstrap"
	"github.com/SscSPs/kidsclub_backend/internal/platform/config"
	"github.com/spf13/cobra"
)

var version = "1.0.0"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "kidsclub_admin",
		Short: "Back-office maintenance for the kids' club finance database",
		Long: `kidsclub_admin runs finance maintenance jobs against the same database as the API:
auditing the invoice sequence, closing and reopening fiscal years,
reconciling ghost invoices and applying migrations.

Configuration is read from the environment (and .env) like the API server.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newAuditGapsCmd(),
		newCloseYearCmd(),
		newReopenYearCmd(),
		newReconcileCmd(),
		newMigrateCmd(),
	)
	return root
}

// withApp loads the configuration, builds the service graph and hands it to fn.
func withApp(cmd *cobra.Command, fn func(app *bootstrap.App) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	app, err := bootstrap.New(cmd.Context(), cfg, slog.Default())
	if err != nil {
		return err
	}
	defer app.Close()
	return fn(app)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
