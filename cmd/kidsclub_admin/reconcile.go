package main

import (
	"github.com/SscSPs/kidsclub_backend/internal/platform/bootstrap"
	"github.com/spf13/cobra"
)

func newReconcileCmd() *cobra.Command {
	var (
		enrollmentID string
		actor        string
	)
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Bring the ghost invoices of an enrollment in line with its remaining balance",
		Long: `reconcile keeps a single ghost invoice for what is still owed on an enrollment
and voids every other one. Running it again changes nothing.`,
		Example: `  kidsclub_admin reconcile --enrollment 5f0c... --actor ops`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(app *bootstrap.App) error {
				result, err := app.Services.Payment.ReconcileEnrollment(cmd.Context(), enrollmentID, actor)
				if err != nil {
					return err
				}
				return printJSON(cmd, result)
			})
		},
	}
	cmd.Flags().StringVar(&enrollmentID, "enrollment", "", "Enrollment ID")
	cmd.Flags().StringVar(&actor, "actor", "system", "Who runs the job (recorded on created ghosts)")
	_ = cmd.MarkFlagRequired("enrollment")
	return cmd
}
