package main

import (
	"fmt"

	"github.com/SscSPs/kidsclub_backend/internal/platform/bootstrap"
	"github.com/spf13/cobra"
)

func newAuditGapsCmd() *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:     "audit-gaps",
		Short:   "Report missing numbers in the invoice sequence of a year",
		Example: `  kidsclub_admin audit-gaps --year 2025`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(app *bootstrap.App) error {
				report, err := app.Services.Integrity.AuditYear(cmd.Context(), year)
				if err != nil {
					return err
				}
				if err := printJSON(cmd, report); err != nil {
					return err
				}
				if report.HasGaps() {
					return fmt.Errorf("fiscal year %d has %d missing invoice numbers", year, len(report.Missing))
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "Fiscal year to audit")
	_ = cmd.MarkFlagRequired("year")
	return cmd
}

func newCloseYearCmd() *cobra.Command {
	var (
		year  int
		actor string
	)
	cmd := &cobra.Command{
		Use:   "close-year",
		Short: "Close a fiscal year, computing its snapshot from the recorded transactions",
		Long: `close-year locks every record dated in the year. It refuses to run while the
invoice sequence of the year has gaps; use audit-gaps to list them.`,
		Example: `  kidsclub_admin close-year --year 2024 --actor accountant@club`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(app *bootstrap.App) error {
				fy, err := app.Services.FiscalYear.CloseYear(cmd.Context(), year, nil, actor)
				if err != nil {
					return err
				}
				return printJSON(cmd, fy)
			})
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "Fiscal year to close")
	cmd.Flags().StringVar(&actor, "actor", "", "Who is closing the year (recorded in the audit log)")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("actor")
	return cmd
}

func newReopenYearCmd() *cobra.Command {
	var (
		year  int
		actor string
	)
	cmd := &cobra.Command{
		Use:     "reopen-year",
		Short:   "Reopen a closed fiscal year, keeping its snapshot",
		Example: `  kidsclub_admin reopen-year --year 2024 --actor accountant@club`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(app *bootstrap.App) error {
				fy, err := app.Services.FiscalYear.ReopenYear(cmd.Context(), year, actor)
				if err != nil {
					return err
				}
				return printJSON(cmd, fy)
			})
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "Fiscal year to reopen")
	cmd.Flags().StringVar(&actor, "actor", "", "Who is reopening the year (recorded in the audit log)")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("actor")
	return cmd
}
