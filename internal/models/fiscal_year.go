package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FiscalSnapshot is stored in the snapshot JSONB column of fiscal_years.
type FiscalSnapshot struct {
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetProfit     decimal.Decimal `json:"netProfit"`
	Taxes         decimal.Decimal `json:"taxes"`
}

// FiscalYear represents a row of the fiscal_years table.
type FiscalYear struct {
	Year       int             `db:"year"`
	Status     string          `db:"status"`
	ClosedAt   *time.Time      `db:"closed_at"`
	ClosedBy   *string         `db:"closed_by"`
	ReopenedAt *time.Time      `db:"reopened_at"`
	ReopenedBy *string         `db:"reopened_by"`
	Snapshot   *FiscalSnapshot `db:"snapshot"`
}
