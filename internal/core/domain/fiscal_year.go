package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FiscalYearStatus is the lock state of a calendar year.
type FiscalYearStatus string

const (
	FiscalYearOpen   FiscalYearStatus = "OPEN"
	FiscalYearClosed FiscalYearStatus = "CLOSED"
)

// FiscalSnapshot freezes the year's aggregates at closure time.
type FiscalSnapshot struct {
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetProfit     decimal.Decimal `json:"netProfit"`
	Taxes         decimal.Decimal `json:"taxes"`
}

// FiscalYear is keyed by the calendar year. A year without a record is OPEN.
type FiscalYear struct {
	Year       int              `json:"year"`
	Status     FiscalYearStatus `json:"status"`
	ClosedAt   *time.Time       `json:"closedAt,omitempty"`
	ClosedBy   *string          `json:"closedBy,omitempty"`
	ReopenedAt *time.Time       `json:"reopenedAt,omitempty"`
	ReopenedBy *string          `json:"reopenedBy,omitempty"`
	Snapshot   *FiscalSnapshot  `json:"snapshot,omitempty"`
}

// IsClosed reports whether the year is locked.
func (f *FiscalYear) IsClosed() bool {
	return f.Status == FiscalYearClosed
}
