package dto

import (
	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FiscalSnapshotRequest carries operator-provided closing figures.
type FiscalSnapshotRequest struct {
	TotalRevenue  decimal.Decimal `json:"totalRevenue" binding:"decimal_gte0"`
	TotalExpenses decimal.Decimal `json:"totalExpenses" binding:"decimal_gte0"`
	NetProfit     decimal.Decimal `json:"netProfit"`
	Taxes         decimal.Decimal `json:"taxes" binding:"decimal_gte0"`
}

// CloseFiscalYearRequest defines the optional body of a close request.
// When Snapshot is omitted it is computed from the year's cash transactions.
type CloseFiscalYearRequest struct {
	Snapshot *FiscalSnapshotRequest `json:"snapshot"`
}

// ToDomain converts the request snapshot, returning nil when none was sent.
func (r CloseFiscalYearRequest) ToDomain() *domain.FiscalSnapshot {
	if r.Snapshot == nil {
		return nil
	}
	return &domain.FiscalSnapshot{
		TotalRevenue:  r.Snapshot.TotalRevenue,
		TotalExpenses: r.Snapshot.TotalExpenses,
		NetProfit:     r.Snapshot.NetProfit,
		Taxes:         r.Snapshot.Taxes,
	}
}

// FiscalYearStatusResponse is the lightweight status of a year.
type FiscalYearStatusResponse struct {
	Year   int                     `json:"year"`
	Status domain.FiscalYearStatus `json:"status"`
}

// ListFiscalYearsResponse wraps every recorded fiscal year.
type ListFiscalYearsResponse struct {
	FiscalYears []domain.FiscalYear `json:"fiscalYears"`
}
