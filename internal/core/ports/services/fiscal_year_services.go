package services

import (
	"context"
	"time"

	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
)

// FiscalYearGuard answers whether records dated on a day may be changed.
type FiscalYearGuard interface {
	// AssertMutable returns an apperrors.FiscalLockError when date falls in a CLOSED year.
	AssertMutable(ctx context.Context, date time.Time) error
}

// FiscalYearReaderSvc defines read operations for fiscal years
type FiscalYearReaderSvc interface {
	// GetYearStatus returns OPEN for years without a record.
	GetYearStatus(ctx context.Context, year int) (domain.FiscalYearStatus, error)

	// GetFiscalYear returns the stored record, or an implicit OPEN one when none exists.
	GetFiscalYear(ctx context.Context, year int) (*domain.FiscalYear, error)

	ListYears(ctx context.Context) ([]domain.FiscalYear, error)
}

// FiscalYearWriterSvc defines the state transitions of a fiscal year
type FiscalYearWriterSvc interface {
	// CloseYear locks a year. A nil snapshot is computed from the year's cash transactions.
	// Closing is refused with apperrors.GapsPresentError while the invoice sequence has gaps.
	CloseYear(ctx context.Context, year int, snapshot *domain.FiscalSnapshot, actorID string) (*domain.FiscalYear, error)

	// ReopenYear unlocks a closed year, keeping its snapshot.
	ReopenYear(ctx context.Context, year int, actorID string) (*domain.FiscalYear, error)
}

// FiscalYearSvcFacade combines all fiscal year service interfaces
type FiscalYearSvcFacade interface {
	FiscalYearGuard
	FiscalYearReaderSvc
	FiscalYearWriterSvc
}
