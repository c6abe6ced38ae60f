package repositories

import (
	"context"

	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
)

// FiscalYearReader defines read operations for fiscal year records
type FiscalYearReader interface {
	// FindFiscalYear returns apperrors.ErrNotFound when the year has no record (implicitly OPEN).
	FindFiscalYear(ctx context.Context, year int) (*domain.FiscalYear, error)

	ListFiscalYears(ctx context.Context) ([]domain.FiscalYear, error)
}

// FiscalYearWriter defines write operations for fiscal year records
type FiscalYearWriter interface {
	// UpsertFiscalYear creates or overwrites the record for fy.Year.
	UpsertFiscalYear(ctx context.Context, fy domain.FiscalYear) error
}

// FiscalYearRepositoryFacade combines all fiscal year repository interfaces
type FiscalYearRepositoryFacade interface {
	FiscalYearReader
	FiscalYearWriter
}
