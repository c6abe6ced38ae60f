package repositories

import (
	"context"

	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
)

// YearStatusCache memoizes the OPEN/CLOSED status of fiscal years.
// Get reports ok=false on a miss; implementations may also treat backend failures as a miss.
type YearStatusCache interface {
	Get(ctx context.Context, year int) (domain.FiscalYearStatus, bool)
	Set(ctx context.Context, year int, status domain.FiscalYearStatus)
	Invalidate(ctx context.Context, year int)
}
