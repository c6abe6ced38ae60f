package services

import (
	"context"

	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/kidsclub_backend/internal/core/ports/repositories"
)

// SequenceSvc hands out gap-free, per-year document numbers.
type SequenceSvc interface {
	// NextNumber returns the next unused number of a family for a year, e.g. FT-2025-004.
	NextNumber(ctx context.Context, family domain.DocumentFamily, year int) (string, error)

	// FormatNumber renders seq with the family's prefix and padding.
	FormatNumber(family domain.DocumentFamily, year int, seq int) (string, error)

	// ResetCounter forces the counter of a family/year inside an open unit of work.
	ResetCounter(ctx context.Context, store portsrepo.FinanceTxStore, family domain.DocumentFamily, year int, value int) error
}
