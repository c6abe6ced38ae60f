package repositories

import (
	"context"

	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
)

// SequenceRepository backs the per-family, per-year document counters.
type SequenceRepository interface {
	// ListRecentNumbers returns up to limit document numbers of a family, most recent issue date first.
	ListRecentNumbers(ctx context.Context, family domain.DocumentFamily, limit int) ([]string, error)

	// NextSequenceValue atomically advances the counter to max(current, floor)+1 and returns it.
	NextSequenceValue(ctx context.Context, family domain.DocumentFamily, year int, floor int) (int, error)
}
