package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/kidsclub_backend/internal/apperrors"
	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/kidsclub_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/kidsclub_backend/internal/core/ports/services"
)

// DefaultSequenceScanLimit is how many recent numbers are read to compute the counter floor.
const DefaultSequenceScanLimit = 50

// SequenceService hands out document numbers from a per-family, per-year counter.
type SequenceService struct {
	BaseService
	sequenceRepo portsrepo.SequenceRepository
	scanLimit    int
}

// SequenceServiceOption is a functional option for configuring the sequence service
type SequenceServiceOption func(*SequenceService)

// WithScanLimit sets how many recent numbers are scanned for the floor.
func WithScanLimit(limit int) SequenceServiceOption {
	return func(s *SequenceService) {
		if limit > 0 {
			s.scanLimit = limit
		}
	}
}

// NewSequenceService creates a new SequenceService.
func NewSequenceService(repo portsrepo.SequenceRepository, options ...SequenceServiceOption) *SequenceService {
	svc := &SequenceService{
		sequenceRepo: repo,
		scanLimit:    DefaultSequenceScanLimit,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.SequenceSvc = (*SequenceService)(nil)

// NextNumber returns max(floor, counter)+1 formatted for the family.
// The floor is the highest number of the year among the most recent documents, so numbers
// written outside the counter (imports, manual gap fills) are never handed out again.
func (s *SequenceService) NextNumber(ctx context.Context, family domain.DocumentFamily, year int) (string, error) {
	format, ok := domain.FormatOf(family)
	if !ok {
		return "", fmt.Errorf("%w: unknown document family %q", apperrors.ErrValidation, family)
	}

	recent, err := s.sequenceRepo.ListRecentNumbers(ctx, family, s.scanLimit)
	if err != nil {
		s.LogError(ctx, err, "Failed to read recent document numbers", slog.String("family", string(family)))
		return "", fmt.Errorf("failed to read recent %s numbers: %w", family, err)
	}
	floor := domain.MaxSequenceForYear(recent, format.Prefix, year)

	next, err := s.sequenceRepo.NextSequenceValue(ctx, family, year, floor)
	if err != nil {
		s.LogError(ctx, err, "Failed to advance document counter",
			slog.String("family", string(family)), slog.Int("year", year))
		return "", fmt.Errorf("failed to advance %s counter for %d: %w", family, year, err)
	}

	number := domain.FormatDocumentNumber(format.Prefix, year, next, format.PadWidth)
	s.LogDebug(ctx, "Document number assigned", slog.String("number", number), slog.Int("floor", floor))
	return number, nil
}

// FormatNumber renders seq with the family's prefix and padding.
func (s *SequenceService) FormatNumber(family domain.DocumentFamily, year int, seq int) (string, error) {
	format, ok := domain.FormatOf(family)
	if !ok {
		return "", fmt.Errorf("%w: unknown document family %q", apperrors.ErrValidation, family)
	}
	if seq <= 0 {
		return "", fmt.Errorf("%w: sequence must be positive, got %d", apperrors.ErrValidation, seq)
	}
	return domain.FormatDocumentNumber(format.Prefix, year, seq, format.PadWidth), nil
}

// ResetCounter forces the counter inside an open unit of work.
func (s *SequenceService) ResetCounter(ctx context.Context, store portsrepo.FinanceTxStore, family domain.DocumentFamily, year int, value int) error {
	if !family.IsValid() {
		return fmt.Errorf("%w: unknown document family %q", apperrors.ErrValidation, family)
	}
	if value < 0 {
		return fmt.Errorf("%w: counter cannot be negative", apperrors.ErrValidation)
	}
	if err := store.SetSequenceValue(ctx, family, year, value); err != nil {
		return fmt.Errorf("failed to reset %s counter for %d: %w", family, year, err)
	}
	return nil
}
