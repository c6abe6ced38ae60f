package services

import (
	"context"

	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
	"github.com/SscSPs/kidsclub_backend/internal/dto"
)

// IntegrityAuditorSvc finds holes in the invoice sequence.
type IntegrityAuditorSvc interface {
	AuditYear(ctx context.Context, year int) (*domain.GapReport, error)
}

// GapRemediationSvc offers the three ways of closing a gap. Each one fails with
// apperrors.ErrConflict when the number is no longer missing.
type GapRemediationSvc interface {
	// PrepareManualFill returns a draft seeded with the missing number and neighbour dates.
	PrepareManualFill(ctx context.Context, year int, seq int) (*domain.ManualFillDraft, error)

	// FillGap writes a new invoice at exactly the missing number.
	FillGap(ctx context.Context, year int, seq int, req dto.FillGapRequest, userID string) (*domain.Invoice, []domain.ValidationWarning, error)

	// CascadeRenumber shifts every invoice above the gap down by one and returns how many moved.
	CascadeRenumber(ctx context.Context, year int, seq int, userID string) (int, error)

	// VoidPlaceholder writes a zero-amount VOID invoice at the missing number.
	VoidPlaceholder(ctx context.Context, year int, seq int, justification string, userID string) (*domain.Invoice, error)
}

// IntegritySvcFacade combines all sequence integrity service interfaces
type IntegritySvcFacade interface {
	IntegrityAuditorSvc
	GapRemediationSvc
}
