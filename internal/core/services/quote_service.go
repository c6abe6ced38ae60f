package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/kidsclub_backend/internal/apperrors"
	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/kidsclub_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/kidsclub_backend/internal/core/ports/services"
	"github.com/SscSPs/kidsclub_backend/internal/dto"
	"github.com/google/uuid"
)

// QuoteService provides quote CRUD with installment plans.
type QuoteService struct {
	BaseService
	quoteRepo portsrepo.QuoteRepositoryFacade
	sequence  portssvc.SequenceSvc
	fiscal    portssvc.FiscalYearGuard
}

// NewQuoteService creates a new QuoteService.
func NewQuoteService(repo portsrepo.QuoteRepositoryFacade, sequence portssvc.SequenceSvc, fiscal portssvc.FiscalYearGuard) *QuoteService {
	return &QuoteService{
		quoteRepo: repo,
		sequence:  sequence,
		fiscal:    fiscal,
	}
}

var _ portssvc.QuoteSvcFacade = (*QuoteService)(nil)

// CreateQuote numbers and stores a new quote.
func (s *QuoteService) CreateQuote(ctx context.Context, req dto.CreateQuoteRequest, userID string) (*domain.Quote, []domain.ValidationWarning, error) {
	if err := s.fiscal.AssertMutable(ctx, req.IssueDate); err != nil {
		return nil, nil, err
	}
	number, err := s.sequence.NextNumber(ctx, domain.FamilyQuote, req.IssueDate.Year())
	if err != nil {
		return nil, nil, err
	}

	items := dto.ToLineItems(req.Items)
	hasStampDuty := domain.RequiresStampDuty(domain.CalculateTotals(items, req.GlobalDiscount, false).Taxable)
	if req.HasStampDuty != nil {
		hasStampDuty = *req.HasStampDuty
	}
	now := s.Now()
	quote := domain.Quote{
		QuoteID:        uuid.NewString(),
		Number:         number,
		ClientID:       req.ClientID,
		ChildName:      req.ChildName,
		IssueDate:      req.IssueDate,
		ExpiryDate:     req.ExpiryDate,
		Status:         domain.QuoteDraft,
		Items:          items,
		GlobalDiscount: req.GlobalDiscount,
		HasStampDuty:   hasStampDuty,
		Installments:   dto.ToInstallments(req.Installments),
		Notes:          req.Notes,
		AuditFields:    domain.NewAuditFields(userID, now),
	}
	quote.Recalculate()

	if err := s.quoteRepo.SaveQuote(ctx, quote); err != nil {
		s.LogError(ctx, err, "Failed to save quote", slog.String("number", number))
		return nil, nil, fmt.Errorf("failed to save quote %s: %w", number, err)
	}

	warnings := s.warningsFor(ctx, &quote)
	s.LogInfo(ctx, "Quote created", slog.String("quote_id", quote.QuoteID), slog.String("number", number))
	return &quote, warnings, nil
}

// GetQuoteByID retrieves a non-deleted quote.
func (s *QuoteService) GetQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, []domain.ValidationWarning, error) {
	quote, err := s.quoteRepo.FindQuoteByID(ctx, quoteID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, fmt.Errorf("quote %s: %w", quoteID, err)
		}
		s.LogError(ctx, err, "Failed to get quote", slog.String("quote_id", quoteID))
		return nil, nil, fmt.Errorf("failed to get quote %s: %w", quoteID, err)
	}
	if quote.IsDeleted {
		return nil, nil, fmt.Errorf("quote %s: %w", quoteID, apperrors.ErrNotFound)
	}
	return quote, quote.InstallmentWarnings(), nil
}

// UpdateQuote applies a partial update; the number never changes.
func (s *QuoteService) UpdateQuote(ctx context.Context, quoteID string, req dto.UpdateQuoteRequest, userID string) (*domain.Quote, []domain.ValidationWarning, error) {
	quote, _, err := s.GetQuoteByID(ctx, quoteID)
	if err != nil {
		return nil, nil, err
	}
	if err := s.fiscal.AssertMutable(ctx, quote.IssueDate); err != nil {
		return nil, nil, err
	}
	if req.IssueDate != nil {
		if req.IssueDate.Year() != quote.IssueDate.Year() {
			return nil, nil, fmt.Errorf("%w: issue date cannot move quote %s to another year", apperrors.ErrValidation, quote.Number)
		}
		if err := s.fiscal.AssertMutable(ctx, *req.IssueDate); err != nil {
			return nil, nil, err
		}
		quote.IssueDate = *req.IssueDate
	}
	if req.ClientID != nil {
		quote.ClientID = *req.ClientID
	}
	if req.ChildName != nil {
		quote.ChildName = *req.ChildName
	}
	if req.ExpiryDate != nil {
		quote.ExpiryDate = *req.ExpiryDate
	}
	if req.Status != nil {
		quote.Status = *req.Status
	}
	if req.Notes != nil {
		quote.Notes = *req.Notes
	}
	if req.Items != nil {
		quote.Items = dto.ToLineItems(req.Items)
	}
	if req.GlobalDiscount != nil {
		quote.GlobalDiscount = *req.GlobalDiscount
	}
	if req.Installments != nil {
		quote.Installments = dto.ToInstallments(req.Installments)
	}
	if req.HasStampDuty != nil {
		quote.HasStampDuty = *req.HasStampDuty
	} else if req.Items != nil || req.GlobalDiscount != nil {
		quote.HasStampDuty = domain.RequiresStampDuty(domain.CalculateTotals(quote.Items, quote.GlobalDiscount, false).Taxable)
	}
	quote.Recalculate()
	quote.Touch(userID, s.Now())

	if err := s.quoteRepo.UpdateQuote(ctx, *quote); err != nil {
		s.LogError(ctx, err, "Failed to update quote", slog.String("quote_id", quoteID))
		return nil, nil, fmt.Errorf("failed to update quote %s: %w", quoteID, err)
	}
	return quote, s.warningsFor(ctx, quote), nil
}

// DeleteQuote soft-deletes a quote.
func (s *QuoteService) DeleteQuote(ctx context.Context, quoteID string, userID string) error {
	quote, _, err := s.GetQuoteByID(ctx, quoteID)
	if err != nil {
		return err
	}
	if err := s.fiscal.AssertMutable(ctx, quote.IssueDate); err != nil {
		return err
	}
	if err := s.quoteRepo.MarkQuoteDeleted(ctx, quoteID, userID, s.Now()); err != nil {
		s.LogError(ctx, err, "Failed to delete quote", slog.String("quote_id", quoteID))
		return fmt.Errorf("failed to delete quote %s: %w", quoteID, err)
	}
	s.LogInfo(ctx, "Quote deleted", slog.String("quote_id", quoteID))
	return nil
}

func (s *QuoteService) warningsFor(ctx context.Context, quote *domain.Quote) []domain.ValidationWarning {
	warnings := quote.InstallmentWarnings()
	for _, w := range warnings {
		s.LogWarn(ctx, "Quote saved with warning",
			slog.String("quote_id", quote.QuoteID), slog.String("code", string(w.Code)), slog.String("message", w.Message))
	}
	return warnings
}
