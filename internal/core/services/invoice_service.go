package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/kidsclub_backend/internal/apperrors"
	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/kidsclub_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/kidsclub_backend/internal/core/ports/services"
	"github.com/SscSPs/kidsclub_backend/internal/dto"
	"github.com/google/uuid"
)

const defaultInvoicePageSize = 20

// InvoiceService provides invoice CRUD. Numbers come from the sequence generator and
// every write is checked against the fiscal lock.
type InvoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	sequence    portssvc.SequenceSvc
	fiscal      portssvc.FiscalYearGuard
	audit       portssvc.AuditRecorderSvc
}

// InvoiceServiceOption is a functional option for configuring the invoice service
type InvoiceServiceOption func(*InvoiceService)

// WithInvoiceAudit sets the audit recorder for deletions.
func WithInvoiceAudit(audit portssvc.AuditRecorderSvc) InvoiceServiceOption {
	return func(s *InvoiceService) {
		s.audit = audit
	}
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(repo portsrepo.InvoiceRepositoryFacade, sequence portssvc.SequenceSvc, fiscal portssvc.FiscalYearGuard, options ...InvoiceServiceOption) *InvoiceService {
	svc := &InvoiceService{
		invoiceRepo: repo,
		sequence:    sequence,
		fiscal:      fiscal,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.InvoiceSvcFacade = (*InvoiceService)(nil)

// CreateInvoice numbers and stores a new invoice.
func (s *InvoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, userID string) (*domain.Invoice, error) {
	if err := s.fiscal.AssertMutable(ctx, req.IssueDate); err != nil {
		return nil, err
	}

	number, err := s.sequence.NextNumber(ctx, domain.FamilyInvoice, req.IssueDate.Year())
	if err != nil {
		return nil, err
	}

	invoice := buildInvoice(req, number, userID, s.Now())
	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "Failed to save invoice", slog.String("number", number))
		return nil, fmt.Errorf("failed to save invoice %s: %w", number, err)
	}

	s.LogInfo(ctx, "Invoice created",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("number", invoice.Number),
		slog.String("total", invoice.TotalAmount.StringFixed(2)))
	return &invoice, nil
}

// GetInvoiceByID retrieves a non-deleted invoice.
func (s *InvoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("invoice %s: %w", invoiceID, err)
		}
		s.LogError(ctx, err, "Failed to get invoice", slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to get invoice %s: %w", invoiceID, err)
	}
	if invoice.IsDeleted {
		return nil, fmt.Errorf("invoice %s: %w", invoiceID, apperrors.ErrNotFound)
	}
	return invoice, nil
}

// ListInvoices returns a page of the invoices of a year.
func (s *InvoiceService) ListInvoices(ctx context.Context, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultInvoicePageSize
	}
	invoices, nextToken, err := s.invoiceRepo.ListInvoicesByYear(ctx, params.Year, params.IncludeGhosts, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices", slog.Int("year", params.Year))
		return nil, fmt.Errorf("failed to list invoices of %d: %w", params.Year, err)
	}
	return &dto.ListInvoicesResponse{
		Invoices:  dto.ToInvoiceResponses(invoices),
		NextToken: nextToken,
	}, nil
}

// UpdateInvoice applies a partial update. The number never changes; SENT and SEALED_SDI
// invoices only accept status and notes changes. Moving the issue date guards both years.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest, userID string) (*domain.Invoice, error) {
	invoice, err := s.GetInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if err := s.fiscal.AssertMutable(ctx, invoice.IssueDate); err != nil {
		return nil, err
	}
	if invoice.Status.IsExternallyObservable() && req.ChangesContent() {
		return nil, fmt.Errorf("%w: invoice %s is %s and its content can no longer change", apperrors.ErrConflict, invoice.Number, invoice.Status)
	}

	if req.IssueDate != nil {
		if req.IssueDate.Year() != invoice.IssueDate.Year() {
			return nil, fmt.Errorf("%w: issue date cannot move invoice %s to another year", apperrors.ErrValidation, invoice.Number)
		}
		if err := s.fiscal.AssertMutable(ctx, *req.IssueDate); err != nil {
			return nil, err
		}
		invoice.IssueDate = *req.IssueDate
	}
	if req.ClientID != nil {
		invoice.ClientID = *req.ClientID
	}
	if req.ChildName != nil {
		invoice.ChildName = *req.ChildName
	}
	if req.DueDate != nil {
		invoice.DueDate = *req.DueDate
	}
	if req.Status != nil {
		invoice.Status = *req.Status
	}
	if req.Notes != nil {
		invoice.Notes = *req.Notes
	}
	if req.Items != nil {
		invoice.Items = dto.ToLineItems(req.Items)
	}
	if req.GlobalDiscount != nil {
		invoice.GlobalDiscount = *req.GlobalDiscount
	}
	if req.HasStampDuty != nil {
		invoice.HasStampDuty = *req.HasStampDuty
	} else if req.Items != nil || req.GlobalDiscount != nil {
		invoice.HasStampDuty = domain.RequiresStampDuty(domain.CalculateTotals(invoice.Items, invoice.GlobalDiscount, false).Taxable)
	}
	// The stored total is only recomputed when the amounts themselves change.
	if req.ChangesAmounts() {
		invoice.Recalculate()
	}
	invoice.Touch(userID, s.Now())

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		s.LogError(ctx, err, "Failed to update invoice", slog.String("invoice_id", invoiceID))
		return nil, fmt.Errorf("failed to update invoice %s: %w", invoiceID, err)
	}
	s.LogInfo(ctx, "Invoice updated", slog.String("invoice_id", invoiceID))
	return invoice, nil
}

// DeleteInvoice soft-deletes an invoice. The freed number shows up as a gap in the audit.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, invoiceID string, userID string) error {
	invoice, err := s.GetInvoiceByID(ctx, invoiceID)
	if err != nil {
		return err
	}
	if err := s.fiscal.AssertMutable(ctx, invoice.IssueDate); err != nil {
		return err
	}
	if invoice.Status.IsExternallyObservable() {
		return fmt.Errorf("%w: invoice %s is %s and cannot be deleted", apperrors.ErrConflict, invoice.Number, invoice.Status)
	}

	if err := s.invoiceRepo.MarkInvoiceDeleted(ctx, invoiceID, userID, s.Now()); err != nil {
		s.LogError(ctx, err, "Failed to delete invoice", slog.String("invoice_id", invoiceID))
		return fmt.Errorf("failed to delete invoice %s: %w", invoiceID, err)
	}

	if s.audit != nil {
		s.audit.Record(ctx, domain.AuditLog{
			Action:     domain.AuditInvoiceDeleted,
			EntityType: "invoice",
			EntityID:   invoiceID,
			Amount:     &invoice.TotalAmount,
			Details:    fmt.Sprintf("invoice %s deleted", invoice.Number),
			ActorID:    userID,
		})
	}
	s.LogInfo(ctx, "Invoice deleted", slog.String("invoice_id", invoiceID), slog.String("number", invoice.Number))
	return nil
}

// buildInvoice turns a request into a new invoice with computed totals.
// Stamp duty follows the taxable amount unless the request sets it explicitly.
func buildInvoice(req dto.CreateInvoiceRequest, number string, userID string, now time.Time) domain.Invoice {
	items := dto.ToLineItems(req.Items)
	hasStampDuty := domain.RequiresStampDuty(domain.CalculateTotals(items, req.GlobalDiscount, false).Taxable)
	if req.HasStampDuty != nil {
		hasStampDuty = *req.HasStampDuty
	}
	status := req.Status
	if status == "" {
		status = domain.InvoiceDraft
	}

	invoice := domain.Invoice{
		InvoiceID:      uuid.NewString(),
		Number:         number,
		ClientID:       req.ClientID,
		ChildName:      req.ChildName,
		EnrollmentID:   req.EnrollmentID,
		LocationID:     req.LocationID,
		IssueDate:      req.IssueDate,
		DueDate:        req.DueDate,
		Status:         status,
		Items:          items,
		GlobalDiscount: req.GlobalDiscount,
		HasStampDuty:   hasStampDuty,
		Notes:          req.Notes,
		AuditFields:    domain.NewAuditFields(userID, now),
	}
	invoice.Recalculate()
	return invoice
}
