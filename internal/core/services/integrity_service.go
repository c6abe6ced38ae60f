package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/kidsclub_backend/internal/apperrors"
	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/kidsclub_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/kidsclub_backend/internal/core/ports/services"
	"github.com/SscSPs/kidsclub_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IntegrityService audits the invoice sequence of a year and remediates its gaps.
type IntegrityService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	uow         portsrepo.UnitOfWork
	fiscal      portssvc.FiscalYearGuard
	sequence    portssvc.SequenceSvc
	audit       portssvc.AuditRecorderSvc
}

// IntegrityServiceOption is a functional option for configuring the integrity service
type IntegrityServiceOption func(*IntegrityService)

// WithIntegrityAudit sets the audit recorder for remediation events.
func WithIntegrityAudit(audit portssvc.AuditRecorderSvc) IntegrityServiceOption {
	return func(s *IntegrityService) {
		s.audit = audit
	}
}

// NewIntegrityService creates a new IntegrityService.
func NewIntegrityService(
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	uow portsrepo.UnitOfWork,
	fiscal portssvc.FiscalYearGuard,
	sequence portssvc.SequenceSvc,
	options ...IntegrityServiceOption,
) *IntegrityService {
	svc := &IntegrityService{
		invoiceRepo: invoiceRepo,
		uow:         uow,
		fiscal:      fiscal,
		sequence:    sequence,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.IntegritySvcFacade = (*IntegrityService)(nil)

// AuditYear reports the missing and duplicated invoice numbers of a year.
// Ghost, deleted and other-year invoices are not part of the sequence.
func (s *IntegrityService) AuditYear(ctx context.Context, year int) (*domain.GapReport, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}
	_, report, err := s.loadYear(ctx, year)
	if err != nil {
		return nil, err
	}
	if len(report.Duplicates) > 0 {
		s.LogWarn(ctx, "Duplicate invoice numbers found", slog.Int("year", year), slog.Any("duplicates", report.Duplicates))
	}
	s.LogInfo(ctx, "Invoice sequence audited",
		slog.Int("year", year), slog.Int("checked", report.Checked), slog.Int("missing", len(report.Missing)))
	return report, nil
}

// PrepareManualFill returns a draft for the missing number with the neighbours' issue dates.
func (s *IntegrityService) PrepareManualFill(ctx context.Context, year int, seq int) (*domain.ManualFillDraft, error) {
	invoices, err := s.requireGap(ctx, year, seq)
	if err != nil {
		return nil, err
	}
	return s.draftFor(year, seq, invoices)
}

// FillGap writes a new invoice carrying exactly the missing number.
// An issue date outside the neighbours' range is reported as a warning.
func (s *IntegrityService) FillGap(ctx context.Context, year int, seq int, req dto.FillGapRequest, userID string) (*domain.Invoice, []domain.ValidationWarning, error) {
	if req.IssueDate.Year() != year {
		return nil, nil, fmt.Errorf("%w: issue date %s is not in %d", apperrors.ErrValidation, req.IssueDate.Format(domain.DateLayout), year)
	}
	if err := s.fiscal.AssertMutable(ctx, req.IssueDate); err != nil {
		return nil, nil, err
	}
	invoices, err := s.requireGap(ctx, year, seq)
	if err != nil {
		return nil, nil, err
	}
	draft, err := s.draftFor(year, seq, invoices)
	if err != nil {
		return nil, nil, err
	}

	var warnings []domain.ValidationWarning
	if w := draft.DateWarning(req.IssueDate); w != nil {
		warnings = append(warnings, *w)
	}

	invoice := buildInvoice(req, draft.Number, userID, s.Now())
	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "Failed to save gap-filling invoice", slog.String("number", draft.Number))
		return nil, nil, fmt.Errorf("failed to fill gap %s: %w", draft.Number, err)
	}

	s.record(ctx, domain.AuditLog{
		Action:     domain.AuditGapFilled,
		EntityType: "invoice",
		EntityID:   invoice.InvoiceID,
		Amount:     &invoice.TotalAmount,
		Details:    fmt.Sprintf("gap %s filled manually", draft.Number),
		ActorID:    userID,
	})
	s.LogInfo(ctx, "Sequence gap filled", slog.String("number", draft.Number), slog.Int("warnings", len(warnings)))
	return &invoice, warnings, nil
}

// CascadeRenumber moves every invoice above the gap down by one, in ascending order so the
// unique number index never sees two rows with the same number, and resets the counter to
// the new highest number. Invoices already sent or sealed keep their numbers, so their
// presence above the gap refuses the whole operation.
func (s *IntegrityService) CascadeRenumber(ctx context.Context, year int, seq int, userID string) (int, error) {
	if err := s.fiscal.AssertMutable(ctx, yearStart(year)); err != nil {
		return 0, err
	}
	invoices, err := s.requireGap(ctx, year, seq)
	if err != nil {
		return 0, err
	}

	type shift struct {
		invoiceID string
		from      int
		number    string
	}
	var shifts []shift
	var locked []string
	highest := 0
	for _, inv := range invoices {
		current, ok := domain.ParseSequence(inv.Number)
		if !ok || current < seq {
			continue
		}
		if inv.Status.IsExternallyObservable() {
			locked = append(locked, inv.Number)
		}
		number, err := s.sequence.FormatNumber(domain.FamilyInvoice, year, current-1)
		if err != nil {
			return 0, err
		}
		shifts = append(shifts, shift{invoiceID: inv.InvoiceID, from: current, number: number})
		if current-1 > highest {
			highest = current - 1
		}
	}
	if len(locked) > 0 {
		sort.Strings(locked)
		return 0, fmt.Errorf("%w: cannot renumber invoices already sent or sealed: %s", apperrors.ErrConflict, strings.Join(locked, ", "))
	}
	sort.Slice(shifts, func(i, j int) bool { return shifts[i].from < shifts[j].from })

	err = s.uow.RunInTx(ctx, func(ctx context.Context, store portsrepo.FinanceTxStore) error {
		for _, sh := range shifts {
			if err := store.UpdateInvoiceNumber(ctx, sh.invoiceID, sh.number); err != nil {
				return fmt.Errorf("failed to renumber invoice %s: %w", sh.invoiceID, err)
			}
		}
		return s.sequence.ResetCounter(ctx, store, domain.FamilyInvoice, year, highest)
	})
	if err != nil {
		s.LogError(ctx, err, "Cascade renumber failed", slog.Int("year", year), slog.Int("gap", seq))
		return 0, err
	}

	s.record(ctx, domain.AuditLog{
		Action:     domain.AuditGapRenumbered,
		EntityType: "fiscal_year",
		EntityID:   fmt.Sprint(year),
		Details:    fmt.Sprintf("gap %d closed by shifting %d invoices down", seq, len(shifts)),
		ActorID:    userID,
	})
	s.LogInfo(ctx, "Invoice sequence renumbered", slog.Int("year", year), slog.Int("gap", seq), slog.Int("shifted", len(shifts)))
	return len(shifts), nil
}

// VoidPlaceholder writes a zero-amount VOID invoice at the missing number.
func (s *IntegrityService) VoidPlaceholder(ctx context.Context, year int, seq int, justification string, userID string) (*domain.Invoice, error) {
	justification = strings.TrimSpace(justification)
	if justification == "" {
		return nil, fmt.Errorf("%w: a justification is required to void a number", apperrors.ErrValidation)
	}
	if err := s.fiscal.AssertMutable(ctx, yearStart(year)); err != nil {
		return nil, err
	}
	invoices, err := s.requireGap(ctx, year, seq)
	if err != nil {
		return nil, err
	}
	draft, err := s.draftFor(year, seq, invoices)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	invoice := domain.Invoice{
		InvoiceID:      uuid.NewString(),
		Number:         draft.Number,
		IssueDate:      draft.SuggestedDate,
		DueDate:        draft.SuggestedDate,
		Status:         domain.InvoiceVoid,
		Items:          []domain.LineItem{},
		GlobalDiscount: decimal.Zero,
		TotalAmount:    decimal.Zero,
		Notes:          "Numero annullato: " + justification,
		AuditFields:    domain.NewAuditFields(userID, now),
	}
	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "Failed to save void placeholder", slog.String("number", draft.Number))
		return nil, fmt.Errorf("failed to void %s: %w", draft.Number, err)
	}

	s.record(ctx, domain.AuditLog{
		Action:     domain.AuditGapVoided,
		EntityType: "invoice",
		EntityID:   invoice.InvoiceID,
		Details:    fmt.Sprintf("%s voided: %s", draft.Number, justification),
		ActorID:    userID,
	})
	s.LogInfo(ctx, "Sequence gap voided", slog.String("number", draft.Number))
	return &invoice, nil
}

func (s *IntegrityService) loadYear(ctx context.Context, year int) ([]domain.Invoice, *domain.GapReport, error) {
	invoices, err := s.invoiceRepo.ListRealInvoicesForYear(ctx, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to load invoices for audit", slog.Int("year", year))
		return nil, nil, fmt.Errorf("failed to load invoices of %d: %w", year, err)
	}
	report := domain.BuildGapReport(year, invoiceNumbers(invoices))
	return invoices, &report, nil
}

// requireGap re-audits the year and fails with ErrConflict unless seq is still missing.
func (s *IntegrityService) requireGap(ctx context.Context, year int, seq int) ([]domain.Invoice, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}
	if seq <= 0 {
		return nil, fmt.Errorf("%w: sequence must be positive, got %d", apperrors.ErrValidation, seq)
	}
	invoices, report, err := s.loadYear(ctx, year)
	if err != nil {
		return nil, err
	}
	if !report.IsMissing(seq) {
		return nil, fmt.Errorf("%w: number %d of %d is not a gap", apperrors.ErrConflict, seq, year)
	}
	return invoices, nil
}

func (s *IntegrityService) draftFor(year int, seq int, invoices []domain.Invoice) (*domain.ManualFillDraft, error) {
	number, err := s.sequence.FormatNumber(domain.FamilyInvoice, year, seq)
	if err != nil {
		return nil, err
	}
	draft := &domain.ManualFillDraft{Number: number, Sequence: seq}

	prevSeq, nextSeq := 0, 0
	for i := range invoices {
		current, ok := domain.ParseSequence(invoices[i].Number)
		if !ok {
			continue
		}
		date := invoices[i].IssueDate
		if current < seq && current > prevSeq {
			prevSeq = current
			draft.PreviousIssueDate = &date
		}
		if current > seq && (nextSeq == 0 || current < nextSeq) {
			nextSeq = current
			draft.NextIssueDate = &date
		}
	}

	switch {
	case draft.PreviousIssueDate != nil:
		draft.SuggestedDate = *draft.PreviousIssueDate
	case draft.NextIssueDate != nil:
		draft.SuggestedDate = *draft.NextIssueDate
	default:
		draft.SuggestedDate = yearStart(year)
	}
	return draft, nil
}

func (s *IntegrityService) record(ctx context.Context, entry domain.AuditLog) {
	if s.audit != nil {
		s.audit.Record(ctx, entry)
	}
}

func yearStart(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}
