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
	"github.com/SscSPs/kidsclub_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const paymentCategory = "ISCRIZIONI"

// PaymentService records enrollment payments and keeps ghost invoices in line with the balance.
//
// A payment runs in two phases. The atomic phase creates or promotes the invoice, writes the
// income transaction and activates the enrollment in one database transaction. The
// reconciliation phase then voids stale ghosts and issues one for the remaining balance; it is
// idempotent and may fail independently, in which case the payment is reported as a partial
// success and ReconcileEnrollment can be run again later.
type PaymentService struct {
	BaseService
	enrollmentRepo portsrepo.EnrollmentReader
	invoiceRepo    portsrepo.InvoiceRepositoryFacade
	uow            portsrepo.UnitOfWork
	sequence       portssvc.SequenceSvc
	fiscal         portssvc.FiscalYearGuard
	audit          portssvc.AuditRecorderSvc
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(
	enrollmentRepo portsrepo.EnrollmentReader,
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	uow portsrepo.UnitOfWork,
	sequence portssvc.SequenceSvc,
	fiscal portssvc.FiscalYearGuard,
	audit portssvc.AuditRecorderSvc,
) *PaymentService {
	return &PaymentService{
		enrollmentRepo: enrollmentRepo,
		invoiceRepo:    invoiceRepo,
		uow:            uow,
		sequence:       sequence,
		fiscal:         fiscal,
		audit:          audit,
	}
}

var _ portssvc.PaymentSvcFacade = (*PaymentService)(nil)

// ProcessPayment records a payment against an enrollment.
func (s *PaymentService) ProcessPayment(ctx context.Context, req domain.PaymentRequest, actorID string) (*domain.PaymentOutcome, error) {
	logger := s.GetLogger(ctx).With(slog.String("enrollment_id", req.EnrollmentID))

	if err := validatePayment(req); err != nil {
		s.recordFailure(ctx, req, actorID, err)
		return nil, err
	}

	enrollment, err := s.enrollmentRepo.FindEnrollmentByID(ctx, req.EnrollmentID)
	if err != nil {
		err = fmt.Errorf("enrollment %s: %w", req.EnrollmentID, err)
		s.recordFailure(ctx, req, actorID, err)
		return nil, err
	}
	if err := s.fiscal.AssertMutable(ctx, req.Date); err != nil {
		s.recordFailure(ctx, req, actorID, err)
		return nil, err
	}

	// The number is drawn before the transaction: the counter commits on its own, so a
	// rolled-back payment leaves a gap that the integrity audit will surface.
	var number string
	if req.NeedsInvoice() {
		number, err = s.sequence.NextNumber(ctx, domain.FamilyInvoice, req.Date.Year())
		if err != nil {
			s.recordFailure(ctx, req, actorID, err)
			return nil, err
		}
	}

	outcome := &domain.PaymentOutcome{EnrollmentID: enrollment.EnrollmentID}
	now := s.Now()

	err = s.uow.RunInTx(ctx, func(ctx context.Context, store portsrepo.FinanceTxStore) error {
		var (
			invoice *domain.Invoice
			err     error
		)
		switch {
		case req.GhostInvoiceID != nil:
			invoice, err = s.promoteGhost(ctx, store, *req.GhostInvoiceID, enrollment, req, number, actorID)
		case req.CreateInvoice:
			invoice, err = s.createPaymentInvoice(ctx, store, enrollment, req, number, actorID)
		}
		if err != nil {
			return err
		}
		outcome.Invoice = invoice

		if !req.Amount.IsZero() {
			txn := domain.CashTransaction{
				TransactionID: uuid.NewString(),
				Date:          req.Date,
				Description:   fmt.Sprintf("Pagamento iscrizione - %s", enrollment.ChildName),
				Amount:        req.Amount,
				Type:          domain.Income,
				Category:      paymentCategory,
				PaymentMethod: req.PaymentMethod,
				EnrollmentID:  &enrollment.EnrollmentID,
				LocationID:    enrollment.LocationID,
				AuditFields:   domain.NewAuditFields(actorID, now),
			}
			if invoice != nil {
				txn.InvoiceID = &invoice.InvoiceID
			} else {
				txn.ExcludeFromStats = true
			}
			if err := store.SaveCashTransaction(ctx, txn); err != nil {
				return fmt.Errorf("failed to save income transaction: %w", err)
			}
			outcome.Transaction = &txn
		}

		if enrollment.Status == domain.EnrollmentPending {
			changed, err := store.UpdateEnrollmentStatus(ctx, enrollment.EnrollmentID, domain.EnrollmentPending, domain.EnrollmentActive)
			if err != nil {
				return fmt.Errorf("failed to activate enrollment: %w", err)
			}
			outcome.Activated = changed
		}
		return nil
	})
	if err != nil {
		logger.Error("Payment transaction aborted", slog.String("error", err.Error()))
		s.recordFailure(ctx, req, actorID, err)
		return nil, err
	}

	result, recErr := s.ReconcileEnrollment(ctx, enrollment.EnrollmentID, actorID)
	if recErr != nil {
		logger.Warn("Payment recorded but reconciliation failed", slog.String("error", recErr.Error()))
		outcome.Reconciled = false
		outcome.Warning = "payment recorded, but the remaining balance could not be reconciled: " + recErr.Error()
	} else {
		outcome.Reconciled = true
		outcome.Reconciliation = result
	}

	s.recordSuccess(ctx, req, outcome, actorID)
	logger.Info("Payment recorded",
		slog.String("amount", req.Amount.StringFixed(2)),
		slog.Bool("promoted", req.GhostInvoiceID != nil),
		slog.Bool("reconciled", outcome.Reconciled))
	return outcome, nil
}

// ReconcileEnrollment recomputes what is still owed on an enrollment and leaves at most
// one open ghost invoice carrying exactly that amount. Re-running it changes nothing.
func (s *PaymentService) ReconcileEnrollment(ctx context.Context, enrollmentID string, actorID string) (*domain.ReconcileResult, error) {
	enrollment, err := s.enrollmentRepo.FindEnrollmentByID(ctx, enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("enrollment %s: %w", enrollmentID, err)
	}
	invoices, err := s.invoiceRepo.ListInvoicesByEnrollment(ctx, enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoices of enrollment %s: %w", enrollmentID, err)
	}

	paid := decimal.Zero
	var openGhosts []domain.Invoice
	for _, inv := range invoices {
		if inv.CountsAsPaid() {
			paid = paid.Add(inv.TotalAmount)
		}
		if inv.IsOpenGhost() {
			openGhosts = append(openGhosts, inv)
		}
	}
	remaining := enrollment.TotalPrice.Sub(paid)
	needsGhost := remaining.GreaterThan(domain.GhostBalanceTolerance)

	result := &domain.ReconcileResult{
		EnrollmentID:   enrollmentID,
		TotalPrice:     enrollment.TotalPrice,
		TotalPaid:      paid,
		Remaining:      remaining,
		VoidedGhostIDs: []string{},
	}

	keep := -1
	if needsGhost {
		for i := range openGhosts {
			if openGhosts[i].TotalAmount.Equal(remaining) {
				keep = i
				break
			}
		}
	}

	now := s.Now()
	for i := range openGhosts {
		if i == keep {
			continue
		}
		ghost := openGhosts[i]
		ghost.Status = domain.InvoiceVoid
		ghost.Touch(actorID, now)
		if err := s.invoiceRepo.UpdateInvoice(ctx, ghost); err != nil {
			return result, fmt.Errorf("failed to void ghost invoice %s: %w", ghost.Number, err)
		}
		result.VoidedGhostIDs = append(result.VoidedGhostIDs, ghost.InvoiceID)
	}

	switch {
	case keep >= 0:
		result.GhostInvoice = &openGhosts[keep]
	case needsGhost:
		ghost, err := s.createGhost(ctx, enrollment, remaining, actorID)
		if err != nil {
			return result, err
		}
		result.GhostInvoice = ghost
		result.GhostCreated = true
	}

	s.LogInfo(ctx, "Enrollment reconciled",
		slog.String("enrollment_id", enrollmentID),
		slog.String("paid", paid.StringFixed(2)),
		slog.String("remaining", remaining.StringFixed(2)),
		slog.Int("voided", len(result.VoidedGhostIDs)),
		slog.Bool("ghost_created", result.GhostCreated))
	return result, nil
}

func (s *PaymentService) promoteGhost(ctx context.Context, store portsrepo.FinanceTxStore, ghostID string, enrollment *domain.Enrollment, req domain.PaymentRequest, number string, actorID string) (*domain.Invoice, error) {
	ghost, err := store.FindInvoiceByIDForUpdate(ctx, ghostID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, &apperrors.GhostNotFoundError{InvoiceID: ghostID}
		}
		return nil, fmt.Errorf("failed to load ghost invoice %s: %w", ghostID, err)
	}
	if !ghost.IsOpenGhost() || (ghost.EnrollmentID != nil && *ghost.EnrollmentID != enrollment.EnrollmentID) {
		return nil, &apperrors.GhostNotFoundError{InvoiceID: ghostID}
	}

	now := s.Now()
	ghostNumber := ghost.Number
	ghost.PromotedFromGhostNumber = &ghostNumber
	ghost.PromotedAt = &now
	ghost.Number = number
	ghost.IsGhost = false
	ghost.Status = domain.InvoicePendingSDI
	ghost.IssueDate = req.Date
	ghost.ClientID = enrollment.ClientID
	ghost.ChildName = enrollment.ChildName
	ghost.EnrollmentID = &enrollment.EnrollmentID
	ghost.LocationID = enrollment.LocationID
	ghost.Items, ghost.HasStampDuty = paymentLines(fmt.Sprintf("Iscrizione - %s", enrollment.ChildName), req.Amount)
	ghost.GlobalDiscount = decimal.Zero
	ghost.Recalculate()
	ghost.Touch(actorID, now)

	if err := store.UpdateInvoice(ctx, *ghost); err != nil {
		return nil, fmt.Errorf("failed to promote ghost invoice %s: %w", ghostNumber, err)
	}
	return ghost, nil
}

func (s *PaymentService) createPaymentInvoice(ctx context.Context, store portsrepo.FinanceTxStore, enrollment *domain.Enrollment, req domain.PaymentRequest, number string, actorID string) (*domain.Invoice, error) {
	invoice := domain.Invoice{
		InvoiceID:      uuid.NewString(),
		Number:         number,
		ClientID:       enrollment.ClientID,
		ChildName:      enrollment.ChildName,
		EnrollmentID:   &enrollment.EnrollmentID,
		LocationID:     enrollment.LocationID,
		IssueDate:      req.Date,
		DueDate:        req.Date,
		Status:         domain.InvoicePendingSDI,
		GlobalDiscount: decimal.Zero,
		AuditFields:    domain.NewAuditFields(actorID, s.Now()),
	}
	invoice.Items, invoice.HasStampDuty = paymentLines(fmt.Sprintf("Iscrizione - %s", enrollment.ChildName), req.Amount)
	invoice.Recalculate()
	if err := store.SaveInvoice(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to save invoice %s: %w", number, err)
	}
	return &invoice, nil
}

func (s *PaymentService) createGhost(ctx context.Context, enrollment *domain.Enrollment, amount decimal.Decimal, actorID string) (*domain.Invoice, error) {
	now := s.Now()
	if err := s.fiscal.AssertMutable(ctx, now); err != nil {
		return nil, err
	}
	number, err := s.sequence.NextNumber(ctx, domain.FamilyGhostInvoice, now.Year())
	if err != nil {
		return nil, err
	}

	ghost := domain.Invoice{
		InvoiceID:      uuid.NewString(),
		Number:         number,
		ClientID:       enrollment.ClientID,
		ChildName:      enrollment.ChildName,
		EnrollmentID:   &enrollment.EnrollmentID,
		LocationID:     enrollment.LocationID,
		IssueDate:      now,
		DueDate:        enrollment.EndDate,
		Status:         domain.InvoiceDraft,
		GlobalDiscount: decimal.Zero,
		IsGhost:        true,
		AuditFields:    domain.NewAuditFields(actorID, now),
	}
	ghost.Items, ghost.HasStampDuty = paymentLines(fmt.Sprintf("Saldo residuo iscrizione - %s", enrollment.ChildName), amount)
	ghost.Recalculate()
	if err := s.invoiceRepo.SaveInvoice(ctx, ghost); err != nil {
		return nil, fmt.Errorf("failed to save ghost invoice %s: %w", number, err)
	}
	return &ghost, nil
}

func (s *PaymentService) recordSuccess(ctx context.Context, req domain.PaymentRequest, outcome *domain.PaymentOutcome, actorID string) {
	action := domain.AuditPaymentRecorded
	entityType, entityID := "enrollment", req.EnrollmentID
	details := fmt.Sprintf("payment of %s via %s, reconciled=%t", utils.FormatEuro(req.Amount), req.PaymentMethod, outcome.Reconciled)
	if outcome.Invoice != nil {
		entityType, entityID = "invoice", outcome.Invoice.InvoiceID
		details = fmt.Sprintf("invoice %s, %s", outcome.Invoice.Number, details)
		if outcome.Invoice.PromotedFromGhostNumber != nil {
			action = domain.AuditGhostPromoted
			details = fmt.Sprintf("ghost %s promoted to %s", *outcome.Invoice.PromotedFromGhostNumber, details)
		}
	}
	amount := req.Amount
	s.audit.Record(ctx, domain.AuditLog{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Amount:     &amount,
		Details:    details,
		ActorID:    actorID,
	})
}

func (s *PaymentService) recordFailure(ctx context.Context, req domain.PaymentRequest, actorID string, cause error) {
	amount := req.Amount
	s.audit.Record(ctx, domain.AuditLog{
		Action:     domain.AuditPaymentFailed,
		EntityType: "enrollment",
		EntityID:   req.EnrollmentID,
		Amount:     &amount,
		Details:    cause.Error(),
		ActorID:    actorID,
	})
}

func validatePayment(req domain.PaymentRequest) error {
	if req.Amount.IsNegative() {
		return fmt.Errorf("%w: payment amount cannot be negative", apperrors.ErrValidation)
	}
	if req.Amount.IsZero() && !req.NeedsInvoice() {
		return fmt.Errorf("%w: a zero payment must create or promote an invoice", apperrors.ErrValidation)
	}
	return nil
}

// paymentLines builds a single line whose document total, stamp duty included, equals amount.
func paymentLines(description string, amount decimal.Decimal) ([]domain.LineItem, bool) {
	price, hasStampDuty := domain.SplitStampDuty(amount)
	return []domain.LineItem{{
		Description: description,
		Quantity:    decimal.NewFromInt(1),
		Price:       price,
	}}, hasStampDuty
}
