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
	"github.com/SscSPs/kidsclub_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// Defaults of the forfettario tax estimate applied to computed closing snapshots.
var (
	DefaultForfettarioCoefficient = decimal.RequireFromString("0.78")
	DefaultForfettarioTaxRate     = decimal.RequireFromString("0.05")
)

// FiscalYearService owns the OPEN/CLOSED state of calendar years and guards writes against closed ones.
type FiscalYearService struct {
	BaseService
	fiscalRepo     portsrepo.FiscalYearRepositoryFacade
	invoiceRepo    portsrepo.InvoiceReader
	txnRepo        portsrepo.CashTransactionReader
	cache          portsrepo.YearStatusCache
	audit          portssvc.AuditRecorderSvc
	taxCoefficient decimal.Decimal
	taxRate        decimal.Decimal
}

// FiscalYearServiceOption is a functional option for configuring the fiscal year service
type FiscalYearServiceOption func(*FiscalYearService)

// WithYearStatusCache sets the cache consulted by GetYearStatus and AssertMutable.
func WithYearStatusCache(cache portsrepo.YearStatusCache) FiscalYearServiceOption {
	return func(s *FiscalYearService) {
		s.cache = cache
	}
}

// WithFiscalAudit sets the audit recorder for close/reopen events.
func WithFiscalAudit(audit portssvc.AuditRecorderSvc) FiscalYearServiceOption {
	return func(s *FiscalYearService) {
		s.audit = audit
	}
}

// WithForfettarioRates sets the profitability coefficient and the substitute tax rate.
func WithForfettarioRates(coefficient, rate decimal.Decimal) FiscalYearServiceOption {
	return func(s *FiscalYearService) {
		s.taxCoefficient = coefficient
		s.taxRate = rate
	}
}

// NewFiscalYearService creates a new FiscalYearService.
func NewFiscalYearService(
	fiscalRepo portsrepo.FiscalYearRepositoryFacade,
	invoiceRepo portsrepo.InvoiceReader,
	txnRepo portsrepo.CashTransactionReader,
	options ...FiscalYearServiceOption,
) *FiscalYearService {
	svc := &FiscalYearService{
		fiscalRepo:     fiscalRepo,
		invoiceRepo:    invoiceRepo,
		txnRepo:        txnRepo,
		taxCoefficient: DefaultForfettarioCoefficient,
		taxRate:        DefaultForfettarioTaxRate,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.FiscalYearSvcFacade = (*FiscalYearService)(nil)

// GetYearStatus returns the status of year, from the cache when possible.
func (s *FiscalYearService) GetYearStatus(ctx context.Context, year int) (domain.FiscalYearStatus, error) {
	if s.cache != nil {
		if status, ok := s.cache.Get(ctx, year); ok {
			return status, nil
		}
	}

	status := domain.FiscalYearOpen
	fy, err := s.fiscalRepo.FindFiscalYear(ctx, year)
	switch {
	case err == nil:
		status = fy.Status
	case errors.Is(err, apperrors.ErrNotFound):
	default:
		s.LogError(ctx, err, "Failed to read fiscal year", slog.Int("year", year))
		return "", fmt.Errorf("failed to read fiscal year %d: %w", year, err)
	}

	// Only CLOSED is cached; OPEN is always read through.
	if s.cache != nil && status == domain.FiscalYearClosed {
		s.cache.Set(ctx, year, status)
	}
	return status, nil
}

// AssertMutable fails with a FiscalLockError when date lies in a closed year.
func (s *FiscalYearService) AssertMutable(ctx context.Context, date time.Time) error {
	year := date.Year()
	status, err := s.GetYearStatus(ctx, year)
	if err != nil {
		return err
	}
	if status == domain.FiscalYearClosed {
		s.LogWarn(ctx, "Write rejected by fiscal lock", slog.Int("year", year))
		return &apperrors.FiscalLockError{Year: year}
	}
	return nil
}

// GetFiscalYear returns the stored record, or an implicit OPEN one.
func (s *FiscalYearService) GetFiscalYear(ctx context.Context, year int) (*domain.FiscalYear, error) {
	fy, err := s.fiscalRepo.FindFiscalYear(ctx, year)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.FiscalYear{Year: year, Status: domain.FiscalYearOpen}, nil
		}
		return nil, fmt.Errorf("failed to read fiscal year %d: %w", year, err)
	}
	return fy, nil
}

// ListYears returns every recorded fiscal year.
func (s *FiscalYearService) ListYears(ctx context.Context) ([]domain.FiscalYear, error) {
	years, err := s.fiscalRepo.ListFiscalYears(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list fiscal years")
		return nil, fmt.Errorf("failed to list fiscal years: %w", err)
	}
	return years, nil
}

// CloseYear locks year once its invoice sequence is free of gaps.
// Closing an already closed year overwrites the record with a fresh snapshot.
func (s *FiscalYearService) CloseYear(ctx context.Context, year int, snapshot *domain.FiscalSnapshot, actorID string) (*domain.FiscalYear, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}

	invoices, err := s.invoiceRepo.ListRealInvoicesForYear(ctx, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to load invoices for closure audit", slog.Int("year", year))
		return nil, fmt.Errorf("failed to audit invoices of %d: %w", year, err)
	}
	report := domain.BuildGapReport(year, invoiceNumbers(invoices))
	if report.HasGaps() {
		s.LogWarn(ctx, "Fiscal year closure blocked by sequence gaps",
			slog.Int("year", year), slog.Any("missing", report.Missing))
		return nil, &apperrors.GapsPresentError{Year: year, Missing: report.Missing}
	}

	existing, err := s.fiscalRepo.FindFiscalYear(ctx, year)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to read fiscal year %d: %w", year, err)
	}

	if snapshot == nil {
		snapshot, err = s.computeSnapshot(ctx, year)
		if err != nil {
			return nil, err
		}
	}

	now := s.Now()
	fy := domain.FiscalYear{
		Year:     year,
		Status:   domain.FiscalYearClosed,
		ClosedAt: &now,
		ClosedBy: &actorID,
		Snapshot: snapshot,
	}
	if existing != nil {
		fy.ReopenedAt = existing.ReopenedAt
		fy.ReopenedBy = existing.ReopenedBy
	}

	if err := s.fiscalRepo.UpsertFiscalYear(ctx, fy); err != nil {
		s.LogError(ctx, err, "Failed to close fiscal year", slog.Int("year", year))
		return nil, fmt.Errorf("failed to close fiscal year %d: %w", year, err)
	}
	s.invalidate(ctx, year)

	s.record(ctx, domain.AuditLog{
		Action:     domain.AuditYearClosed,
		EntityType: "fiscal_year",
		EntityID:   fmt.Sprint(year),
		Amount:     &snapshot.NetProfit,
		Details:    fmt.Sprintf("closed with %d invoices, revenue %s, taxes %s", report.Checked, utils.FormatEuro(snapshot.TotalRevenue), utils.FormatEuro(snapshot.Taxes)),
		ActorID:    actorID,
	})
	s.LogInfo(ctx, "Fiscal year closed", slog.Int("year", year), slog.String("closed_by", actorID))
	return &fy, nil
}

// ReopenYear unlocks a closed year. The closing snapshot is kept for reference.
func (s *FiscalYearService) ReopenYear(ctx context.Context, year int, actorID string) (*domain.FiscalYear, error) {
	fy, err := s.fiscalRepo.FindFiscalYear(ctx, year)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("fiscal year %d was never closed: %w", year, err)
		}
		return nil, fmt.Errorf("failed to read fiscal year %d: %w", year, err)
	}

	now := s.Now()
	fy.Status = domain.FiscalYearOpen
	fy.ReopenedAt = &now
	fy.ReopenedBy = &actorID

	if err := s.fiscalRepo.UpsertFiscalYear(ctx, *fy); err != nil {
		s.LogError(ctx, err, "Failed to reopen fiscal year", slog.Int("year", year))
		return nil, fmt.Errorf("failed to reopen fiscal year %d: %w", year, err)
	}
	s.invalidate(ctx, year)

	s.record(ctx, domain.AuditLog{
		Action:     domain.AuditYearReopened,
		EntityType: "fiscal_year",
		EntityID:   fmt.Sprint(year),
		Details:    "fiscal year reopened",
		ActorID:    actorID,
	})
	s.LogInfo(ctx, "Fiscal year reopened", slog.Int("year", year), slog.String("reopened_by", actorID))
	return fy, nil
}

// computeSnapshot totals the year's cash movements and estimates the forfettario tax:
// taxes = revenue × coefficient × rate.
func (s *FiscalYearService) computeSnapshot(ctx context.Context, year int) (*domain.FiscalSnapshot, error) {
	revenue, err := s.txnRepo.SumByTypeForYear(ctx, year, domain.Income)
	if err != nil {
		return nil, fmt.Errorf("failed to total income of %d: %w", year, err)
	}
	expenses, err := s.txnRepo.SumByTypeForYear(ctx, year, domain.Expense)
	if err != nil {
		return nil, fmt.Errorf("failed to total expenses of %d: %w", year, err)
	}
	return &domain.FiscalSnapshot{
		TotalRevenue:  revenue,
		TotalExpenses: expenses,
		NetProfit:     revenue.Sub(expenses),
		Taxes:         revenue.Mul(s.taxCoefficient).Mul(s.taxRate).Round(2),
	}, nil
}

func (s *FiscalYearService) invalidate(ctx context.Context, year int) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, year)
	}
}

func (s *FiscalYearService) record(ctx context.Context, entry domain.AuditLog) {
	if s.audit != nil {
		s.audit.Record(ctx, entry)
	}
}

func validateYear(year int) error {
	if year < 2000 || year > 2100 {
		return fmt.Errorf("%w: year %d out of range", apperrors.ErrValidation, year)
	}
	return nil
}

func invoiceNumbers(invoices []domain.Invoice) []string {
	numbers := make([]string, len(invoices))
	for i, inv := range invoices {
		numbers[i] = inv.Number
	}
	return numbers
}
