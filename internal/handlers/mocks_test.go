package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
	portssvc "github.com/SscSPs/kidsclub_backend/internal/core/ports/services"
	"github.com/SscSPs/kidsclub_backend/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) ListInvoices(ctx context.Context, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListInvoicesResponse), args.Error(1)
}
func (m *MockInvoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, userID string) (*domain.Invoice, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest, userID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) DeleteInvoice(ctx context.Context, invoiceID string, userID string) error {
	return m.Called(ctx, invoiceID, userID).Error(0)
}

var _ portssvc.InvoiceSvcFacade = (*MockInvoiceService)(nil)

// --- Mock QuoteService ---
type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) CreateQuote(ctx context.Context, req dto.CreateQuoteRequest, userID string) (*domain.Quote, []domain.ValidationWarning, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	warnings, _ := args.Get(1).([]domain.ValidationWarning)
	return args.Get(0).(*domain.Quote), warnings, args.Error(2)
}
func (m *MockQuoteService) GetQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, []domain.ValidationWarning, error) {
	args := m.Called(ctx, quoteID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	warnings, _ := args.Get(1).([]domain.ValidationWarning)
	return args.Get(0).(*domain.Quote), warnings, args.Error(2)
}
func (m *MockQuoteService) UpdateQuote(ctx context.Context, quoteID string, req dto.UpdateQuoteRequest, userID string) (*domain.Quote, []domain.ValidationWarning, error) {
	args := m.Called(ctx, quoteID, req, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	warnings, _ := args.Get(1).([]domain.ValidationWarning)
	return args.Get(0).(*domain.Quote), warnings, args.Error(2)
}
func (m *MockQuoteService) DeleteQuote(ctx context.Context, quoteID string, userID string) error {
	return m.Called(ctx, quoteID, userID).Error(0)
}

var _ portssvc.QuoteSvcFacade = (*MockQuoteService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.CashTransaction, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashTransaction), args.Error(1)
}
func (m *MockTransactionService) ListTransactionsByYear(ctx context.Context, year int) ([]domain.CashTransaction, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashTransaction), args.Error(1)
}
func (m *MockTransactionService) DeleteTransaction(ctx context.Context, transactionID string, userID string) error {
	return m.Called(ctx, transactionID, userID).Error(0)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock FiscalYearService ---
type MockFiscalYearService struct {
	mock.Mock
}

func (m *MockFiscalYearService) AssertMutable(ctx context.Context, date time.Time) error {
	return m.Called(ctx, date).Error(0)
}
func (m *MockFiscalYearService) GetYearStatus(ctx context.Context, year int) (domain.FiscalYearStatus, error) {
	args := m.Called(ctx, year)
	return args.Get(0).(domain.FiscalYearStatus), args.Error(1)
}
func (m *MockFiscalYearService) GetFiscalYear(ctx context.Context, year int) (*domain.FiscalYear, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalYear), args.Error(1)
}
func (m *MockFiscalYearService) ListYears(ctx context.Context) ([]domain.FiscalYear, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FiscalYear), args.Error(1)
}
func (m *MockFiscalYearService) CloseYear(ctx context.Context, year int, snapshot *domain.FiscalSnapshot, actorID string) (*domain.FiscalYear, error) {
	args := m.Called(ctx, year, snapshot, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalYear), args.Error(1)
}
func (m *MockFiscalYearService) ReopenYear(ctx context.Context, year int, actorID string) (*domain.FiscalYear, error) {
	args := m.Called(ctx, year, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalYear), args.Error(1)
}

var _ portssvc.FiscalYearSvcFacade = (*MockFiscalYearService)(nil)

// --- Mock IntegrityService ---
type MockIntegrityService struct {
	mock.Mock
}

func (m *MockIntegrityService) AuditYear(ctx context.Context, year int) (*domain.GapReport, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GapReport), args.Error(1)
}
func (m *MockIntegrityService) PrepareManualFill(ctx context.Context, year int, seq int) (*domain.ManualFillDraft, error) {
	args := m.Called(ctx, year, seq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ManualFillDraft), args.Error(1)
}
func (m *MockIntegrityService) FillGap(ctx context.Context, year int, seq int, req dto.FillGapRequest, userID string) (*domain.Invoice, []domain.ValidationWarning, error) {
	args := m.Called(ctx, year, seq, req, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	warnings, _ := args.Get(1).([]domain.ValidationWarning)
	return args.Get(0).(*domain.Invoice), warnings, args.Error(2)
}
func (m *MockIntegrityService) CascadeRenumber(ctx context.Context, year int, seq int, userID string) (int, error) {
	args := m.Called(ctx, year, seq, userID)
	return args.Int(0), args.Error(1)
}
func (m *MockIntegrityService) VoidPlaceholder(ctx context.Context, year int, seq int, justification string, userID string) (*domain.Invoice, error) {
	args := m.Called(ctx, year, seq, justification, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

var _ portssvc.IntegritySvcFacade = (*MockIntegrityService)(nil)

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) ProcessPayment(ctx context.Context, req domain.PaymentRequest, actorID string) (*domain.PaymentOutcome, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentOutcome), args.Error(1)
}
func (m *MockPaymentService) ReconcileEnrollment(ctx context.Context, enrollmentID string, actorID string) (*domain.ReconcileResult, error) {
	args := m.Called(ctx, enrollmentID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReconcileResult), args.Error(1)
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)
