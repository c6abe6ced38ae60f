package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/kidsclub_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockSequenceRepository is a mock type for the SequenceRepository interface
type MockSequenceRepository struct {
	mock.Mock
}

func (m *MockSequenceRepository) ListRecentNumbers(ctx context.Context, family domain.DocumentFamily, limit int) ([]string, error) {
	args := m.Called(ctx, family, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockSequenceRepository) NextSequenceValue(ctx context.Context, family domain.DocumentFamily, year int, floor int) (int, error) {
	args := m.Called(ctx, family, year, floor)
	return args.Int(0), args.Error(1)
}

// MockFiscalYearRepository is a mock type for the FiscalYearRepositoryFacade interface
type MockFiscalYearRepository struct {
	mock.Mock
}

func (m *MockFiscalYearRepository) FindFiscalYear(ctx context.Context, year int) (*domain.FiscalYear, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalYear), args.Error(1)
}

func (m *MockFiscalYearRepository) ListFiscalYears(ctx context.Context) ([]domain.FiscalYear, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FiscalYear), args.Error(1)
}

func (m *MockFiscalYearRepository) UpsertFiscalYear(ctx context.Context, fy domain.FiscalYear) error {
	args := m.Called(ctx, fy)
	return args.Error(0)
}

// MockInvoiceRepository is a mock type for the InvoiceRepositoryFacade interface
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoicesByYear(ctx context.Context, year int, includeGhosts bool, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	args := m.Called(ctx, year, includeGhosts, limit, nextToken)
	var token *string
	if t := args.Get(1); t != nil {
		token = t.(*string)
	}
	if args.Get(0) == nil {
		return nil, token, args.Error(2)
	}
	return args.Get(0).([]domain.Invoice), token, args.Error(2)
}

func (m *MockInvoiceRepository) ListRealInvoicesForYear(ctx context.Context, year int) ([]domain.Invoice, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoicesByEnrollment(ctx context.Context, enrollmentID string) ([]domain.Invoice, error) {
	args := m.Called(ctx, enrollmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) MarkInvoiceDeleted(ctx context.Context, invoiceID string, userID string, now time.Time) error {
	args := m.Called(ctx, invoiceID, userID, now)
	return args.Error(0)
}

// MockQuoteRepository is a mock type for the QuoteRepositoryFacade interface
type MockQuoteRepository struct {
	mock.Mock
}

func (m *MockQuoteRepository) FindQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error) {
	args := m.Called(ctx, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

func (m *MockQuoteRepository) SaveQuote(ctx context.Context, quote domain.Quote) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}

func (m *MockQuoteRepository) UpdateQuote(ctx context.Context, quote domain.Quote) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}

func (m *MockQuoteRepository) MarkQuoteDeleted(ctx context.Context, quoteID string, userID string, now time.Time) error {
	args := m.Called(ctx, quoteID, userID, now)
	return args.Error(0)
}

// MockCashTransactionRepository is a mock type for the CashTransactionRepositoryFacade interface
type MockCashTransactionRepository struct {
	mock.Mock
}

func (m *MockCashTransactionRepository) FindCashTransactionByID(ctx context.Context, transactionID string) (*domain.CashTransaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashTransaction), args.Error(1)
}

func (m *MockCashTransactionRepository) ListCashTransactionsByYear(ctx context.Context, year int) ([]domain.CashTransaction, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashTransaction), args.Error(1)
}

func (m *MockCashTransactionRepository) SumByTypeForYear(ctx context.Context, year int, txType domain.TransactionType) (decimal.Decimal, error) {
	args := m.Called(ctx, year, txType)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockCashTransactionRepository) SaveCashTransaction(ctx context.Context, txn domain.CashTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockCashTransactionRepository) MarkCashTransactionDeleted(ctx context.Context, transactionID string, userID string, now time.Time) error {
	args := m.Called(ctx, transactionID, userID, now)
	return args.Error(0)
}

// MockSequenceSvc is a mock type for the SequenceSvc interface
type MockSequenceSvc struct {
	mock.Mock
}

func (m *MockSequenceSvc) NextNumber(ctx context.Context, family domain.DocumentFamily, year int) (string, error) {
	args := m.Called(ctx, family, year)
	return args.String(0), args.Error(1)
}

func (m *MockSequenceSvc) FormatNumber(family domain.DocumentFamily, year int, seq int) (string, error) {
	args := m.Called(family, year, seq)
	return args.String(0), args.Error(1)
}

func (m *MockSequenceSvc) ResetCounter(ctx context.Context, store portsrepo.FinanceTxStore, family domain.DocumentFamily, year int, value int) error {
	args := m.Called(ctx, store, family, year, value)
	return args.Error(0)
}

// MockFiscalGuard is a mock type for the FiscalYearGuard interface
type MockFiscalGuard struct {
	mock.Mock
}

func (m *MockFiscalGuard) AssertMutable(ctx context.Context, date time.Time) error {
	args := m.Called(ctx, date)
	return args.Error(0)
}

// MockAuditRecorder is a mock type for the AuditRecorderSvc interface
type MockAuditRecorder struct {
	mock.Mock
}

func (m *MockAuditRecorder) Record(ctx context.Context, entry domain.AuditLog) {
	m.Called(ctx, entry)
}
