package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CashTransactionReader defines read operations for cash transactions
type CashTransactionReader interface {
	FindCashTransactionByID(ctx context.Context, transactionID string) (*domain.CashTransaction, error)

	// ListCashTransactionsByYear retrieves non-deleted transactions dated in a year.
	ListCashTransactionsByYear(ctx context.Context, year int) ([]domain.CashTransaction, error)

	// SumByTypeForYear totals non-deleted transactions of a type in a year, skipping excludeFromStats rows.
	SumByTypeForYear(ctx context.Context, year int, txType domain.TransactionType) (decimal.Decimal, error)
}

// CashTransactionWriter defines write operations for cash transactions
type CashTransactionWriter interface {
	SaveCashTransaction(ctx context.Context, txn domain.CashTransaction) error
	MarkCashTransactionDeleted(ctx context.Context, transactionID string, userID string, now time.Time) error
}

// CashTransactionRepositoryFacade combines all cash transaction repository interfaces
type CashTransactionRepositoryFacade interface {
	CashTransactionReader
	CashTransactionWriter
}
