package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/SscSPs/kidsclub_backend/internal/apperrors"
	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/kidsclub_backend/internal/core/ports/repositories"
	"github.com/SscSPs/kidsclub_backend/internal/models"
	"github.com/SscSPs/kidsclub_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxCashTransactionRepository struct {
	BaseRepository
}

func newPgxCashTransactionRepository(pool *pgxpool.Pool) portsrepo.CashTransactionRepositoryFacade {
	return &PgxCashTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CashTransactionRepositoryFacade = (*PgxCashTransactionRepository)(nil)

const cashTransactionSelect = `
SELECT
	transaction_id, transaction_date, description, amount, transaction_type, category,
	payment_method, invoice_id, enrollment_id, location_id, exclude_from_stats, is_deleted,
	created_at, created_by, last_updated_at, last_updated_by
FROM transactions
`

const insertCashTransaction = `
	INSERT INTO transactions (
		transaction_id, transaction_date, description, amount, transaction_type, category,
		payment_method, invoice_id, enrollment_id, location_id, exclude_from_stats, is_deleted,
		created_at, created_by, last_updated_at, last_updated_by
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);`

func saveCashTransaction(ctx context.Context, db dbtx, txn domain.CashTransaction) error {
	m := mapping.ToModelCashTransaction(txn)
	_, err := db.Exec(ctx, insertCashTransaction,
		m.TransactionID, m.Date, m.Description, m.Amount, m.Type, m.Category,
		m.PaymentMethod, m.InvoiceID, m.EnrollmentID, m.LocationID, m.ExcludeFromStats, m.IsDeleted,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return writeError(err, "transaction "+m.TransactionID)
	}
	return nil
}

func yearBounds(year int) (time.Time, time.Time) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(1, 0, 0)
}

func (r *PgxCashTransactionRepository) FindCashTransactionByID(ctx context.Context, transactionID string) (*domain.CashTransaction, error) {
	rows, err := r.Pool.Query(ctx, cashTransactionSelect+`WHERE transaction_id = $1`, transactionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transaction "+transactionID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.CashTransaction])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan transaction "+transactionID, err)
	}
	txn := mapping.ToDomainCashTransaction(m)
	return &txn, nil
}

func (r *PgxCashTransactionRepository) ListCashTransactionsByYear(ctx context.Context, year int) ([]domain.CashTransaction, error) {
	from, to := yearBounds(year)
	rows, err := r.Pool.Query(ctx, cashTransactionSelect+`
		WHERE is_deleted = FALSE AND transaction_date >= $1 AND transaction_date < $2
		ORDER BY transaction_date DESC, transaction_id`, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions of "+strconv.Itoa(year), err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.CashTransaction])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect transaction rows", err)
	}
	return mapping.ToDomainCashTransactionSlice(ms), nil
}

// SumByTypeForYear totals the live transactions of a type; rows excluded from stats are skipped.
func (r *PgxCashTransactionRepository) SumByTypeForYear(ctx context.Context, year int, txType domain.TransactionType) (decimal.Decimal, error) {
	from, to := yearBounds(year)
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE is_deleted = FALSE AND exclude_from_stats = FALSE
			AND transaction_type = $1 AND transaction_date >= $2 AND transaction_date < $3;`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, string(txType), from, to).Scan(&total); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum "+string(txType)+" of "+strconv.Itoa(year), err)
	}
	return total, nil
}

func (r *PgxCashTransactionRepository) SaveCashTransaction(ctx context.Context, txn domain.CashTransaction) error {
	return saveCashTransaction(ctx, r.Pool, txn)
}

func (r *PgxCashTransactionRepository) MarkCashTransactionDeleted(ctx context.Context, transactionID string, userID string, now time.Time) error {
	query := `
		UPDATE transactions SET is_deleted = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE transaction_id = $1 AND is_deleted = FALSE;`
	tag, err := r.Pool.Exec(ctx, query, transactionID, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete transaction "+transactionID, err)
	}
	return expectOneRow(tag, "transaction "+transactionID)
}
