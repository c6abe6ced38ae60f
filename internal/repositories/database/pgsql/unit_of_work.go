package pgsql

import (
	"context"
	"log/slog"

	"github.com/SscSPs/kidsclub_backend/internal/apperrors"
	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/kidsclub_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxUnitOfWork runs a group of writes inside one database transaction.
type PgxUnitOfWork struct {
	BaseRepository
}

func newPgxUnitOfWork(pool *pgxpool.Pool) portsrepo.UnitOfWork {
	return &PgxUnitOfWork{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.UnitOfWork = (*PgxUnitOfWork)(nil)

// RunInTx commits when fn returns nil and rolls back otherwise, panics included.
func (u *PgxUnitOfWork) RunInTx(ctx context.Context, fn func(ctx context.Context, store portsrepo.FinanceTxStore) error) (err error) {
	tx, err := u.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			_ = u.Rollback(ctx, tx)
			panic(p)
		}
		if err != nil {
			if rbErr := u.Rollback(ctx, tx); rbErr != nil {
				slog.ErrorContext(ctx, "Rollback failed", "error", rbErr)
			}
		}
	}()

	if err = fn(ctx, &pgxFinanceTxStore{tx: tx, invoices: invoiceQueries{db: tx}}); err != nil {
		return err
	}
	return u.Commit(ctx, tx)
}

type pgxFinanceTxStore struct {
	tx       pgx.Tx
	invoices invoiceQueries
}

var _ portsrepo.FinanceTxStore = (*pgxFinanceTxStore)(nil)

func (s *pgxFinanceTxStore) FindInvoiceByIDForUpdate(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return s.invoices.find(ctx, invoiceID, true)
}

func (s *pgxFinanceTxStore) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	return s.invoices.save(ctx, invoice)
}

func (s *pgxFinanceTxStore) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	return s.invoices.update(ctx, invoice)
}

func (s *pgxFinanceTxStore) UpdateInvoiceNumber(ctx context.Context, invoiceID string, number string) error {
	return s.invoices.updateNumber(ctx, invoiceID, number)
}

func (s *pgxFinanceTxStore) SaveCashTransaction(ctx context.Context, txn domain.CashTransaction) error {
	return saveCashTransaction(ctx, s.tx, txn)
}

func (s *pgxFinanceTxStore) UpdateEnrollmentStatus(ctx context.Context, enrollmentID string, from, to domain.EnrollmentStatus) (bool, error) {
	query := `UPDATE enrollments SET status = $3 WHERE enrollment_id = $1 AND status = $2;`
	tag, err := s.tx.Exec(ctx, query, enrollmentID, string(from), string(to))
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to update status of enrollment "+enrollmentID, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *pgxFinanceTxStore) SetSequenceValue(ctx context.Context, family domain.DocumentFamily, year int, value int) error {
	return setSequenceValue(ctx, s.tx, family, year, value)
}
