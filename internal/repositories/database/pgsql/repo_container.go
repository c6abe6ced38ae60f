package pgsql

import (
	portsrepo "github.com/SscSPs/kidsclub_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		InvoiceRepo:     newPgxInvoiceRepository(dbPool),
		QuoteRepo:       newPgxQuoteRepository(dbPool),
		TransactionRepo: newPgxCashTransactionRepository(dbPool),
		FiscalYearRepo:  newPgxFiscalYearRepository(dbPool),
		EnrollmentRepo:  newPgxEnrollmentRepository(dbPool),
		AuditLogRepo:    newPgxAuditLogRepository(dbPool),
		SequenceRepo:    newPgxSequenceRepository(dbPool),
		UnitOfWork:      newPgxUnitOfWork(dbPool),
	}
}
