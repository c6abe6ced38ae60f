package repositories

import (
	"context"

	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
)

// FinanceTxStore is the set of writes that must land together when a payment is recorded
// or a numbering sequence is rewritten. Every method runs inside the enclosing transaction.
type FinanceTxStore interface {
	// FindInvoiceByIDForUpdate reads an invoice and locks its row until the transaction ends.
	FindInvoiceByIDForUpdate(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	SaveInvoice(ctx context.Context, invoice domain.Invoice) error
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error

	// UpdateInvoiceNumber rewrites only the number of an invoice.
	UpdateInvoiceNumber(ctx context.Context, invoiceID string, number string) error

	SaveCashTransaction(ctx context.Context, txn domain.CashTransaction) error

	// UpdateEnrollmentStatus moves an enrollment from one status to another.
	// It reports whether a row was changed; an enrollment not in `from` is left untouched.
	UpdateEnrollmentStatus(ctx context.Context, enrollmentID string, from, to domain.EnrollmentStatus) (bool, error)

	// SetSequenceValue forces the counter of a family/year to value.
	SetSequenceValue(ctx context.Context, family domain.DocumentFamily, year int, value int) error
}
