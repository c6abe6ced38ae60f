package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
)

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice (deleted ones included) by its ID.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoicesByYear retrieves non-deleted invoices issued in a year, newest first, using token-based pagination.
	ListInvoicesByYear(ctx context.Context, year int, includeGhosts bool, limit int, nextToken *string) ([]domain.Invoice, *string, error)

	// ListRealInvoicesForYear retrieves every non-deleted, non-ghost invoice whose number belongs to the year.
	ListRealInvoicesForYear(ctx context.Context, year int) ([]domain.Invoice, error)

	// ListInvoicesByEnrollment retrieves all non-deleted invoices (ghosts included) for an enrollment.
	ListInvoicesByEnrollment(ctx context.Context, enrollmentID string) ([]domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	// SaveInvoice persists a new invoice.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// UpdateInvoice updates every mutable field of an existing invoice.
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error

	// MarkInvoiceDeleted soft-deletes an invoice.
	MarkInvoiceDeleted(ctx context.Context, invoiceID string, userID string, now time.Time) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
