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
	"github.com/SscSPs/kidsclub_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const invoiceColumns = `
	invoice_id, number, client_id, child_name, enrollment_id, location_id,
	issue_date, due_date, status, items, global_discount, has_stamp_duty, total_amount,
	is_ghost, is_deleted, notes, promoted_from_ghost_number, promoted_at,
	created_at, created_by, last_updated_at, last_updated_by`

func scanInvoice(row scanner) (models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID, &m.Number, &m.ClientID, &m.ChildName, &m.EnrollmentID, &m.LocationID,
		&m.IssueDate, &m.DueDate, &m.Status, &m.Items, &m.GlobalDiscount, &m.HasStampDuty, &m.TotalAmount,
		&m.IsGhost, &m.IsDeleted, &m.Notes, &m.PromotedFromGhostNumber, &m.PromotedAt,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func collectInvoices(rows pgx.Rows) ([]models.Invoice, error) {
	defer rows.Close()
	invoices := []models.Invoice{}
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice row", err)
		}
		invoices = append(invoices, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating invoice rows", err)
	}
	return invoices, nil
}

// invoiceQueries holds the invoice statements shared by the repository and the unit of work.
type invoiceQueries struct {
	db dbtx
}

func (q invoiceQueries) find(ctx context.Context, invoiceID string, forUpdate bool) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	m, err := scanInvoice(q.db.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find invoice by ID "+invoiceID, err)
	}
	inv := mapping.ToDomainInvoice(m)
	return &inv, nil
}

func (q invoiceQueries) save(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	query := `INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22);`
	_, err := q.db.Exec(ctx, query,
		m.InvoiceID, m.Number, m.ClientID, m.ChildName, m.EnrollmentID, m.LocationID,
		m.IssueDate, m.DueDate, m.Status, m.Items, m.GlobalDiscount, m.HasStampDuty, m.TotalAmount,
		m.IsGhost, m.IsDeleted, m.Notes, m.PromotedFromGhostNumber, m.PromotedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return writeError(err, "invoice "+m.Number)
	}
	return nil
}

func (q invoiceQueries) update(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	query := `
		UPDATE invoices SET
			number = $2, client_id = $3, child_name = $4, enrollment_id = $5, location_id = $6,
			issue_date = $7, due_date = $8, status = $9, items = $10, global_discount = $11,
			has_stamp_duty = $12, total_amount = $13, is_ghost = $14, notes = $15,
			promoted_from_ghost_number = $16, promoted_at = $17,
			last_updated_at = $18, last_updated_by = $19
		WHERE invoice_id = $1 AND is_deleted = FALSE;`
	tag, err := q.db.Exec(ctx, query,
		m.InvoiceID, m.Number, m.ClientID, m.ChildName, m.EnrollmentID, m.LocationID,
		m.IssueDate, m.DueDate, m.Status, m.Items, m.GlobalDiscount,
		m.HasStampDuty, m.TotalAmount, m.IsGhost, m.Notes,
		m.PromotedFromGhostNumber, m.PromotedAt,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return writeError(err, "invoice "+m.Number)
	}
	return expectOneRow(tag, "invoice "+m.InvoiceID)
}

func (q invoiceQueries) updateNumber(ctx context.Context, invoiceID string, number string) error {
	tag, err := q.db.Exec(ctx, `UPDATE invoices SET number = $2 WHERE invoice_id = $1 AND is_deleted = FALSE;`, invoiceID, number)
	if err != nil {
		return writeError(err, "invoice number "+number)
	}
	return expectOneRow(tag, "invoice "+invoiceID)
}

// PgxInvoiceRepository stores real and ghost invoices.
type PgxInvoiceRepository struct {
	BaseRepository
	invoiceQueries
}

func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{
		BaseRepository: BaseRepository{Pool: pool},
		invoiceQueries: invoiceQueries{db: pool},
	}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

// FindInvoiceByID retrieves an invoice by its ID, deleted ones included.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return r.find(ctx, invoiceID, false)
}

// ListInvoicesByYear pages through the invoices issued in a year, newest first.
// The cursor is the (issue_date, number) pair of the last row of the previous page.
func (r *PgxInvoiceRepository) ListInvoicesByYear(ctx context.Context, year int, includeGhosts bool, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// One extra row tells whether another page exists.
	fetchLimit := limit + 1

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	args := []any{from, from.AddDate(1, 0, 0)}
	query := `SELECT ` + invoiceColumns + ` FROM invoices
		WHERE is_deleted = FALSE AND issue_date >= $1 AND issue_date < $2`
	if !includeGhosts {
		query += ` AND is_ghost = FALSE`
	}
	if nextToken != nil && *nextToken != "" {
		lastDate, lastNumber, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", err)
		}
		query += ` AND (issue_date, number) < ($3, $4)`
		args = append(args, lastDate, lastNumber)
	}
	query += ` ORDER BY issue_date DESC, number DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query invoices of "+strconv.Itoa(year), err)
	}
	invoices, err := collectInvoices(rows)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	if len(invoices) > limit {
		last := invoices[limit-1]
		token := pagination.EncodeToken(last.IssueDate, last.Number)
		nextTokenVal = &token
		invoices = invoices[:limit]
	}
	return mapping.ToDomainInvoiceSlice(invoices), nextTokenVal, nil
}

// ListRealInvoicesForYear returns the invoices that make up the FT-<year> sequence.
func (r *PgxInvoiceRepository) ListRealInvoicesForYear(ctx context.Context, year int) ([]domain.Invoice, error) {
	format, _ := domain.FormatOf(domain.FamilyInvoice)
	query := `SELECT ` + invoiceColumns + ` FROM invoices
		WHERE is_deleted = FALSE AND is_ghost = FALSE AND number LIKE $1
		ORDER BY number;`
	rows, err := r.Pool.Query(ctx, query, domain.YearPrefix(format.Prefix, year)+"%")
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query invoice sequence of "+strconv.Itoa(year), err)
	}
	invoices, err := collectInvoices(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainInvoiceSlice(invoices), nil
}

// ListInvoicesByEnrollment returns every live invoice of an enrollment, ghosts included.
func (r *PgxInvoiceRepository) ListInvoicesByEnrollment(ctx context.Context, enrollmentID string) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices
		WHERE enrollment_id = $1 AND is_deleted = FALSE
		ORDER BY issue_date, number;`
	rows, err := r.Pool.Query(ctx, query, enrollmentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query invoices of enrollment "+enrollmentID, err)
	}
	invoices, err := collectInvoices(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainInvoiceSlice(invoices), nil
}

func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	return r.save(ctx, invoice)
}

func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	return r.update(ctx, invoice)
}

// MarkInvoiceDeleted soft-deletes an invoice.
func (r *PgxInvoiceRepository) MarkInvoiceDeleted(ctx context.Context, invoiceID string, userID string, now time.Time) error {
	query := `
		UPDATE invoices SET is_deleted = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE invoice_id = $1 AND is_deleted = FALSE;`
	tag, err := r.Pool.Exec(ctx, query, invoiceID, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete invoice "+invoiceID, err)
	}
	return expectOneRow(tag, "invoice "+invoiceID)
}
