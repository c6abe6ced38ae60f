package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/kidsclub_backend/internal/apperrors"
	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/kidsclub_backend/internal/core/ports/repositories"
	"github.com/SscSPs/kidsclub_backend/internal/models"
	"github.com/SscSPs/kidsclub_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxQuoteRepository struct {
	BaseRepository
}

func newPgxQuoteRepository(pool *pgxpool.Pool) portsrepo.QuoteRepositoryFacade {
	return &PgxQuoteRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.QuoteRepositoryFacade = (*PgxQuoteRepository)(nil)

const quoteSelect = `
SELECT
	quote_id, number, client_id, child_name, issue_date, expiry_date, status,
	items, global_discount, has_stamp_duty, total_amount, installments, is_deleted, notes,
	created_at, created_by, last_updated_at, last_updated_by
FROM quotes
`

func (r *PgxQuoteRepository) FindQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error) {
	rows, err := r.Pool.Query(ctx, quoteSelect+`WHERE quote_id = $1`, quoteID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query quote "+quoteID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Quote])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan quote "+quoteID, err)
	}
	q := mapping.ToDomainQuote(m)
	return &q, nil
}

func (r *PgxQuoteRepository) SaveQuote(ctx context.Context, quote domain.Quote) error {
	m := mapping.ToModelQuote(quote)
	query := `
		INSERT INTO quotes (
			quote_id, number, client_id, child_name, issue_date, expiry_date, status,
			items, global_discount, has_stamp_duty, total_amount, installments, is_deleted, notes,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);`
	_, err := r.Pool.Exec(ctx, query,
		m.QuoteID, m.Number, m.ClientID, m.ChildName, m.IssueDate, m.ExpiryDate, m.Status,
		m.Items, m.GlobalDiscount, m.HasStampDuty, m.TotalAmount, m.Installments, m.IsDeleted, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return writeError(err, "quote "+m.Number)
	}
	return nil
}

func (r *PgxQuoteRepository) UpdateQuote(ctx context.Context, quote domain.Quote) error {
	m := mapping.ToModelQuote(quote)
	query := `
		UPDATE quotes SET
			client_id = $2, child_name = $3, issue_date = $4, expiry_date = $5, status = $6,
			items = $7, global_discount = $8, has_stamp_duty = $9, total_amount = $10,
			installments = $11, notes = $12, last_updated_at = $13, last_updated_by = $14
		WHERE quote_id = $1 AND is_deleted = FALSE;`
	tag, err := r.Pool.Exec(ctx, query,
		m.QuoteID, m.ClientID, m.ChildName, m.IssueDate, m.ExpiryDate, m.Status,
		m.Items, m.GlobalDiscount, m.HasStampDuty, m.TotalAmount,
		m.Installments, m.Notes, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update quote "+m.QuoteID, err)
	}
	return expectOneRow(tag, "quote "+m.QuoteID)
}

func (r *PgxQuoteRepository) MarkQuoteDeleted(ctx context.Context, quoteID string, userID string, now time.Time) error {
	query := `
		UPDATE quotes SET is_deleted = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE quote_id = $1 AND is_deleted = FALSE;`
	tag, err := r.Pool.Exec(ctx, query, quoteID, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete quote "+quoteID, err)
	}
	return expectOneRow(tag, "quote "+quoteID)
}
