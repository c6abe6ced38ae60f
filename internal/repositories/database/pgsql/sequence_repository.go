package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/kidsclub_backend/internal/apperrors"
	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/kidsclub_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSequenceRepository struct {
	BaseRepository
}

func newPgxSequenceRepository(pool *pgxpool.Pool) portsrepo.SequenceRepository {
	return &PgxSequenceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SequenceRepository = (*PgxSequenceRepository)(nil)

// Deleted documents still hold their number, so they count towards the floor.
var recentNumbersQueries = map[domain.DocumentFamily]string{
	domain.FamilyInvoice:      `SELECT number FROM invoices WHERE is_ghost = FALSE ORDER BY issue_date DESC, number DESC LIMIT $1`,
	domain.FamilyGhostInvoice: `SELECT number FROM invoices WHERE is_ghost = TRUE ORDER BY issue_date DESC, number DESC LIMIT $1`,
	domain.FamilyQuote:        `SELECT number FROM quotes ORDER BY issue_date DESC, number DESC LIMIT $1`,
}

func (r *PgxSequenceRepository) ListRecentNumbers(ctx context.Context, family domain.DocumentFamily, limit int) ([]string, error) {
	query, ok := recentNumbersQueries[family]
	if !ok {
		return nil, fmt.Errorf("%w: unknown document family %q", apperrors.ErrValidation, family)
	}
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query recent numbers of "+string(family), err)
	}
	numbers, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect recent numbers", err)
	}
	return numbers, nil
}

// NextSequenceValue bumps the counter in a single statement so concurrent callers
// never receive the same value.
func (r *PgxSequenceRepository) NextSequenceValue(ctx context.Context, family domain.DocumentFamily, year int, floor int) (int, error) {
	query := `
		INSERT INTO document_sequences (family, year, last_value)
		VALUES ($1, $2, $3 + 1)
		ON CONFLICT (family, year) DO UPDATE
			SET last_value = GREATEST(document_sequences.last_value, $3) + 1
		RETURNING last_value;`
	var next int
	if err := r.Pool.QueryRow(ctx, query, string(family), year, floor).Scan(&next); err != nil {
		return 0, apperrors.NewAppError(500, fmt.Sprintf("failed to advance %s sequence for %d", family, year), err)
	}
	return next, nil
}

func setSequenceValue(ctx context.Context, db dbtx, family domain.DocumentFamily, year int, value int) error {
	query := `
		INSERT INTO document_sequences (family, year, last_value)
		VALUES ($1, $2, $3)
		ON CONFLICT (family, year) DO UPDATE SET last_value = EXCLUDED.last_value;`
	if _, err := db.Exec(ctx, query, string(family), year, value); err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to reset %s sequence for %d", family, year), err)
	}
	return nil
}
