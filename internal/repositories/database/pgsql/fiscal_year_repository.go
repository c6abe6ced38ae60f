package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/SscSPs/kidsclub_backend/internal/apperrors"
	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/kidsclub_backend/internal/core/ports/repositories"
	"github.com/SscSPs/kidsclub_backend/internal/models"
	"github.com/SscSPs/kidsclub_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFiscalYearRepository struct {
	BaseRepository
}

func newPgxFiscalYearRepository(pool *pgxpool.Pool) portsrepo.FiscalYearRepositoryFacade {
	return &PgxFiscalYearRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.FiscalYearRepositoryFacade = (*PgxFiscalYearRepository)(nil)

const fiscalYearSelect = `
SELECT year, status, closed_at, closed_by, reopened_at, reopened_by, snapshot
FROM fiscal_years
`

func (r *PgxFiscalYearRepository) FindFiscalYear(ctx context.Context, year int) (*domain.FiscalYear, error) {
	rows, err := r.Pool.Query(ctx, fiscalYearSelect+`WHERE year = $1`, year)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query fiscal year "+strconv.Itoa(year), err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.FiscalYear])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan fiscal year "+strconv.Itoa(year), err)
	}
	fy := mapping.ToDomainFiscalYear(m)
	return &fy, nil
}

func (r *PgxFiscalYearRepository) ListFiscalYears(ctx context.Context) ([]domain.FiscalYear, error) {
	rows, err := r.Pool.Query(ctx, fiscalYearSelect+`ORDER BY year DESC`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query fiscal years", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.FiscalYear])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect fiscal year rows", err)
	}
	years := make([]domain.FiscalYear, len(ms))
	for i, m := range ms {
		years[i] = mapping.ToDomainFiscalYear(m)
	}
	return years, nil
}

// UpsertFiscalYear writes the whole record, replacing any previous one for the year.
func (r *PgxFiscalYearRepository) UpsertFiscalYear(ctx context.Context, fy domain.FiscalYear) error {
	m := mapping.ToModelFiscalYear(fy)
	query := `
		INSERT INTO fiscal_years (year, status, closed_at, closed_by, reopened_at, reopened_by, snapshot)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (year) DO UPDATE SET
			status = EXCLUDED.status,
			closed_at = EXCLUDED.closed_at,
			closed_by = EXCLUDED.closed_by,
			reopened_at = EXCLUDED.reopened_at,
			reopened_by = EXCLUDED.reopened_by,
			snapshot = EXCLUDED.snapshot;`
	_, err := r.Pool.Exec(ctx, query, m.Year, m.Status, m.ClosedAt, m.ClosedBy, m.ReopenedAt, m.ReopenedBy, m.Snapshot)
	if err != nil {
		return apperrors.NewAppError(500, "failed to upsert fiscal year "+strconv.Itoa(m.Year), err)
	}
	return nil
}
