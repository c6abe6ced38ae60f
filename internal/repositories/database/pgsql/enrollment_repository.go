package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/kidsclub_backend/internal/apperrors"
	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/kidsclub_backend/internal/core/ports/repositories"
	"github.com/SscSPs/kidsclub_backend/internal/models"
	"github.com/SscSPs/kidsclub_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEnrollmentRepository struct {
	BaseRepository
}

func newPgxEnrollmentRepository(pool *pgxpool.Pool) portsrepo.EnrollmentReader {
	return &PgxEnrollmentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.EnrollmentReader = (*PgxEnrollmentRepository)(nil)

func (r *PgxEnrollmentRepository) FindEnrollmentByID(ctx context.Context, enrollmentID string) (*domain.Enrollment, error) {
	query := `
		SELECT enrollment_id, client_id, child_name, location_id, status, total_price, start_date, end_date,
			created_at, created_by, last_updated_at, last_updated_by
		FROM enrollments
		WHERE enrollment_id = $1`
	rows, err := r.Pool.Query(ctx, query, enrollmentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query enrollment "+enrollmentID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Enrollment])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan enrollment "+enrollmentID, err)
	}
	e := mapping.ToDomainEnrollment(m)
	return &e, nil
}
