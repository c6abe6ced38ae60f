package repositories

import (
	"context"

	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
)

// EnrollmentReader defines read operations for enrollments
type EnrollmentReader interface {
	FindEnrollmentByID(ctx context.Context, enrollmentID string) (*domain.Enrollment, error)
}
