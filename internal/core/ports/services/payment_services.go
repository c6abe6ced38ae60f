package services

import (
	"context"

	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
)

// PaymentRecorderSvc records payments against enrollments.
type PaymentRecorderSvc interface {
	// ProcessPayment creates or promotes the invoice, records the income and activates the
	// enrollment atomically, then reconciles the enrollment's ghost invoices.
	ProcessPayment(ctx context.Context, req domain.PaymentRequest, actorID string) (*domain.PaymentOutcome, error)
}

// ReconcilerSvc keeps the ghost invoices of an enrollment in line with what is still owed.
type ReconcilerSvc interface {
	// ReconcileEnrollment is idempotent: running it twice leaves the same ghosts in place.
	ReconcileEnrollment(ctx context.Context, enrollmentID string, actorID string) (*domain.ReconcileResult, error)
}

// PaymentSvcFacade combines all payment service interfaces
type PaymentSvcFacade interface {
	PaymentRecorderSvc
	ReconcilerSvc
}
