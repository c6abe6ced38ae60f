package services

import (
	"context"

	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
)

// AuditRecorderSvc appends audit entries. Recording never fails the caller.
type AuditRecorderSvc interface {
	Record(ctx context.Context, entry domain.AuditLog)
}
