package repositories

import (
	"context"

	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
)

// AuditLogWriter appends audit entries.
type AuditLogWriter interface {
	SaveAuditLog(ctx context.Context, entry domain.AuditLog) error
}
