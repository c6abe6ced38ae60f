package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/kidsclub_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/kidsclub_backend/internal/core/ports/services"
	"github.com/google/uuid"
)

// AuditService writes audit log entries on a best-effort basis.
type AuditService struct {
	BaseService
	auditRepo portsrepo.AuditLogWriter
}

// NewAuditService creates a new AuditService.
func NewAuditService(repo portsrepo.AuditLogWriter) *AuditService {
	return &AuditService{auditRepo: repo}
}

var _ portssvc.AuditRecorderSvc = (*AuditService)(nil)

// Record stores entry, filling its ID and timestamp. Failures are logged and dropped.
func (s *AuditService) Record(ctx context.Context, entry domain.AuditLog) {
	if entry.LogID == "" {
		entry.LogID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.Now()
	}
	if err := s.auditRepo.SaveAuditLog(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to write audit log",
			slog.String("action", string(entry.Action)),
			slog.String("entity_type", entry.EntityType),
			slog.String("entity_id", entry.EntityID))
	}
}
