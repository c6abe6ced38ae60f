package mapping

import (
	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
	"github.com/SscSPs/kidsclub_backend/internal/models"
)

// ToDomainEnrollment converts a model Enrollment to a domain Enrollment
func ToDomainEnrollment(m models.Enrollment) domain.Enrollment {
	return domain.Enrollment{
		EnrollmentID: m.EnrollmentID,
		ClientID:     m.ClientID,
		ChildName:    m.ChildName,
		LocationID:   m.LocationID,
		Status:       domain.EnrollmentStatus(m.Status),
		TotalPrice:   m.TotalPrice,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelAuditLog converts a domain AuditLog to a model AuditLog
func ToModelAuditLog(d domain.AuditLog) models.AuditLog {
	return models.AuditLog{
		LogID:      d.LogID,
		Action:     string(d.Action),
		EntityType: d.EntityType,
		EntityID:   d.EntityID,
		Amount:     d.Amount,
		Details:    d.Details,
		ActorID:    d.ActorID,
		CreatedAt:  d.CreatedAt,
	}
}
