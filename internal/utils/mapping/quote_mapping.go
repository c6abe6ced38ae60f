package mapping

import (
	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
	"github.com/SscSPs/kidsclub_backend/internal/models"
)

// ToModelQuote converts a domain Quote to a model Quote
func ToModelQuote(d domain.Quote) models.Quote {
	installments := make([]models.Installment, len(d.Installments))
	for i, inst := range d.Installments {
		installments[i] = models.Installment{
			Description:     inst.Description,
			DueDate:         inst.DueDate,
			Amount:          inst.Amount,
			IsPaid:          inst.IsPaid,
			TriggerType:     string(inst.TriggerType),
			TriggerLesson:   inst.TriggerLesson,
			PaymentTermDays: inst.PaymentTermDays,
			CollectionDate:  inst.CollectionDate,
			HasStampDuty:    inst.HasStampDuty,
		}
	}
	return models.Quote{
		QuoteID:        d.QuoteID,
		Number:         d.Number,
		ClientID:       d.ClientID,
		ChildName:      d.ChildName,
		IssueDate:      d.IssueDate,
		ExpiryDate:     d.ExpiryDate,
		Status:         string(d.Status),
		Items:          ToModelLineItems(d.Items),
		GlobalDiscount: d.GlobalDiscount,
		HasStampDuty:   d.HasStampDuty,
		TotalAmount:    d.TotalAmount,
		Installments:   installments,
		IsDeleted:      d.IsDeleted,
		Notes:          d.Notes,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainQuote converts a model Quote to a domain Quote
func ToDomainQuote(m models.Quote) domain.Quote {
	installments := make([]domain.Installment, len(m.Installments))
	for i, inst := range m.Installments {
		installments[i] = domain.Installment{
			Description:     inst.Description,
			DueDate:         inst.DueDate,
			Amount:          inst.Amount,
			IsPaid:          inst.IsPaid,
			TriggerType:     domain.InstallmentTrigger(inst.TriggerType),
			TriggerLesson:   inst.TriggerLesson,
			PaymentTermDays: inst.PaymentTermDays,
			CollectionDate:  inst.CollectionDate,
			HasStampDuty:    inst.HasStampDuty,
		}
	}
	return domain.Quote{
		QuoteID:        m.QuoteID,
		Number:         m.Number,
		ClientID:       m.ClientID,
		ChildName:      m.ChildName,
		IssueDate:      m.IssueDate,
		ExpiryDate:     m.ExpiryDate,
		Status:         domain.QuoteStatus(m.Status),
		Items:          ToDomainLineItems(m.Items),
		GlobalDiscount: m.GlobalDiscount,
		HasStampDuty:   m.HasStampDuty,
		TotalAmount:    m.TotalAmount,
		Installments:   installments,
		IsDeleted:      m.IsDeleted,
		Notes:          m.Notes,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
