package mapping

import (
	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
	"github.com/SscSPs/kidsclub_backend/internal/models"
)

// ToModelLineItems converts domain line items to their JSONB shape.
func ToModelLineItems(items []domain.LineItem) []models.LineItem {
	out := make([]models.LineItem, len(items))
	for i, item := range items {
		out[i] = models.LineItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Discount:    item.Discount,
		}
	}
	return out
}

// ToDomainLineItems converts stored line items to domain line items.
func ToDomainLineItems(items []models.LineItem) []domain.LineItem {
	out := make([]domain.LineItem, len(items))
	for i, item := range items {
		out[i] = domain.LineItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Discount:    item.Discount,
		}
	}
	return out
}

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:               d.InvoiceID,
		Number:                  d.Number,
		ClientID:                d.ClientID,
		ChildName:               d.ChildName,
		EnrollmentID:            d.EnrollmentID,
		LocationID:              d.LocationID,
		IssueDate:               d.IssueDate,
		DueDate:                 d.DueDate,
		Status:                  string(d.Status),
		Items:                   ToModelLineItems(d.Items),
		GlobalDiscount:          d.GlobalDiscount,
		HasStampDuty:            d.HasStampDuty,
		TotalAmount:             d.TotalAmount,
		IsGhost:                 d.IsGhost,
		IsDeleted:               d.IsDeleted,
		Notes:                   d.Notes,
		PromotedFromGhostNumber: d.PromotedFromGhostNumber,
		PromotedAt:              d.PromotedAt,
		AuditFields:             ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:               m.InvoiceID,
		Number:                  m.Number,
		ClientID:                m.ClientID,
		ChildName:               m.ChildName,
		EnrollmentID:            m.EnrollmentID,
		LocationID:              m.LocationID,
		IssueDate:               m.IssueDate,
		DueDate:                 m.DueDate,
		Status:                  domain.InvoiceStatus(m.Status),
		Items:                   ToDomainLineItems(m.Items),
		GlobalDiscount:          m.GlobalDiscount,
		HasStampDuty:            m.HasStampDuty,
		TotalAmount:             m.TotalAmount,
		IsGhost:                 m.IsGhost,
		IsDeleted:               m.IsDeleted,
		Notes:                   m.Notes,
		PromotedFromGhostNumber: m.PromotedFromGhostNumber,
		PromotedAt:              m.PromotedAt,
		AuditFields:             ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInvoiceSlice converts a slice of model Invoices to domain Invoices
func ToDomainInvoiceSlice(ms []models.Invoice) []domain.Invoice {
	if ms == nil {
		return nil
	}
	ds := make([]domain.Invoice, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoice(m)
	}
	return ds
}
