package mapping

import (
	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
	"github.com/SscSPs/kidsclub_backend/internal/models"
)

// ToModelCashTransaction converts a domain CashTransaction to a model CashTransaction
func ToModelCashTransaction(d domain.CashTransaction) models.CashTransaction {
	return models.CashTransaction{
		TransactionID:    d.TransactionID,
		Date:             d.Date,
		Description:      d.Description,
		Amount:           d.Amount,
		Type:             string(d.Type),
		Category:         d.Category,
		PaymentMethod:    d.PaymentMethod,
		InvoiceID:        d.InvoiceID,
		EnrollmentID:     d.EnrollmentID,
		LocationID:       d.LocationID,
		ExcludeFromStats: d.ExcludeFromStats,
		IsDeleted:        d.IsDeleted,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCashTransaction converts a model CashTransaction to a domain CashTransaction
func ToDomainCashTransaction(m models.CashTransaction) domain.CashTransaction {
	return domain.CashTransaction{
		TransactionID:    m.TransactionID,
		Date:             m.Date,
		Description:      m.Description,
		Amount:           m.Amount,
		Type:             domain.TransactionType(m.Type),
		Category:         m.Category,
		PaymentMethod:    m.PaymentMethod,
		InvoiceID:        m.InvoiceID,
		EnrollmentID:     m.EnrollmentID,
		LocationID:       m.LocationID,
		ExcludeFromStats: m.ExcludeFromStats,
		IsDeleted:        m.IsDeleted,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCashTransactionSlice converts a slice of model CashTransactions to domain CashTransactions
func ToDomainCashTransactionSlice(ms []models.CashTransaction) []domain.CashTransaction {
	ds := make([]domain.CashTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCashTransaction(m)
	}
	return ds
}
