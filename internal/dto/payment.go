package dto

import (
	"time"

	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest defines a payment received for an enrollment.
// GhostInvoiceID promotes that ghost; CreateInvoice issues a fresh invoice.
type RecordPaymentRequest struct {
	GhostInvoiceID *string         `json:"ghostInvoiceID"`
	Amount         decimal.Decimal `json:"amount" binding:"decimal_gte0"`
	PaymentMethod  string          `json:"paymentMethod" binding:"required"`
	Date           time.Time       `json:"date" binding:"required"`
	CreateInvoice  bool            `json:"createInvoice"`
}

// ToDomain converts the request into a domain.PaymentRequest for an enrollment.
func (r RecordPaymentRequest) ToDomain(enrollmentID string) domain.PaymentRequest {
	return domain.PaymentRequest{
		EnrollmentID:   enrollmentID,
		GhostInvoiceID: r.GhostInvoiceID,
		Amount:         r.Amount,
		PaymentMethod:  r.PaymentMethod,
		Date:           r.Date,
		CreateInvoice:  r.CreateInvoice,
	}
}
