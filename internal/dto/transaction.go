package dto

import (
	"time"

	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a cash movement.
type CreateTransactionRequest struct {
	Date             time.Time              `json:"date" binding:"required"`
	Description      string                 `json:"description" binding:"required"`
	Amount           decimal.Decimal        `json:"amount" binding:"decimal_gt0"`
	Type             domain.TransactionType `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Category         string                 `json:"category" binding:"required"`
	PaymentMethod    string                 `json:"paymentMethod"`
	InvoiceID        *string                `json:"invoiceID"`
	EnrollmentID     *string                `json:"enrollmentID"`
	LocationID       *string                `json:"locationID"`
	ExcludeFromStats bool                   `json:"excludeFromStats"`
}

// ListTransactionsParams defines parameters for listing cash transactions.
type ListTransactionsParams struct {
	Year int `form:"year" binding:"required,min=2000,max=2100"`
}

// ListTransactionsResponse wraps the cash transactions of a year.
type ListTransactionsResponse struct {
	Transactions []domain.CashTransaction `json:"transactions"`
}
