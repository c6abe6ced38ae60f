package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the direction of a cash movement.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// CashTransaction is a recorded movement of money, optionally backed by an invoice.
type CashTransaction struct {
	TransactionID    string          `json:"transactionID"`
	Date             time.Time       `json:"date"`
	Description      string          `json:"description"`
	Amount           decimal.Decimal `json:"amount"` // Always positive; Type carries the sign
	Type             TransactionType `json:"type"`
	Category         string          `json:"category"`
	PaymentMethod    string          `json:"paymentMethod"`
	InvoiceID        *string         `json:"invoiceID,omitempty"`
	EnrollmentID     *string         `json:"enrollmentID,omitempty"`
	LocationID       *string         `json:"locationID,omitempty"`
	ExcludeFromStats bool            `json:"excludeFromStats"` // not backed by an invoice
	IsDeleted        bool            `json:"isDeleted"`
	AuditFields
}
