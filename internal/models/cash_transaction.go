package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashTransaction represents a row of the transactions table.
type CashTransaction struct {
	TransactionID    string          `db:"transaction_id"`
	Date             time.Time       `db:"transaction_date"`
	Description      string          `db:"description"`
	Amount           decimal.Decimal `db:"amount"`
	Type             string          `db:"transaction_type"`
	Category         string          `db:"category"`
	PaymentMethod    string          `db:"payment_method"`
	InvoiceID        *string         `db:"invoice_id"`
	EnrollmentID     *string         `db:"enrollment_id"`
	LocationID       *string         `db:"location_id"`
	ExcludeFromStats bool            `db:"exclude_from_stats"`
	IsDeleted        bool            `db:"is_deleted"`
	AuditFields
}
