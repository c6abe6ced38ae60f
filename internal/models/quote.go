package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Installment is stored inside the installments JSONB column of quotes.
type Installment struct {
	Description     string          `json:"description"`
	DueDate         *time.Time      `json:"dueDate,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	IsPaid          bool            `json:"isPaid"`
	TriggerType     string          `json:"triggerType"`
	TriggerLesson   int             `json:"triggerLesson,omitempty"`
	PaymentTermDays int             `json:"paymentTermDays"`
	CollectionDate  *time.Time      `json:"collectionDate,omitempty"`
	HasStampDuty    bool            `json:"hasStampDuty"`
}

// Quote represents a row of the quotes table.
type Quote struct {
	QuoteID        string          `db:"quote_id"`
	Number         string          `db:"number"`
	ClientID       string          `db:"client_id"`
	ChildName      string          `db:"child_name"`
	IssueDate      time.Time       `db:"issue_date"`
	ExpiryDate     time.Time       `db:"expiry_date"`
	Status         string          `db:"status"`
	Items          []LineItem      `db:"items"`
	GlobalDiscount decimal.Decimal `db:"global_discount"`
	HasStampDuty   bool            `db:"has_stamp_duty"`
	TotalAmount    decimal.Decimal `db:"total_amount"`
	Installments   []Installment   `db:"installments"`
	IsDeleted      bool            `db:"is_deleted"`
	Notes          string          `db:"notes"`
	AuditFields
}
