package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is stored inside the items JSONB column of invoices and quotes.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Discount    decimal.Decimal `json:"discount"`
}

// Invoice represents a row of the invoices table. Ghost invoices share the table with real ones.
type Invoice struct {
	InvoiceID               string          `db:"invoice_id"`
	Number                  string          `db:"number"`
	ClientID                string          `db:"client_id"`
	ChildName               string          `db:"child_name"`
	EnrollmentID            *string         `db:"enrollment_id"`
	LocationID              *string         `db:"location_id"`
	IssueDate               time.Time       `db:"issue_date"`
	DueDate                 time.Time       `db:"due_date"`
	Status                  string          `db:"status"`
	Items                   []LineItem      `db:"items"`
	GlobalDiscount          decimal.Decimal `db:"global_discount"`
	HasStampDuty            bool            `db:"has_stamp_duty"`
	TotalAmount             decimal.Decimal `db:"total_amount"`
	IsGhost                 bool            `db:"is_ghost"`
	IsDeleted               bool            `db:"is_deleted"`
	Notes                   string          `db:"notes"`
	PromotedFromGhostNumber *string         `db:"promoted_from_ghost_number"`
	PromotedAt              *time.Time      `db:"promoted_at"`
	AuditFields
}
