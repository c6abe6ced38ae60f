package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus tracks an invoice through drafting and the SDI submission lifecycle.
type InvoiceStatus string

const (
	InvoiceDraft      InvoiceStatus = "DRAFT"
	InvoiceSent       InvoiceStatus = "SENT"
	InvoicePaid       InvoiceStatus = "PAID"
	InvoicePendingSDI InvoiceStatus = "PENDING_SDI"
	InvoiceSealedSDI  InvoiceStatus = "SEALED_SDI"
	InvoiceOverdue    InvoiceStatus = "OVERDUE"
	InvoiceVoid       InvoiceStatus = "VOID"
)

// IsValid reports whether s is a known invoice status.
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceDraft, InvoiceSent, InvoicePaid, InvoicePendingSDI, InvoiceSealedSDI, InvoiceOverdue, InvoiceVoid:
		return true
	}
	return false
}

// IsExternallyObservable reports whether the number has left the system (client or
// tax authority) and must never change again.
func (s InvoiceStatus) IsExternallyObservable() bool {
	return s == InvoiceSent || s == InvoiceSealedSDI
}

// Invoice is a real or ghost (placeholder) invoice.
type Invoice struct {
	InvoiceID      string          `json:"invoiceID"`
	Number         string          `json:"number"`
	ClientID       string          `json:"clientID"`
	ChildName      string          `json:"childName"`
	EnrollmentID   *string         `json:"enrollmentID,omitempty"`
	LocationID     *string         `json:"locationID,omitempty"`
	IssueDate      time.Time       `json:"issueDate"`
	DueDate        time.Time       `json:"dueDate"`
	Status         InvoiceStatus   `json:"status"`
	Items          []LineItem      `json:"items"`
	GlobalDiscount decimal.Decimal `json:"globalDiscount"` // percent
	HasStampDuty   bool            `json:"hasStampDuty"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	IsGhost        bool            `json:"isGhost"`
	IsDeleted      bool            `json:"isDeleted"`
	Notes          string          `json:"notes"`

	// Promotion provenance, set when a ghost becomes a real invoice.
	PromotedFromGhostNumber *string    `json:"promotedFromGhostNumber,omitempty"`
	PromotedAt              *time.Time `json:"promotedAt,omitempty"`

	AuditFields
}

// IsOpenGhost reports whether the invoice is a ghost still representing an expected balance.
func (i *Invoice) IsOpenGhost() bool {
	return i.IsGhost && !i.IsDeleted && i.Status != InvoiceVoid
}

// CountsAsPaid reports whether the invoice contributes to the paid-to-date total.
func (i *Invoice) CountsAsPaid() bool {
	return !i.IsGhost && !i.IsDeleted && i.Status != InvoiceVoid
}

// Recalculate refreshes TotalAmount from the line items and discounts.
func (i *Invoice) Recalculate() {
	totals := CalculateTotals(i.Items, i.GlobalDiscount, i.HasStampDuty)
	i.TotalAmount = totals.Total
}
