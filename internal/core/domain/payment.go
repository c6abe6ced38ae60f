package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentRequest is a payment received against an enrollment.
type PaymentRequest struct {
	EnrollmentID   string
	GhostInvoiceID *string
	Amount         decimal.Decimal
	PaymentMethod  string
	Date           time.Time
	CreateInvoice  bool
}

// NeedsInvoice reports whether the payment produces a real invoice.
func (p PaymentRequest) NeedsInvoice() bool {
	return p.GhostInvoiceID != nil || p.CreateInvoice
}

// ReconcileResult describes what a reconciliation pass did to an enrollment's ghosts.
type ReconcileResult struct {
	EnrollmentID   string          `json:"enrollmentID"`
	TotalPrice     decimal.Decimal `json:"totalPrice"`
	TotalPaid      decimal.Decimal `json:"totalPaid"`
	Remaining      decimal.Decimal `json:"remaining"`
	VoidedGhostIDs []string        `json:"voidedGhostIDs"`
	GhostInvoice   *Invoice        `json:"ghostInvoice,omitempty"`
	GhostCreated   bool            `json:"ghostCreated"`
}

// PaymentOutcome is the result of recording a payment. Reconciled is false when the
// payment itself committed but the follow-up reconciliation failed.
type PaymentOutcome struct {
	Invoice        *Invoice         `json:"invoice,omitempty"`
	Transaction    *CashTransaction `json:"transaction,omitempty"`
	EnrollmentID   string           `json:"enrollmentID"`
	Activated      bool             `json:"activated"`
	Reconciled     bool             `json:"reconciled"`
	Reconciliation *ReconcileResult `json:"reconciliation,omitempty"`
	Warning        string           `json:"warning,omitempty"`
}

// GhostBalanceTolerance is the remaining balance at or below which no ghost invoice is kept.
var GhostBalanceTolerance = decimal.NewFromInt(1)
