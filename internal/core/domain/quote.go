package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus indicates the state of a quote.
type QuoteStatus string

const (
	QuoteDraft    QuoteStatus = "DRAFT"
	QuoteSent     QuoteStatus = "SENT"
	QuoteAccepted QuoteStatus = "ACCEPTED"
	QuoteRejected QuoteStatus = "REJECTED"
	QuoteExpired  QuoteStatus = "EXPIRED"
)

// IsValid reports whether s is a known quote status.
func (s QuoteStatus) IsValid() bool {
	switch s {
	case QuoteDraft, QuoteSent, QuoteAccepted, QuoteRejected, QuoteExpired:
		return true
	}
	return false
}

// InstallmentTrigger decides when an installment falls due.
type InstallmentTrigger string

const (
	TriggerFixedDate InstallmentTrigger = "FIXED_DATE"
	TriggerLessonN   InstallmentTrigger = "LESSON_N"
)

// Installment is one scheduled payment of a quote.
type Installment struct {
	Description     string             `json:"description"`
	DueDate         *time.Time         `json:"dueDate,omitempty"`
	Amount          decimal.Decimal    `json:"amount"`
	IsPaid          bool               `json:"isPaid"`
	TriggerType     InstallmentTrigger `json:"triggerType"`
	TriggerLesson   int                `json:"triggerLesson,omitempty"`
	PaymentTermDays int                `json:"paymentTermDays"`
	CollectionDate  *time.Time         `json:"collectionDate,omitempty"`
	HasStampDuty    bool               `json:"hasStampDuty"`
}

// DeriveCollectionDate sets CollectionDate to DueDate plus the payment term.
// Lesson-triggered installments without a known date keep it empty.
func (i *Installment) DeriveCollectionDate() {
	if i.DueDate == nil {
		i.CollectionDate = nil
		return
	}
	d := i.DueDate.AddDate(0, 0, i.PaymentTermDays)
	i.CollectionDate = &d
}

// Quote is a priced offer that may be split into installments.
type Quote struct {
	QuoteID        string          `json:"quoteID"`
	Number         string          `json:"number"`
	ClientID       string          `json:"clientID"`
	ChildName      string          `json:"childName"`
	IssueDate      time.Time       `json:"issueDate"`
	ExpiryDate     time.Time       `json:"expiryDate"`
	Status         QuoteStatus     `json:"status"`
	Items          []LineItem      `json:"items"`
	GlobalDiscount decimal.Decimal `json:"globalDiscount"`
	HasStampDuty   bool            `json:"hasStampDuty"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	Installments   []Installment   `json:"installments"`
	IsDeleted      bool            `json:"isDeleted"`
	Notes          string          `json:"notes"`
	AuditFields
}

// Recalculate refreshes the total and every installment's collection date.
func (q *Quote) Recalculate() {
	q.TotalAmount = CalculateTotals(q.Items, q.GlobalDiscount, q.HasStampDuty).Total
	for i := range q.Installments {
		q.Installments[i].DeriveCollectionDate()
	}
}

// InstallmentWarnings checks the soft invariant that installments add up to the total.
func (q *Quote) InstallmentWarnings() []ValidationWarning {
	if len(q.Installments) == 0 {
		return nil
	}
	sum := decimal.Zero
	for _, inst := range q.Installments {
		sum = sum.Add(inst.Amount)
	}
	if sum.Equal(q.TotalAmount) {
		return nil
	}
	return []ValidationWarning{{
		Code:    WarningInstallmentMismatch,
		Message: fmt.Sprintf("installments sum to %s but the quote total is %s", sum.StringFixed(2), q.TotalAmount.StringFixed(2)),
	}}
}
