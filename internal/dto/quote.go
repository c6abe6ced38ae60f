package dto

import (
	"time"

	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InstallmentRequest is one planned installment of a quote.
type InstallmentRequest struct {
	Description     string                    `json:"description" binding:"required"`
	DueDate         *time.Time                `json:"dueDate"`
	Amount          decimal.Decimal           `json:"amount" binding:"decimal_gte0"`
	IsPaid          bool                      `json:"isPaid"`
	TriggerType     domain.InstallmentTrigger `json:"triggerType" binding:"required,oneof=FIXED_DATE LESSON_N"`
	TriggerLesson   int                       `json:"triggerLesson" binding:"required_if=TriggerType LESSON_N,min=0"`
	PaymentTermDays int                       `json:"paymentTermDays" binding:"min=0"`
	HasStampDuty    bool                      `json:"hasStampDuty"`
}

// CreateQuoteRequest defines the data needed to create a quote.
type CreateQuoteRequest struct {
	ClientID       string               `json:"clientID" binding:"required"`
	ChildName      string               `json:"childName" binding:"required"`
	IssueDate      time.Time            `json:"issueDate" binding:"required"`
	ExpiryDate     time.Time            `json:"expiryDate" binding:"required"`
	Items          []LineItemRequest    `json:"items" binding:"required,min=1,dive"`
	GlobalDiscount decimal.Decimal      `json:"globalDiscount" binding:"percent"`
	HasStampDuty   *bool                `json:"hasStampDuty"`
	Installments   []InstallmentRequest `json:"installments" binding:"omitempty,dive"`
	Notes          string               `json:"notes"`
}

// UpdateQuoteRequest defines the data allowed for updating a quote.
type UpdateQuoteRequest struct {
	ClientID       *string              `json:"clientID"`
	ChildName      *string              `json:"childName"`
	IssueDate      *time.Time           `json:"issueDate"`
	ExpiryDate     *time.Time           `json:"expiryDate"`
	Status         *domain.QuoteStatus  `json:"status" binding:"omitempty,quote_status"`
	Items          []LineItemRequest    `json:"items" binding:"omitempty,min=1,dive"`
	GlobalDiscount *decimal.Decimal     `json:"globalDiscount" binding:"omitempty,percent"`
	HasStampDuty   *bool                `json:"hasStampDuty"`
	Installments   []InstallmentRequest `json:"installments" binding:"omitempty,dive"`
	Notes          *string              `json:"notes"`
}

// QuoteResponse defines the data returned for a quote, with any non-blocking warnings.
type QuoteResponse struct {
	QuoteID        string                     `json:"quoteID"`
	Number         string                     `json:"number"`
	ClientID       string                     `json:"clientID"`
	ChildName      string                     `json:"childName"`
	IssueDate      time.Time                  `json:"issueDate"`
	ExpiryDate     time.Time                  `json:"expiryDate"`
	Status         domain.QuoteStatus         `json:"status"`
	Items          []domain.LineItem          `json:"items"`
	Totals         domain.Totals              `json:"totals"`
	GlobalDiscount decimal.Decimal            `json:"globalDiscount"`
	HasStampDuty   bool                       `json:"hasStampDuty"`
	TotalAmount    decimal.Decimal            `json:"totalAmount"`
	Installments   []domain.Installment       `json:"installments"`
	Notes          string                     `json:"notes"`
	Warnings       []domain.ValidationWarning `json:"warnings,omitempty"`
	CreatedAt      time.Time                  `json:"createdAt"`
	CreatedBy      string                     `json:"createdBy"`
	LastUpdatedAt  time.Time                  `json:"lastUpdatedAt"`
	LastUpdatedBy  string                     `json:"lastUpdatedBy"`
}

// ToInstallments converts request installments to domain installments.
func ToInstallments(reqs []InstallmentRequest) []domain.Installment {
	out := make([]domain.Installment, len(reqs))
	for i, r := range reqs {
		out[i] = domain.Installment{
			Description:     r.Description,
			DueDate:         r.DueDate,
			Amount:          r.Amount,
			IsPaid:          r.IsPaid,
			TriggerType:     r.TriggerType,
			TriggerLesson:   r.TriggerLesson,
			PaymentTermDays: r.PaymentTermDays,
			HasStampDuty:    r.HasStampDuty,
		}
	}
	return out
}

// ToQuoteResponse converts a domain.Quote and its warnings to QuoteResponse DTO.
func ToQuoteResponse(q *domain.Quote, warnings []domain.ValidationWarning) QuoteResponse {
	return QuoteResponse{
		QuoteID:        q.QuoteID,
		Number:         q.Number,
		ClientID:       q.ClientID,
		ChildName:      q.ChildName,
		IssueDate:      q.IssueDate,
		ExpiryDate:     q.ExpiryDate,
		Status:         q.Status,
		Items:          q.Items,
		Totals:         domain.CalculateTotals(q.Items, q.GlobalDiscount, q.HasStampDuty),
		GlobalDiscount: q.GlobalDiscount,
		HasStampDuty:   q.HasStampDuty,
		TotalAmount:    q.TotalAmount,
		Installments:   q.Installments,
		Notes:          q.Notes,
		Warnings:       warnings,
		CreatedAt:      q.CreatedAt,
		CreatedBy:      q.CreatedBy,
		LastUpdatedAt:  q.LastUpdatedAt,
		LastUpdatedBy:  q.LastUpdatedBy,
	}
}
