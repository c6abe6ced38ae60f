package dto

import (
	"time"

	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LineItemRequest is one billable line of an invoice or quote.
type LineItemRequest struct {
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"decimal_gt0"`
	Price       decimal.Decimal `json:"price" binding:"decimal_gte0"`
	Discount    decimal.Decimal `json:"discount" binding:"percent"` // Optional, percent
}

// CreateInvoiceRequest defines the data needed to create an invoice.
// The number is always assigned by the server.
type CreateInvoiceRequest struct {
	ClientID       string               `json:"clientID" binding:"required"`
	ChildName      string               `json:"childName" binding:"required"`
	EnrollmentID   *string              `json:"enrollmentID"`
	LocationID     *string              `json:"locationID"`
	IssueDate      time.Time            `json:"issueDate" binding:"required"`
	DueDate        time.Time            `json:"dueDate" binding:"required"`
	Status         domain.InvoiceStatus `json:"status" binding:"omitempty,invoice_status"` // Defaults to DRAFT
	Items          []LineItemRequest    `json:"items" binding:"required,min=1,dive"`
	GlobalDiscount decimal.Decimal      `json:"globalDiscount" binding:"percent"`
	HasStampDuty   *bool                `json:"hasStampDuty"` // nil means decided from the taxable amount
	Notes          string               `json:"notes"`
}

// UpdateInvoiceRequest defines the data allowed for updating an invoice.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateInvoiceRequest struct {
	ClientID       *string               `json:"clientID"`
	ChildName      *string               `json:"childName"`
	IssueDate      *time.Time            `json:"issueDate"`
	DueDate        *time.Time            `json:"dueDate"`
	Status         *domain.InvoiceStatus `json:"status" binding:"omitempty,invoice_status"`
	Items          []LineItemRequest     `json:"items" binding:"omitempty,min=1,dive"`
	GlobalDiscount *decimal.Decimal      `json:"globalDiscount" binding:"omitempty,percent"`
	HasStampDuty   *bool                 `json:"hasStampDuty"`
	Notes          *string               `json:"notes"`
}

// ChangesContent reports whether the update touches anything beyond status and notes.
func (r UpdateInvoiceRequest) ChangesContent() bool {
	return r.ClientID != nil || r.ChildName != nil || r.IssueDate != nil || r.DueDate != nil ||
		r.ChangesAmounts()
}

// ChangesAmounts reports whether the update touches the lines, the discount or the stamp duty.
func (r UpdateInvoiceRequest) ChangesAmounts() bool {
	return r.Items != nil || r.GlobalDiscount != nil || r.HasStampDuty != nil
}

// ListInvoicesParams defines parameters for listing invoices of a year.
type ListInvoicesParams struct {
	Year          int     `form:"year" binding:"required,min=2000,max=2100"`
	IncludeGhosts bool    `form:"includeGhosts"`
	Limit         int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken     *string `form:"nextToken"`
}

// LineItemResponse mirrors domain.LineItem with its computed net amount.
type LineItemResponse struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Discount    decimal.Decimal `json:"discount"`
	Net         decimal.Decimal `json:"net"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID               string               `json:"invoiceID"`
	Number                  string               `json:"number"`
	ClientID                string               `json:"clientID"`
	ChildName               string               `json:"childName"`
	EnrollmentID            *string              `json:"enrollmentID,omitempty"`
	LocationID              *string              `json:"locationID,omitempty"`
	IssueDate               time.Time            `json:"issueDate"`
	DueDate                 time.Time            `json:"dueDate"`
	Status                  domain.InvoiceStatus `json:"status"`
	Items                   []LineItemResponse   `json:"items"`
	Totals                  domain.Totals        `json:"totals"`
	GlobalDiscount          decimal.Decimal      `json:"globalDiscount"`
	HasStampDuty            bool                 `json:"hasStampDuty"`
	TotalAmount             decimal.Decimal      `json:"totalAmount"`
	IsGhost                 bool                 `json:"isGhost"`
	Notes                   string               `json:"notes"`
	PromotedFromGhostNumber *string              `json:"promotedFromGhostNumber,omitempty"`
	PromotedAt              *time.Time           `json:"promotedAt,omitempty"`
	CreatedAt               time.Time            `json:"createdAt"`
	CreatedBy               string               `json:"createdBy"`
	LastUpdatedAt           time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy           string               `json:"lastUpdatedBy"`
}

// ListInvoicesResponse wraps a page of invoices.
type ListInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToLineItems converts request lines to domain line items.
func ToLineItems(items []LineItemRequest) []domain.LineItem {
	out := make([]domain.LineItem, len(items))
	for i, item := range items {
		out[i] = domain.LineItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Discount:    item.Discount,
		}
	}
	return out
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	items := make([]LineItemResponse, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = LineItemResponse{
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Discount:    item.Discount,
			Net:         item.Net().Round(2),
		}
	}
	return InvoiceResponse{
		InvoiceID:               inv.InvoiceID,
		Number:                  inv.Number,
		ClientID:                inv.ClientID,
		ChildName:               inv.ChildName,
		EnrollmentID:            inv.EnrollmentID,
		LocationID:              inv.LocationID,
		IssueDate:               inv.IssueDate,
		DueDate:                 inv.DueDate,
		Status:                  inv.Status,
		Items:                   items,
		Totals:                  domain.CalculateTotals(inv.Items, inv.GlobalDiscount, inv.HasStampDuty),
		GlobalDiscount:          inv.GlobalDiscount,
		HasStampDuty:            inv.HasStampDuty,
		TotalAmount:             inv.TotalAmount,
		IsGhost:                 inv.IsGhost,
		Notes:                   inv.Notes,
		PromotedFromGhostNumber: inv.PromotedFromGhostNumber,
		PromotedAt:              inv.PromotedAt,
		CreatedAt:               inv.CreatedAt,
		CreatedBy:               inv.CreatedBy,
		LastUpdatedAt:           inv.LastUpdatedAt,
		LastUpdatedBy:           inv.LastUpdatedBy,
	}
}

// ToInvoiceResponses converts a slice of domain.Invoice to []InvoiceResponse.
func ToInvoiceResponses(invoices []domain.Invoice) []InvoiceResponse {
	responses := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = ToInvoiceResponse(&invoices[i])
	}
	return responses
}
