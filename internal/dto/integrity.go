package dto

import "github.com/SscSPs/kidsclub_backend/internal/core/domain"

// FillGapRequest defines the invoice written at a missing sequence number.
type FillGapRequest = CreateInvoiceRequest

// VoidGapRequest defines the justification stored on a void placeholder.
type VoidGapRequest struct {
	Justification string `json:"justification" binding:"required,min=5"`
}

// FillGapResponse returns the written invoice with any date warnings.
type FillGapResponse struct {
	Invoice  InvoiceResponse            `json:"invoice"`
	Warnings []domain.ValidationWarning `json:"warnings,omitempty"`
}

// RenumberResponse reports how many invoices moved down by one.
type RenumberResponse struct {
	Year    int `json:"year"`
	Gap     int `json:"gap"`
	Shifted int `json:"shifted"`
}
