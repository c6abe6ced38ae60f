package services

import (
	"context"

	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
	"github.com/SscSPs/kidsclub_backend/internal/dto"
)

// QuoteSvcFacade defines the operations on quotes. Saves return installment warnings
// alongside the quote; a warning never blocks the save.
type QuoteSvcFacade interface {
	CreateQuote(ctx context.Context, req dto.CreateQuoteRequest, userID string) (*domain.Quote, []domain.ValidationWarning, error)
	GetQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, []domain.ValidationWarning, error)
	UpdateQuote(ctx context.Context, quoteID string, req dto.UpdateQuoteRequest, userID string) (*domain.Quote, []domain.ValidationWarning, error)
	DeleteQuote(ctx context.Context, quoteID string, userID string) error
}
