package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
)

// QuoteReader defines read operations for quote data
type QuoteReader interface {
	FindQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error)
}

// QuoteWriter defines write operations for quote data
type QuoteWriter interface {
	SaveQuote(ctx context.Context, quote domain.Quote) error
	UpdateQuote(ctx context.Context, quote domain.Quote) error
	MarkQuoteDeleted(ctx context.Context, quoteID string, userID string, now time.Time) error
}

// QuoteRepositoryFacade combines all quote-related repository interfaces
type QuoteRepositoryFacade interface {
	QuoteReader
	QuoteWriter
}
