package services

import (
	"context"

	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
	"github.com/SscSPs/kidsclub_backend/internal/dto"
)

// TransactionSvcFacade defines the operations on cash transactions
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.CashTransaction, error)
	ListTransactionsByYear(ctx context.Context, year int) ([]domain.CashTransaction, error)
	DeleteTransaction(ctx context.Context, transactionID string, userID string) error
}
