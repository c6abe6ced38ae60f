package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/kidsclub_backend/internal/apperrors"
	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/kidsclub_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/kidsclub_backend/internal/core/ports/services"
	"github.com/SscSPs/kidsclub_backend/internal/dto"
	"github.com/google/uuid"
)

// TransactionService records cash movements outside the payment flow.
type TransactionService struct {
	BaseService
	txnRepo portsrepo.CashTransactionRepositoryFacade
	fiscal  portssvc.FiscalYearGuard
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(repo portsrepo.CashTransactionRepositoryFacade, fiscal portssvc.FiscalYearGuard) *TransactionService {
	return &TransactionService{txnRepo: repo, fiscal: fiscal}
}

var _ portssvc.TransactionSvcFacade = (*TransactionService)(nil)

func (s *TransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.CashTransaction, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if err := s.fiscal.AssertMutable(ctx, req.Date); err != nil {
		return nil, err
	}

	now := s.Now()
	txn := domain.CashTransaction{
		TransactionID:    uuid.NewString(),
		Date:             req.Date,
		Description:      req.Description,
		Amount:           req.Amount,
		Type:             req.Type,
		Category:         req.Category,
		PaymentMethod:    req.PaymentMethod,
		InvoiceID:        req.InvoiceID,
		EnrollmentID:     req.EnrollmentID,
		LocationID:       req.LocationID,
		ExcludeFromStats: req.ExcludeFromStats,
		AuditFields:      domain.NewAuditFields(userID, now),
	}
	if err := s.txnRepo.SaveCashTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction")
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}
	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("amount", txn.Amount.StringFixed(2)))
	return &txn, nil
}

func (s *TransactionService) ListTransactionsByYear(ctx context.Context, year int) ([]domain.CashTransaction, error) {
	txns, err := s.txnRepo.ListCashTransactionsByYear(ctx, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.Int("year", year))
		return nil, fmt.Errorf("failed to list transactions of %d: %w", year, err)
	}
	return txns, nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, transactionID string, userID string) error {
	txn, err := s.txnRepo.FindCashTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("transaction %s: %w", transactionID, err)
		}
		return fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}
	if txn.IsDeleted {
		return fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}
	if err := s.fiscal.AssertMutable(ctx, txn.Date); err != nil {
		return err
	}
	if err := s.txnRepo.MarkCashTransactionDeleted(ctx, transactionID, userID, s.Now()); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
