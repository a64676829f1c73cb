package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/finledger/networth-backend/internal/model"
	"github.com/finledger/networth-backend/internal/repository"
)

// TransactionService handles transaction-related business logic operations.
type TransactionService struct {
	transactionRepo *repository.TransactionRepository
}

// NewTransactionService creates a new TransactionService with the provided repository dependencies.
func NewTransactionService(transactionRepo *repository.TransactionRepository) *TransactionService {
	return &TransactionService{transactionRepo: transactionRepo}
}

// GetTransactions retrieves the full ledger sorted by date ascending, or
// just one account's rows when accountID is non-empty.
func (s *TransactionService) GetTransactions(accountID string) ([]model.Transaction, error) {
	if accountID != "" {
		return s.transactionRepo.GetTransactionsForAccount(accountID)
	}
	return s.transactionRepo.GetTransactions()
}

// GetTransaction retrieves a single transaction by its ID.
func (s *TransactionService) GetTransaction(transactionID string) (model.Transaction, error) {
	return s.transactionRepo.GetTransaction(transactionID)
}

// CreateTransaction persists a new ledger entry with a generated ID.
func (s *TransactionService) CreateTransaction(ctx context.Context, tx model.Transaction) (model.Transaction, error) {
	tx.ID = uuid.New().String()
	tx.CreatedAt = time.Now().UTC()
	if err := s.transactionRepo.InsertTransaction(ctx, &tx); err != nil {
		return model.Transaction{}, err
	}
	return tx, nil
}

// UpdateTransaction updates an existing ledger entry.
func (s *TransactionService) UpdateTransaction(ctx context.Context, tx model.Transaction) error {
	return s.transactionRepo.UpdateTransaction(ctx, &tx)
}

// DeleteTransaction removes a ledger entry.
func (s *TransactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	return s.transactionRepo.DeleteTransaction(ctx, transactionID)
}
