package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/finledger/networth-backend/internal/model"
	"github.com/finledger/networth-backend/internal/repository"
)

// AccountService handles account-related business logic operations.
type AccountService struct {
	accountRepo *repository.AccountRepository
}

// NewAccountService creates a new AccountService with the provided repository dependencies.
func NewAccountService(accountRepo *repository.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

// GetAccounts retrieves all accounts.
func (s *AccountService) GetAccounts() ([]model.Account, error) {
	return s.accountRepo.GetAccounts()
}

// GetAccount retrieves a single account by its ID.
func (s *AccountService) GetAccount(accountID string) (model.Account, error) {
	return s.accountRepo.GetAccount(accountID)
}

// CreateAccount persists a new account with a generated ID.
func (s *AccountService) CreateAccount(ctx context.Context, account model.Account) (model.Account, error) {
	account.ID = uuid.New().String()
	if account.Currency == "" {
		account.Currency = "GBP"
	}
	if err := s.accountRepo.InsertAccount(ctx, &account); err != nil {
		return model.Account{}, err
	}
	return account, nil
}

// UpdateAccount updates an existing account.
func (s *AccountService) UpdateAccount(ctx context.Context, account model.Account) error {
	return s.accountRepo.UpdateAccount(ctx, &account)
}

// DeleteAccount removes an account. Transactions referencing it are left in
// place: the engine tolerates orphaned rows rather than cascading deletes
// through the ledger.
func (s *AccountService) DeleteAccount(ctx context.Context, accountID string) error {
	return s.accountRepo.DeleteAccount(ctx, accountID)
}
