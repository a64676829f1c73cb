package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/finledger/networth-backend/internal/ledger"
	"github.com/finledger/networth-backend/internal/model"
	"github.com/finledger/networth-backend/internal/repository"
)

// DebtService handles debt-related business logic operations, including
// payoff projections under promotional-rate schedules.
type DebtService struct {
	debtRepo        *repository.DebtRepository
	transactionRepo *repository.TransactionRepository
}

// NewDebtService creates a new DebtService with the provided repository dependencies.
func NewDebtService(
	debtRepo *repository.DebtRepository,
	transactionRepo *repository.TransactionRepository,
) *DebtService {
	return &DebtService{
		debtRepo:        debtRepo,
		transactionRepo: transactionRepo,
	}
}

// GetDebts retrieves all debts.
func (s *DebtService) GetDebts() ([]model.Debt, error) {
	return s.debtRepo.GetDebts()
}

// GetDebt retrieves a single debt by its ID.
func (s *DebtService) GetDebt(debtID string) (model.Debt, error) {
	return s.debtRepo.GetDebt(debtID)
}

// CreateDebt persists a new debt with a generated ID.
func (s *DebtService) CreateDebt(ctx context.Context, debt model.Debt) (model.Debt, error) {
	debt.ID = uuid.New().String()
	if debt.MinPaymentType == "" {
		debt.MinPaymentType = model.MinPaymentFixed
	}
	if err := s.debtRepo.InsertDebt(ctx, &debt); err != nil {
		return model.Debt{}, err
	}
	return debt, nil
}

// UpdateDebt updates an existing debt.
func (s *DebtService) UpdateDebt(ctx context.Context, debt model.Debt) error {
	return s.debtRepo.UpdateDebt(ctx, &debt)
}

// DeleteDebt removes a debt.
func (s *DebtService) DeleteDebt(ctx context.Context, debtID string) error {
	return s.debtRepo.DeleteDebt(ctx, debtID)
}

// GetProjection computes the payoff outlook for a debt at its current
// balance: starting value plus every signed transaction posted to the debt
// (charges positive, payments negative).
func (s *DebtService) GetProjection(debtID string) (model.DebtProjection, error) {
	debt, err := s.debtRepo.GetDebt(debtID)
	if err != nil {
		return model.DebtProjection{}, err
	}

	transactions, err := s.transactionRepo.GetTransactionsForAccount(debtID)
	if err != nil {
		return model.DebtProjection{}, err
	}

	balance := debt.StartingValue
	for _, tx := range transactions {
		if tx.AccountID == debt.ID {
			balance += tx.Amount
		}
	}

	return ledger.ProjectDebt(debt, balance, time.Now().UTC()), nil
}
