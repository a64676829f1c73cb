package service

import (
	"context"

	"github.com/finledger/networth-backend/internal/ledger"
	"github.com/finledger/networth-backend/internal/repository"
)

// BalanceService computes current balances for every account and debt. It
// loads the inputs and hands them to the ledger engine; the engine itself
// holds no state, so every request sees a consistent snapshot.
type BalanceService struct {
	accountRepo     *repository.AccountRepository
	debtRepo        *repository.DebtRepository
	transactionRepo *repository.TransactionRepository
	settingsService *SettingsService
	priceService    *PriceService
}

// NewBalanceService creates a new BalanceService with the provided dependencies.
func NewBalanceService(
	accountRepo *repository.AccountRepository,
	debtRepo *repository.DebtRepository,
	transactionRepo *repository.TransactionRepository,
	settingsService *SettingsService,
	priceService *PriceService,
) *BalanceService {
	return &BalanceService{
		accountRepo:     accountRepo,
		debtRepo:        debtRepo,
		transactionRepo: transactionRepo,
		settingsService: settingsService,
		priceService:    priceService,
	}
}

// Balances is the balance map plus the derived net worth total.
type Balances struct {
	Balances      map[string]float64 `json:"balances"`
	TotalAssets   float64            `json:"totalAssets"`
	TotalDebts    float64            `json:"totalDebts"`
	TotalNetWorth float64            `json:"totalNetWorth"`
}

// GetBalances computes the current balance of every account and debt.
func (s *BalanceService) GetBalances(ctx context.Context) (Balances, error) {
	accounts, err := s.accountRepo.GetAccounts()
	if err != nil {
		return Balances{}, err
	}
	debts, err := s.debtRepo.GetDebts()
	if err != nil {
		return Balances{}, err
	}
	transactions, err := s.transactionRepo.GetTransactions()
	if err != nil {
		return Balances{}, err
	}
	settings, err := s.settingsService.GetSettings()
	if err != nil {
		return Balances{}, err
	}
	symbols, err := s.transactionRepo.GetSymbols()
	if err != nil {
		return Balances{}, err
	}
	quotes, err := s.priceService.CurrentQuotes(ctx, symbols)
	if err != nil {
		return Balances{}, err
	}

	balanceMap := ledger.ComputeBalances(
		accounts,
		debts,
		transactions,
		quotes,
		ledger.Currency(settings.BaseCurrency),
		settings.FXRate,
	)

	result := Balances{Balances: balanceMap}
	for _, account := range accounts {
		result.TotalAssets += balanceMap[account.ID]
	}
	for _, debt := range debts {
		result.TotalDebts += balanceMap[debt.ID]
	}
	result.TotalNetWorth = result.TotalAssets - result.TotalDebts

	return result, nil
}

// loadValuationInputs gathers everything the history engine needs in one
// place so BalanceService and HistoryService stay consistent.
func (s *BalanceService) loadValuationInputs(ctx context.Context) (ledger.HistoryInput, error) {
	accounts, err := s.accountRepo.GetAccounts()
	if err != nil {
		return ledger.HistoryInput{}, err
	}
	debts, err := s.debtRepo.GetDebts()
	if err != nil {
		return ledger.HistoryInput{}, err
	}
	transactions, err := s.transactionRepo.GetTransactions()
	if err != nil {
		return ledger.HistoryInput{}, err
	}
	settings, err := s.settingsService.GetSettings()
	if err != nil {
		return ledger.HistoryInput{}, err
	}
	symbols, err := s.transactionRepo.GetSymbols()
	if err != nil {
		return ledger.HistoryInput{}, err
	}
	quotes, err := s.priceService.CurrentQuotes(ctx, symbols)
	if err != nil {
		return ledger.HistoryInput{}, err
	}
	series, err := s.priceService.GetSeries(ctx, symbols, quotes)
	if err != nil {
		return ledger.HistoryInput{}, err
	}

	return ledger.HistoryInput{
		Accounts:     accounts,
		Debts:        debts,
		Transactions: transactions,
		Series:       series,
		Quotes:       quotes,
		Base:         ledger.Currency(settings.BaseCurrency),
		FXRate:       settings.FXRate,
	}, nil
}
