package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/finledger/networth-backend/internal/repository"
	"github.com/finledger/networth-backend/internal/service"
	"github.com/finledger/networth-backend/internal/yahoo"
)

func NewTestAccountService(t *testing.T, db *sql.DB) *service.AccountService {
	t.Helper()

	return service.NewAccountService(repository.NewAccountRepository(db))
}

func NewTestDebtService(t *testing.T, db *sql.DB) *service.DebtService {
	t.Helper()

	return service.NewDebtService(
		repository.NewDebtRepository(db),
		repository.NewTransactionRepository(db),
	)
}

func NewTestTransactionService(t *testing.T, db *sql.DB) *service.TransactionService {
	t.Helper()

	return service.NewTransactionService(repository.NewTransactionRepository(db))
}

func NewTestSettingsService(t *testing.T, db *sql.DB) *service.SettingsService {
	t.Helper()

	svc, err := service.NewSettingsService(repository.NewSettingsRepository(db), "")
	if err != nil {
		t.Fatalf("Failed to create settings service: %v", err)
	}
	return svc
}

// NewTestSettingsServiceWithKey creates a SettingsService with a fernet key,
// enabling API-key storage paths in tests.
func NewTestSettingsServiceWithKey(t *testing.T, db *sql.DB, fernetKey string) *service.SettingsService {
	t.Helper()

	svc, err := service.NewSettingsService(repository.NewSettingsRepository(db), fernetKey)
	if err != nil {
		t.Fatalf("Failed to create settings service: %v", err)
	}
	return svc
}

// NewTestPriceService creates a PriceService backed by the given yahoo
// client. Pass a client built with yahoo.NewFinanceClientWithBaseURL
// pointing at an httptest server to avoid real network calls.
func NewTestPriceService(t *testing.T, db *sql.DB, client *yahoo.FinanceClient) *service.PriceService {
	t.Helper()

	return service.NewPriceService(
		repository.NewPriceRepository(db),
		repository.NewTransactionRepository(db),
		client,
	)
}

func NewTestBalanceService(t *testing.T, db *sql.DB, client *yahoo.FinanceClient) *service.BalanceService {
	t.Helper()

	return service.NewBalanceService(
		repository.NewAccountRepository(db),
		repository.NewDebtRepository(db),
		repository.NewTransactionRepository(db),
		NewTestSettingsService(t, db),
		NewTestPriceService(t, db, client),
	)
}

func NewTestHistoryService(t *testing.T, db *sql.DB, client *yahoo.FinanceClient) *service.HistoryService {
	t.Helper()

	return service.NewHistoryService(NewTestBalanceService(t, db, client))
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeName generates a unique name for testing.
//
// Example usage:
//
//	name := testutil.MakeName("Savings")
//	// Returns: "Savings ABC123"
func MakeName(base string) string {
	if base == "" {
		base = "Item"
	}
	return base + " " + randomAlphanumeric(6)
}

// MakeSymbol generates a ticker symbol for testing.
//
// Example usage:
//
//	symbol := testutil.MakeSymbol("VWRL")
//	// Returns: "VWRL1A2B"
func MakeSymbol(base string) string {
	if base == "" {
		base = "TEST"
	}
	return base + randomAlphanumeric(4)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
