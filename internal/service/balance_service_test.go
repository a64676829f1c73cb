package service_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/finledger/networth-backend/internal/model"
	"github.com/finledger/networth-backend/internal/testutil"
)

// TestBalanceService_GetBalances tests cash balance derivation.
//
// WHY: Balances are the product every other number hangs off. Cash accounts
// must be starting value plus signed flows, transfers must credit the
// destination with the absolute amount, and debts must only move on their
// own transactions.
func TestBalanceService_GetBalances(t *testing.T) {
	t.Run("cash accounts accumulate signed flows", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		client := testutil.NewStubFinanceClient(t, nil)
		svc := testutil.NewTestBalanceService(t, db, client)

		checking := testutil.NewAccount().WithStartingValue(1000).Build(t, db)
		day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		testutil.NewTransaction(checking.ID).On(day).WithType(model.TypeIncome).WithAmount(200).Build(t, db)
		testutil.NewTransaction(checking.ID).On(day).WithAmount(-50).Build(t, db)

		// Execute
		balances, err := svc.GetBalances(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("GetBalances() returned unexpected error: %v", err)
		}
		if got := balances.Balances[checking.ID]; got != 1150 {
			t.Errorf("Expected checking balance 1150, got %v", got)
		}
		if balances.TotalNetWorth != 1150 {
			t.Errorf("Expected net worth 1150, got %v", balances.TotalNetWorth)
		}
	})

	t.Run("transfers move cash between accounts", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		client := testutil.NewStubFinanceClient(t, nil)
		svc := testutil.NewTestBalanceService(t, db, client)

		checking := testutil.NewAccount().WithStartingValue(500).Build(t, db)
		savings := testutil.NewAccount().WithType(model.AccountSavings).Build(t, db)
		day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		// Outflow is recorded signed on the source account.
		testutil.NewTransaction(checking.ID).On(day).WithAmount(-100).TransferTo(savings.ID).Build(t, db)

		// Execute
		balances, err := svc.GetBalances(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("GetBalances() returned unexpected error: %v", err)
		}
		if got := balances.Balances[checking.ID]; got != 400 {
			t.Errorf("Expected source balance 400, got %v", got)
		}
		if got := balances.Balances[savings.ID]; got != 100 {
			t.Errorf("Expected destination balance 100, got %v", got)
		}
		if balances.TotalNetWorth != 500 {
			t.Errorf("Transfer changed net worth: got %v, want 500", balances.TotalNetWorth)
		}
	})

	t.Run("debts accumulate charges and payments", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		client := testutil.NewStubFinanceClient(t, nil)
		svc := testutil.NewTestBalanceService(t, db, client)

		testutil.NewAccount().WithStartingValue(1000).Build(t, db)
		debt := testutil.NewDebt().WithStartingValue(500).Build(t, db)
		day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		testutil.NewTransaction(debt.ID).On(day).WithType(model.TypeDebtPayment).WithAmount(-100).Build(t, db)

		// Execute
		balances, err := svc.GetBalances(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("GetBalances() returned unexpected error: %v", err)
		}
		if got := balances.Balances[debt.ID]; got != 400 {
			t.Errorf("Expected debt balance 400, got %v", got)
		}
		if balances.TotalDebts != 400 {
			t.Errorf("Expected total debts 400, got %v", balances.TotalDebts)
		}
		if balances.TotalNetWorth != 600 {
			t.Errorf("Expected net worth 1000-400=600, got %v", balances.TotalNetWorth)
		}
	})
}

// TestBalanceService_GetBalances_Investments tests holdings valuation.
//
// WHY: Investment accounts are valued from reconstructed holdings times the
// live quote, converted into the base currency. The pence convention (GBX)
// must divide by 100 and never touch the FX rate.
func TestBalanceService_GetBalances_Investments(t *testing.T) {
	t.Run("values holdings at the live quote", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		client := testutil.NewStubFinanceClient(t, map[string]testutil.StubQuote{
			"VWRL.L": {Price: 110, Currency: "GBP"},
		})
		svc := testutil.NewTestBalanceService(t, db, client)

		invest := testutil.NewAccount().Investment().Build(t, db)
		day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
		testutil.NewTransaction(invest.ID).On(day).WithAmount(-1000).Investing("VWRL.L", 10, 100).Build(t, db)

		// Execute
		balances, err := svc.GetBalances(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("GetBalances() returned unexpected error: %v", err)
		}
		if got := balances.Balances[invest.ID]; got != 1100 {
			t.Errorf("Expected investment value 10*110=1100, got %v", got)
		}
	})

	t.Run("converts pence quotes without touching the FX rate", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		client := testutil.NewStubFinanceClient(t, map[string]testutil.StubQuote{
			"VWRL.L": {Price: 550, Currency: "GBp"},
		})
		svc := testutil.NewTestBalanceService(t, db, client)
		testutil.SetSettings(t, db, "GBP", 1.25)

		invest := testutil.NewAccount().Investment().Build(t, db)
		day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
		testutil.NewTransaction(invest.ID).On(day).WithAmount(-550).Investing("VWRL.L", 100, 5.5).Build(t, db)

		// Execute
		balances, err := svc.GetBalances(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("GetBalances() returned unexpected error: %v", err)
		}
		if got := balances.Balances[invest.ID]; math.Abs(got-550) > 1e-9 {
			t.Errorf("Expected 100 units at 550p = 550 GBP, got %v", got)
		}
	})

	t.Run("sell shrinks the position before valuation", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		client := testutil.NewStubFinanceClient(t, map[string]testutil.StubQuote{
			"VWRL.L": {Price: 100, Currency: "GBP"},
		})
		svc := testutil.NewTestBalanceService(t, db, client)

		invest := testutil.NewAccount().Investment().Build(t, db)
		buy := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
		sell := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
		testutil.NewTransaction(invest.ID).On(buy).WithAmount(-1000).Investing("VWRL.L", 10, 100).Build(t, db)
		testutil.NewTransaction(invest.ID).On(sell).WithAmount(440).WithCategory(model.CategorySell).Investing("VWRL.L", -4, 110).Build(t, db)

		// Execute
		balances, err := svc.GetBalances(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("GetBalances() returned unexpected error: %v", err)
		}
		if got := balances.Balances[invest.ID]; math.Abs(got-600) > 1e-9 {
			t.Errorf("Expected 6 remaining units at 100 = 600, got %v", got)
		}
	})
}
