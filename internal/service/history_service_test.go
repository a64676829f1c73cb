package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "github.com/finledger/networth-backend/internal/errors"
	"github.com/finledger/networth-backend/internal/model"
	"github.com/finledger/networth-backend/internal/testutil"
)

// TestHistoryService_GetHistory tests the net-worth trajectory endpoint.
//
// WHY: The history must reject unknown ranges explicitly, end on today's
// live point, and agree with the balances page for the final value.
func TestHistoryService_GetHistory(t *testing.T) {
	t.Run("rejects unknown ranges", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		client := testutil.NewStubFinanceClient(t, nil)
		svc := testutil.NewTestHistoryService(t, db, client)

		// Execute
		_, err := svc.GetHistory(context.Background(), "2Y")

		// Assert
		if !errors.Is(err, apperrors.ErrInvalidRange) {
			t.Errorf("Expected ErrInvalidRange, got %v", err)
		}
	})

	t.Run("a week of flat cash yields seven daily points", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		client := testutil.NewStubFinanceClient(t, nil)
		svc := testutil.NewTestHistoryService(t, db, client)

		checking := testutil.NewAccount().WithStartingValue(1000).Build(t, db)
		tenDaysAgo := time.Now().UTC().AddDate(0, 0, -10)
		testutil.NewTransaction(checking.ID).On(tenDaysAgo).WithType(model.TypeIncome).WithAmount(100).Build(t, db)

		// Execute
		points, err := svc.GetHistory(context.Background(), model.Range1W)

		// Assert
		if err != nil {
			t.Fatalf("GetHistory() returned unexpected error: %v", err)
		}
		if len(points) != 7 {
			t.Fatalf("Expected 7 points for 1W, got %d", len(points))
		}
		for _, p := range points {
			if p.NetWorth != 1100 {
				t.Errorf("Expected flat net worth 1100 on %s, got %v", p.Date, p.NetWorth)
			}
		}
		today := time.Now().UTC().Format("2006-01-02")
		if points[len(points)-1].Date != today {
			t.Errorf("Expected final point on %s, got %s", today, points[len(points)-1].Date)
		}
	})

	t.Run("final point matches the live balances", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		client := testutil.NewStubFinanceClient(t, nil)
		historySvc := testutil.NewTestHistoryService(t, db, client)
		balanceSvc := testutil.NewTestBalanceService(t, db, client)

		checking := testutil.NewAccount().WithStartingValue(2500).Build(t, db)
		debt := testutil.NewDebt().WithStartingValue(300).Build(t, db)
		day := time.Now().UTC().AddDate(0, 0, -3)
		testutil.NewTransaction(checking.ID).On(day).WithAmount(-75).Build(t, db)
		testutil.NewTransaction(debt.ID).On(day).WithType(model.TypeDebtPayment).WithAmount(-50).Build(t, db)

		// Execute
		points, err := historySvc.GetHistory(context.Background(), model.Range1M)
		if err != nil {
			t.Fatalf("GetHistory() returned unexpected error: %v", err)
		}
		balances, err := balanceSvc.GetBalances(context.Background())
		if err != nil {
			t.Fatalf("GetBalances() returned unexpected error: %v", err)
		}

		// Assert
		last := points[len(points)-1]
		if last.NetWorth != balances.TotalNetWorth {
			t.Errorf("History final point %v disagrees with live net worth %v", last.NetWorth, balances.TotalNetWorth)
		}
		if last.Debts != balances.TotalDebts {
			t.Errorf("History final debts %v disagree with live debts %v", last.Debts, balances.TotalDebts)
		}
	})
}
