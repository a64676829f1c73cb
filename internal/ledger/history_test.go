package ledger

import (
	"math"
	"testing"

	"github.com/finledger/networth-backend/internal/model"
)

// TestNetWorthHistory_FlatAccounts tests the zero-transaction invariant.
//
// WHY: with no transactions, every sampled day must equal the sum of asset
// starting values minus debt starting values. Any drift means the sweep is
// inventing flows.
func TestNetWorthHistory_FlatAccounts(t *testing.T) {
	in := HistoryInput{
		Accounts: []model.Account{
			{ID: "chk", Type: model.AccountChecking, StartingValue: 500},
			{ID: "sav", Type: model.AccountSavings, StartingValue: 2000},
		},
		Debts: []model.Debt{{ID: "cc", StartingValue: 300}},
		Base:  GBP,
		Today: day(2024, 6, 15),
	}

	points := NetWorthHistory(in, model.Range1W)

	if len(points) != 7 {
		t.Fatalf("expected 7 points for 1W, got %d", len(points))
	}
	for _, p := range points {
		if p.NetWorth != 2200 {
			t.Errorf("point %s: NetWorth = %v, want 2200", p.Date, p.NetWorth)
		}
		if p.Checking != 500 || p.Savings != 2000 || p.Debts != 300 {
			t.Errorf("point %s: subtotals %v/%v/%v, want 500/2000/300", p.Date, p.Checking, p.Savings, p.Debts)
		}
	}
}

// TestNetWorthHistory_Downsampling tests the point budget.
func TestNetWorthHistory_Downsampling(t *testing.T) {
	in := HistoryInput{
		Accounts: []model.Account{{ID: "chk", Type: model.AccountChecking, StartingValue: 100}},
		Base:     GBP,
		Today:    day(2024, 6, 15),
	}

	t.Run("1Y stays within budget and ends today", func(t *testing.T) {
		points := NetWorthHistory(in, model.Range1Y)

		if len(points) > 91 {
			t.Errorf("1Y returned %d points, want at most 91", len(points))
		}
		if points[len(points)-1].Date != "2024-06-15" {
			t.Errorf("last point = %s, want today 2024-06-15", points[len(points)-1].Date)
		}
	})

	t.Run("points ascend by date", func(t *testing.T) {
		points := NetWorthHistory(in, model.Range1Y)
		for i := 1; i < len(points); i++ {
			if points[i].Date <= points[i-1].Date {
				t.Fatalf("points not ascending: %s then %s", points[i-1].Date, points[i].Date)
			}
		}
	})

	t.Run("short ranges are not downsampled", func(t *testing.T) {
		points := NetWorthHistory(in, model.Range1M)
		if len(points) != 30 {
			t.Errorf("1M returned %d points, want 30", len(points))
		}
	})
}

// TestNetWorthHistory_CashSweep tests that flows appear from their date on.
func TestNetWorthHistory_CashSweep(t *testing.T) {
	today := day(2024, 6, 15)
	in := HistoryInput{
		Accounts: []model.Account{
			{ID: "chk", Type: model.AccountChecking, StartingValue: 1000},
			{ID: "sav", Type: model.AccountSavings, StartingValue: 0},
		},
		Debts: []model.Debt{{ID: "cc", StartingValue: 500}},
		Transactions: []model.Transaction{
			{Type: model.TypeIncome, AccountID: "chk", Amount: 200, Date: day(2024, 6, 11)},
			{Type: model.TypeTransfer, AccountID: "chk", AccountToID: "sav", Amount: -300, Date: day(2024, 6, 13)},
			{Type: model.TypeDebtPayment, AccountID: "cc", Amount: -100, Date: day(2024, 6, 13)},
		},
		Base:  GBP,
		Today: today,
	}

	points := NetWorthHistory(in, model.Range1W)
	byDate := make(map[string]model.HistoryPoint, len(points))
	for _, p := range points {
		byDate[p.Date] = p
	}

	t.Run("before any flow", func(t *testing.T) {
		p := byDate["2024-06-10"]
		if p.Checking != 1000 || p.Savings != 0 || p.Debts != 500 {
			t.Errorf("2024-06-10: %v/%v/%v, want 1000/0/500", p.Checking, p.Savings, p.Debts)
		}
	})

	t.Run("income lands on its date", func(t *testing.T) {
		p := byDate["2024-06-11"]
		if p.Checking != 1200 {
			t.Errorf("2024-06-11: Checking = %v, want 1200", p.Checking)
		}
	})

	t.Run("transfer and payment land together", func(t *testing.T) {
		p := byDate["2024-06-13"]
		if p.Checking != 900 || p.Savings != 300 || p.Debts != 400 {
			t.Errorf("2024-06-13: %v/%v/%v, want 900/300/400", p.Checking, p.Savings, p.Debts)
		}
		if p.NetWorth != 800 {
			t.Errorf("2024-06-13: NetWorth = %v, want 800", p.NetWorth)
		}
	})

	t.Run("today matches ComputeBalances", func(t *testing.T) {
		p := byDate["2024-06-15"]
		balances := ComputeBalances(in.Accounts, in.Debts, in.Transactions, in.Quotes, in.Base, in.FXRate)
		want := balances["chk"] + balances["sav"] - balances["cc"]
		if math.Abs(p.NetWorth-want) > 1e-9 {
			t.Errorf("today: NetWorth = %v, want %v", p.NetWorth, want)
		}
	})
}

// TestNetWorthHistory_HoldingsValuation tests historical mark-to-market.
func TestNetWorthHistory_HoldingsValuation(t *testing.T) {
	today := day(2024, 6, 15)
	in := HistoryInput{
		Accounts: []model.Account{{ID: "inv", Type: model.AccountInvestment}},
		Transactions: []model.Transaction{
			{Type: model.TypeInvesting, AccountID: "inv", Symbol: "VWRL", Quantity: 10, Amount: -50, Currency: "GBX", Date: day(2024, 6, 10)},
		},
		Series: map[string]model.PriceSeries{
			"VWRL": {Symbol: "VWRL", Points: map[string]model.PricePoint{
				"2024-06-10": {Date: "2024-06-10", Close: 500},
				"2024-06-12": {Date: "2024-06-12", Close: 520},
			}},
		},
		Quotes: map[string]model.Quote{"VWRL": {Symbol: "VWRL", Price: 530, Currency: "GBX"}},
		Base:   GBP,
		FXRate: 1.27,
		Today:  today,
	}

	points := NetWorthHistory(in, model.Range1W)
	byDate := make(map[string]model.HistoryPoint, len(points))
	for _, p := range points {
		byDate[p.Date] = p
	}

	t.Run("before the buy the account is empty", func(t *testing.T) {
		if v := byDate["2024-06-09"].Investing; v != 0 {
			t.Errorf("2024-06-09: Investing = %v, want 0", v)
		}
	})

	t.Run("buy day uses that day's close in pence", func(t *testing.T) {
		if v := byDate["2024-06-10"].Investing; math.Abs(v-50) > 1e-9 {
			t.Errorf("2024-06-10: Investing = %v, want 10 * 500/100 = 50", v)
		}
	})

	t.Run("gap day forward-fills", func(t *testing.T) {
		if v := byDate["2024-06-11"].Investing; math.Abs(v-50) > 1e-9 {
			t.Errorf("2024-06-11: Investing = %v, want forward-filled 50", v)
		}
	})

	t.Run("today uses the live quote", func(t *testing.T) {
		if v := byDate["2024-06-15"].Investing; math.Abs(v-53) > 1e-9 {
			t.Errorf("today: Investing = %v, want 10 * 530/100 = 53", v)
		}
	})
}

// TestNetWorthHistory_AllRange tests the open-ended range.
func TestNetWorthHistory_AllRange(t *testing.T) {
	t.Run("no transactions collapses to a single today point", func(t *testing.T) {
		in := HistoryInput{
			Accounts: []model.Account{{ID: "chk", Type: model.AccountChecking, StartingValue: 75}},
			Base:     GBP,
			Today:    day(2024, 6, 15),
		}

		points := NetWorthHistory(in, model.RangeAll)
		if len(points) != 1 {
			t.Fatalf("expected 1 point, got %d", len(points))
		}
		if points[0].Date != "2024-06-15" || points[0].NetWorth != 75 {
			t.Errorf("point = %+v, want today with 75", points[0])
		}
	})

	t.Run("spans back to the earliest transaction", func(t *testing.T) {
		in := HistoryInput{
			Accounts: []model.Account{{ID: "chk", Type: model.AccountChecking, StartingValue: 75}},
			Transactions: []model.Transaction{
				{Type: model.TypeIncome, AccountID: "chk", Amount: 10, Date: day(2024, 6, 1)},
			},
			Base:  GBP,
			Today: day(2024, 6, 15),
		}

		points := NetWorthHistory(in, model.RangeAll)
		if points[0].Date != "2024-06-01" {
			t.Errorf("first point = %s, want 2024-06-01", points[0].Date)
		}
		if points[len(points)-1].Date != "2024-06-15" {
			t.Errorf("last point = %s, want today", points[len(points)-1].Date)
		}
	})
}

// TestNetWorthHistory_Restartable tests that repeated calls agree.
//
// WHY: the sweep keeps cursor state internally per call; leaking it across
// calls would skew every chart after the first.
func TestNetWorthHistory_Restartable(t *testing.T) {
	in := HistoryInput{
		Accounts: []model.Account{{ID: "chk", Type: model.AccountChecking, StartingValue: 100}},
		Transactions: []model.Transaction{
			{Type: model.TypeIncome, AccountID: "chk", Amount: 10, Date: day(2024, 6, 12)},
		},
		Base:  GBP,
		Today: day(2024, 6, 15),
	}

	first := NetWorthHistory(in, model.Range1W)
	second := NetWorthHistory(in, model.Range1W)

	if len(first) != len(second) {
		t.Fatalf("point counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("point %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
