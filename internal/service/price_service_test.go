package service_test

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/finledger/networth-backend/internal/model"
	"github.com/finledger/networth-backend/internal/testutil"
)

// TestPriceService_CurrentQuotes tests live quote resolution.
//
// WHY: Balance queries must survive a flaky price API. A symbol whose fetch
// fails has to fall back to its most recent stored close instead of
// blanking the whole balances page.
func TestPriceService_CurrentQuotes(t *testing.T) {
	t.Run("returns live quotes from the API", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		client := testutil.NewStubFinanceClient(t, map[string]testutil.StubQuote{
			"VWRL.L": {Price: 105.4, Currency: "GBp"},
		})
		svc := testutil.NewTestPriceService(t, db, client)

		// Execute
		quotes, err := svc.CurrentQuotes(context.Background(), []string{"VWRL.L"})

		// Assert
		if err != nil {
			t.Fatalf("CurrentQuotes() returned unexpected error: %v", err)
		}
		quote, found := quotes["VWRL.L"]
		if !found {
			t.Fatal("Expected a quote for VWRL.L")
		}
		if quote.Price != 105.4 {
			t.Errorf("Expected price 105.4, got %v", quote.Price)
		}
		if quote.Currency != "GBX" {
			t.Errorf("Expected pence tag normalized to GBX, got %q", quote.Currency)
		}
	})

	t.Run("falls back to the latest stored close", func(t *testing.T) {
		// Setup: stub knows nothing, store has history.
		db := testutil.SetupTestDB(t)
		client := testutil.NewStubFinanceClient(t, nil)
		svc := testutil.NewTestPriceService(t, db, client)

		yesterday := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
		testutil.InsertPricePoint(t, db, "DEAD.L", yesterday, 42, false)

		// Execute
		quotes, err := svc.CurrentQuotes(context.Background(), []string{"DEAD.L"})

		// Assert
		if err != nil {
			t.Fatalf("CurrentQuotes() returned unexpected error: %v", err)
		}
		quote, found := quotes["DEAD.L"]
		if !found {
			t.Fatal("Expected a fallback quote for DEAD.L")
		}
		if quote.Price != 42 {
			t.Errorf("Expected stored close 42, got %v", quote.Price)
		}
	})

	t.Run("no symbols means no work", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		client := testutil.NewStubFinanceClient(t, nil)
		svc := testutil.NewTestPriceService(t, db, client)

		// Execute
		quotes, err := svc.CurrentQuotes(context.Background(), nil)

		// Assert
		if err != nil {
			t.Fatalf("CurrentQuotes() returned unexpected error: %v", err)
		}
		if len(quotes) != 0 {
			t.Errorf("Expected empty quote map, got %v", quotes)
		}
	})
}

// TestPriceService_GetSeries tests historical series resolution.
//
// WHY: Symbols with no stored history get a synthetic walk anchored at the
// current price. The walk must be deterministic per symbol so a chart
// rendered twice looks the same, and it must be flagged and persisted so
// real data can later overwrite it.
func TestPriceService_GetSeries(t *testing.T) {
	t.Run("stored series pass through untouched", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		client := testutil.NewStubFinanceClient(t, nil)
		svc := testutil.NewTestPriceService(t, db, client)

		testutil.InsertPricePoint(t, db, "VWRL.L", "2024-03-01", 104, false)
		testutil.InsertPricePoint(t, db, "VWRL.L", "2024-03-04", 105, false)

		// Execute
		series, err := svc.GetSeries(context.Background(), []string{"VWRL.L"}, nil)

		// Assert
		if err != nil {
			t.Fatalf("GetSeries() returned unexpected error: %v", err)
		}
		s := series["VWRL.L"]
		if s.Synthetic {
			t.Error("Stored series must not be flagged synthetic")
		}
		if len(s.Points) != 2 {
			t.Errorf("Expected 2 stored points, got %d", len(s.Points))
		}
		if s.Points["2024-03-04"].Close != 105 {
			t.Errorf("Expected close 105 on 2024-03-04, got %v", s.Points["2024-03-04"].Close)
		}
	})

	t.Run("missing history gets a deterministic synthetic walk", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		client := testutil.NewStubFinanceClient(t, nil)
		svc := testutil.NewTestPriceService(t, db, client)

		quotes := map[string]model.Quote{
			"NEW.L": {Symbol: "NEW.L", Price: 100, Currency: "GBP"},
		}

		// Execute twice against fresh databases to compare walks.
		first, err := svc.GetSeries(context.Background(), []string{"NEW.L"}, quotes)
		if err != nil {
			t.Fatalf("GetSeries() returned unexpected error: %v", err)
		}

		db2 := testutil.SetupTestDB(t)
		svc2 := testutil.NewTestPriceService(t, db2, client)
		second, err := svc2.GetSeries(context.Background(), []string{"NEW.L"}, quotes)
		if err != nil {
			t.Fatalf("GetSeries() returned unexpected error: %v", err)
		}

		// Assert
		s := first["NEW.L"]
		if !s.Synthetic {
			t.Fatal("Expected a synthetic series")
		}
		today := time.Now().UTC().Format("2006-01-02")
		if s.Points[today].Close != 100 {
			t.Errorf("Expected the walk anchored at 100 today, got %v", s.Points[today].Close)
		}
		if !reflect.DeepEqual(first["NEW.L"].Points, second["NEW.L"].Points) {
			t.Error("Expected the synthetic walk to be deterministic per symbol")
		}
	})

	t.Run("synthetic walk is persisted with the synthetic flag", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		client := testutil.NewStubFinanceClient(t, nil)
		svc := testutil.NewTestPriceService(t, db, client)

		quotes := map[string]model.Quote{
			"NEW.L": {Symbol: "NEW.L", Price: 100, Currency: "GBP"},
		}

		// Execute
		if _, err := svc.GetSeries(context.Background(), []string{"NEW.L"}, quotes); err != nil {
			t.Fatalf("GetSeries() returned unexpected error: %v", err)
		}

		// Assert
		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM symbol_price WHERE symbol = 'NEW.L' AND synthetic").Scan(&count); err != nil {
			t.Fatalf("Failed to count synthetic rows: %v", err)
		}
		if count == 0 {
			t.Error("Expected persisted synthetic price rows")
		}
	})

	t.Run("no anchor price leaves the symbol out", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		client := testutil.NewStubFinanceClient(t, nil)
		svc := testutil.NewTestPriceService(t, db, client)

		// Execute
		series, err := svc.GetSeries(context.Background(), []string{"GHOST.L"}, nil)

		// Assert
		if err != nil {
			t.Fatalf("GetSeries() returned unexpected error: %v", err)
		}
		if _, found := series["GHOST.L"]; found {
			t.Error("Expected no series without history or an anchor price")
		}
	})
}

// TestPriceService_RefreshAll tests the bulk refresh.
//
// WHY: The nightly job re-fetches every symbol in the ledger. One dead
// ticker must not abort the rest, and fetched closes must land in the store
// as real (non-synthetic) data.
func TestPriceService_RefreshAll(t *testing.T) {
	t.Run("stores fetched closes and survives dead tickers", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		client := testutil.NewStubFinanceClient(t, map[string]testutil.StubQuote{
			"VWRL.L": {Price: 106, Currency: "GBp", Closes: []float64{104, 105, 106}},
		})
		svc := testutil.NewTestPriceService(t, db, client)

		invest := testutil.NewAccount().Investment().Build(t, db)
		day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
		testutil.NewTransaction(invest.ID).On(day).WithAmount(-1000).Investing("VWRL.L", 10, 100).Build(t, db)
		testutil.NewTransaction(invest.ID).On(day).WithAmount(-500).Investing("DEAD.L", 5, 100).Build(t, db)

		// Execute
		if err := svc.RefreshAll(context.Background()); err != nil {
			t.Fatalf("RefreshAll() returned unexpected error: %v", err)
		}

		// Assert
		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM symbol_price WHERE symbol = 'VWRL.L' AND NOT synthetic").Scan(&count); err != nil {
			t.Fatalf("Failed to count price rows: %v", err)
		}
		if count != 3 {
			t.Errorf("Expected 3 stored closes for VWRL.L, got %d", count)
		}
		testutil.AssertRowCount(t, db, "symbol_price", 3)
	})
}
