package service_test

import (
	"context"
	"errors"
	"testing"

	apperrors "github.com/finledger/networth-backend/internal/errors"
	"github.com/finledger/networth-backend/internal/model"
	"github.com/finledger/networth-backend/internal/testutil"
)

// TestAccountService_CRUD tests the account lifecycle.
//
// WHY: Accounts anchor balances and history; creation must default the
// currency, and missing rows must surface the not-found sentinel the
// handlers translate to 404s.
func TestAccountService_CRUD(t *testing.T) {
	t.Run("create defaults currency to GBP", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAccountService(t, db)

		// Execute
		created, err := svc.CreateAccount(context.Background(), model.Account{
			Name: "Main",
			Type: model.AccountChecking,
		})

		// Assert
		if err != nil {
			t.Fatalf("CreateAccount() returned unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Error("Expected a generated ID")
		}
		if created.Currency != "GBP" {
			t.Errorf("Expected default currency GBP, got %s", created.Currency)
		}
	})

	t.Run("update round-trips", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAccountService(t, db)
		account := testutil.NewAccount().WithStartingValue(100).Build(t, db)

		// Execute
		account.Name = "Renamed"
		account.StartingValue = 250
		if err := svc.UpdateAccount(context.Background(), account); err != nil {
			t.Fatalf("UpdateAccount() returned unexpected error: %v", err)
		}
		stored, err := svc.GetAccount(account.ID)

		// Assert
		if err != nil {
			t.Fatalf("GetAccount() returned unexpected error: %v", err)
		}
		if stored.Name != "Renamed" || stored.StartingValue != 250 {
			t.Errorf("Update did not persist: %+v", stored)
		}
	})

	t.Run("missing rows return the not-found sentinel", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAccountService(t, db)
		missing := testutil.MakeID()

		if _, err := svc.GetAccount(missing); !errors.Is(err, apperrors.ErrAccountNotFound) {
			t.Errorf("GetAccount: expected ErrAccountNotFound, got %v", err)
		}
		if err := svc.UpdateAccount(context.Background(), model.Account{ID: missing, Name: "x"}); !errors.Is(err, apperrors.ErrAccountNotFound) {
			t.Errorf("UpdateAccount: expected ErrAccountNotFound, got %v", err)
		}
		if err := svc.DeleteAccount(context.Background(), missing); !errors.Is(err, apperrors.ErrAccountNotFound) {
			t.Errorf("DeleteAccount: expected ErrAccountNotFound, got %v", err)
		}
	})

	t.Run("delete leaves ledger rows in place", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAccountService(t, db)
		account := testutil.NewAccount().Build(t, db)
		testutil.NewTransaction(account.ID).Build(t, db)

		// Execute
		if err := svc.DeleteAccount(context.Background(), account.ID); err != nil {
			t.Fatalf("DeleteAccount() returned unexpected error: %v", err)
		}

		// Assert
		testutil.AssertRowCount(t, db, "account", 0)
		testutil.AssertRowCount(t, db, "transaction", 1)
	})
}
