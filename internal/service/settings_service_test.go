package service_test

import (
	"context"
	"errors"
	"testing"

	apperrors "github.com/finledger/networth-backend/internal/errors"
	"github.com/finledger/networth-backend/internal/testutil"
)

// testFernetKey is a throwaway base64url-encoded 32-byte key for tests.
const testFernetKey = "cw_0x689RpI-jtRR7oE8h_eQsKImvJapLeSbXpwF4e4="

// TestSettingsService_Settings tests reading and updating preferences.
//
// WHY: Every valuation reads these two values. The defaults (GBP, unknown
// FX) must be present from the first boot, and updates must round-trip.
func TestSettingsService_Settings(t *testing.T) {
	t.Run("defaults to GBP with unknown FX rate", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSettingsService(t, db)

		// Execute
		settings, err := svc.GetSettings()

		// Assert
		if err != nil {
			t.Fatalf("GetSettings() returned unexpected error: %v", err)
		}
		if settings.BaseCurrency != "GBP" {
			t.Errorf("Expected default base currency GBP, got %s", settings.BaseCurrency)
		}
		if settings.FXRate != 0 {
			t.Errorf("Expected default FX rate 0 (unknown), got %v", settings.FXRate)
		}
		if settings.PriceAPIKeySet {
			t.Error("Expected no API key stored by default")
		}
	})

	t.Run("updates round-trip", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSettingsService(t, db)

		// Execute
		if err := svc.UpdateSettings(context.Background(), "USD", 1.27); err != nil {
			t.Fatalf("UpdateSettings() returned unexpected error: %v", err)
		}
		settings, err := svc.GetSettings()

		// Assert
		if err != nil {
			t.Fatalf("GetSettings() returned unexpected error: %v", err)
		}
		if settings.BaseCurrency != "USD" || settings.FXRate != 1.27 {
			t.Errorf("Expected USD/1.27, got %s/%v", settings.BaseCurrency, settings.FXRate)
		}
	})
}

// TestSettingsService_PriceAPIKey tests encrypted credential storage.
//
// WHY: The price-API key is a secret at rest. It must round-trip through
// encryption, and storage must refuse cleanly when no key material is
// configured rather than writing plaintext.
func TestSettingsService_PriceAPIKey(t *testing.T) {
	t.Run("round-trips through encryption", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSettingsServiceWithKey(t, db, testFernetKey)

		// Execute
		if err := svc.SetPriceAPIKey(context.Background(), "secret-token"); err != nil {
			t.Fatalf("SetPriceAPIKey() returned unexpected error: %v", err)
		}
		key, err := svc.PriceAPIKey()

		// Assert
		if err != nil {
			t.Fatalf("PriceAPIKey() returned unexpected error: %v", err)
		}
		if key != "secret-token" {
			t.Errorf("Expected decrypted key, got %q", key)
		}

		// The stored value must not be the plaintext.
		var stored string
		if err := db.QueryRow("SELECT price_api_key FROM settings WHERE id = 1").Scan(&stored); err != nil {
			t.Fatalf("Failed to read stored key: %v", err)
		}
		if stored == "secret-token" {
			t.Error("API key stored in plaintext")
		}

		settings, err := svc.GetSettings()
		if err != nil {
			t.Fatalf("GetSettings() returned unexpected error: %v", err)
		}
		if !settings.PriceAPIKeySet {
			t.Error("Expected PriceAPIKeySet after storing a key")
		}
	})

	t.Run("refuses without key material", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSettingsService(t, db)

		// Execute
		err := svc.SetPriceAPIKey(context.Background(), "secret-token")

		// Assert
		if !errors.Is(err, apperrors.ErrNoSecretKey) {
			t.Errorf("Expected ErrNoSecretKey, got %v", err)
		}
	})
}
