package repository

import (
	"context"
	"database/sql"
	"fmt"

	apperrors "github.com/finledger/networth-backend/internal/errors"
)

// SettingsRepository provides data access methods for the single-row
// settings table. The price API key is stored as a fernet token; encryption
// and decryption live in the settings service, not here.
type SettingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SettingsRepository with the provided database connection.
func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// SettingsRow is the raw persisted form of the settings.
type SettingsRow struct {
	BaseCurrency      string
	FXRate            float64
	EncryptedPriceKey string
}

// GetSettings retrieves the settings row.
func (r *SettingsRepository) GetSettings() (SettingsRow, error) {
	var row SettingsRow
	var key sql.NullString

	err := r.db.QueryRow(`
		SELECT base_currency, fx_rate, price_api_key
		FROM settings
		WHERE id = 1
	`).Scan(&row.BaseCurrency, &row.FXRate, &key)
	if err == sql.ErrNoRows {
		return SettingsRow{}, apperrors.ErrSettingsNotFound
	}
	if err != nil {
		return SettingsRow{}, fmt.Errorf("failed to query settings table: %w", err)
	}

	row.EncryptedPriceKey = key.String
	return row, nil
}

// UpdateSettings writes the base currency and FX rate.
func (r *SettingsRepository) UpdateSettings(ctx context.Context, baseCurrency string, fxRate float64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE settings SET base_currency = ?, fx_rate = ? WHERE id = 1
	`, baseCurrency, fxRate)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	return nil
}

// UpdatePriceAPIKey stores the already-encrypted price API key token.
func (r *SettingsRepository) UpdatePriceAPIKey(ctx context.Context, encryptedKey string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE settings SET price_api_key = ? WHERE id = 1
	`, encryptedKey)
	if err != nil {
		return fmt.Errorf("failed to update price API key: %w", err)
	}
	return nil
}
