package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fernet/fernet-go"
	apperrors "github.com/finledger/networth-backend/internal/errors"
	"github.com/finledger/networth-backend/internal/model"
	"github.com/finledger/networth-backend/internal/repository"
)

// SettingsService handles the user's reporting preferences and the stored
// price-API credential. The credential is encrypted with a fernet key from
// the environment before it touches the database.
type SettingsService struct {
	settingsRepo *repository.SettingsRepository
	fernetKey    *fernet.Key
}

// NewSettingsService creates a new SettingsService. fernetKey may be empty,
// in which case API-key storage is disabled but everything else works.
func NewSettingsService(settingsRepo *repository.SettingsRepository, fernetKey string) (*SettingsService, error) {
	s := &SettingsService{settingsRepo: settingsRepo}

	if fernetKey != "" {
		key, err := fernet.DecodeKey(fernetKey)
		if err != nil {
			return nil, fmt.Errorf("invalid fernet key: %w", err)
		}
		s.fernetKey = key
	}

	return s, nil
}

// GetSettings retrieves the user's settings. The API key itself is never
// returned, only whether one is stored.
func (s *SettingsService) GetSettings() (model.Settings, error) {
	row, err := s.settingsRepo.GetSettings()
	if err != nil {
		return model.Settings{}, err
	}

	return model.Settings{
		BaseCurrency:   row.BaseCurrency,
		FXRate:         row.FXRate,
		PriceAPIKeySet: row.EncryptedPriceKey != "",
	}, nil
}

// UpdateSettings writes the base currency and GBP->USD rate. A rate of 0 is
// valid and means "unknown": the engine treats FX conversions as identity.
func (s *SettingsService) UpdateSettings(ctx context.Context, baseCurrency string, fxRate float64) error {
	return s.settingsRepo.UpdateSettings(ctx, baseCurrency, fxRate)
}

// SetPriceAPIKey encrypts and stores the external price-API credential.
func (s *SettingsService) SetPriceAPIKey(ctx context.Context, apiKey string) error {
	if s.fernetKey == nil {
		return apperrors.ErrNoSecretKey
	}

	token, err := fernet.EncryptAndSign([]byte(apiKey), s.fernetKey)
	if err != nil {
		return fmt.Errorf("failed to encrypt price API key: %w", err)
	}

	return s.settingsRepo.UpdatePriceAPIKey(ctx, string(token))
}

// PriceAPIKey decrypts and returns the stored credential for internal use
// by the price client. Returns an empty string when none is stored.
func (s *SettingsService) PriceAPIKey() (string, error) {
	if s.fernetKey == nil {
		return "", apperrors.ErrNoSecretKey
	}

	row, err := s.settingsRepo.GetSettings()
	if err != nil {
		return "", err
	}
	if row.EncryptedPriceKey == "" {
		return "", nil
	}

	plaintext := fernet.VerifyAndDecrypt([]byte(row.EncryptedPriceKey), 0*time.Second, []*fernet.Key{s.fernetKey})
	if plaintext == nil {
		return "", fmt.Errorf("failed to decrypt stored price API key")
	}
	return string(plaintext), nil
}
