package request

// UpdateSettingsRequest is the payload for updating reporting preferences.
type UpdateSettingsRequest struct {
	BaseCurrency string  `json:"baseCurrency"`
	FXRate       float64 `json:"fxRate"`
}

// SetPriceAPIKeyRequest is the payload for storing the price API credential.
type SetPriceAPIKeyRequest struct {
	APIKey string `json:"apiKey"`
}
