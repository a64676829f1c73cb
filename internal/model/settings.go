package model

// Settings holds the user's reporting preferences and the FX snapshot used
// for valuation. FXRate is the GBP->USD rate; 0 means "unknown" and makes
// every FX conversion an identity (fail-soft).
type Settings struct {
	BaseCurrency   string  `json:"baseCurrency"`
	FXRate         float64 `json:"fxRate"`
	PriceAPIKeySet bool    `json:"priceApiKeySet"`
}
