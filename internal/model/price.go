package model

// PricePoint is one day of historical price data for a symbol.
// Open may be absent (nil) even when a close exists; gaps between dates
// (weekends, holidays) are expected and forward-filled at read time.
type PricePoint struct {
	Date  string   `json:"date"` // YYYY-MM-DD
	Open  *float64 `json:"open"`
	Close float64  `json:"close"`
}

// PriceSeries is the historical series for one symbol, keyed by date string.
// Synthetic marks a series generated as a random walk around the current
// price because no real history was available; downstream arithmetic treats
// it exactly like real data.
type PriceSeries struct {
	Symbol    string                `json:"symbol"`
	Points    map[string]PricePoint `json:"points"`
	Synthetic bool                  `json:"synthetic"`
}

// Quote is the current live price for a symbol in its native currency.
type Quote struct {
	Symbol   string  `json:"symbol"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
}
