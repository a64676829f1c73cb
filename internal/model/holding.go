package model

// Holding is the derived position in a single symbol, reconstructed by
// replaying investing transactions. It is never persisted.
//
// Quantity moves by the signed transaction quantities. TotalCost is in the
// user's base currency: it grows by |amount| on buys and dividend
// reinvestments and shrinks proportionally on sells (average-cost method).
// Currency is the holding's native pricing currency, not the base currency.
type Holding struct {
	Symbol    string  `json:"symbol"`
	Quantity  float64 `json:"quantity"`
	TotalCost float64 `json:"totalCost"`
	Currency  string  `json:"currency"`
}
