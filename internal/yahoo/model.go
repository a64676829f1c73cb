package yahoo

// Response is the raw chart API response envelope.
type Response struct {
	Chart Chart `json:"chart"`
}

// Chart holds the result set and any API-level error.
type Chart struct {
	Result []Result    `json:"result"`
	Error  *ChartError `json:"error"`
}

// ChartError is the API-level error payload.
type ChartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Result is a single symbol's chart data.
type Result struct {
	Meta       Meta       `json:"meta"`
	Timestamp  []int64    `json:"timestamp"`
	Indicators Indicators `json:"indicators"`
}

// Meta carries symbol-level metadata, including the pricing currency and the
// regular-market price used for live quotes.
type Meta struct {
	Symbol             string  `json:"symbol"`
	Currency           string  `json:"currency"`
	ExchangeName       string  `json:"exchangeName"`
	RegularMarketPrice float64 `json:"regularMarketPrice"`
}

// Indicators wraps the quote arrays.
type Indicators struct {
	Quote []QuoteArrays `json:"quote"`
}

// QuoteArrays are the per-day OHLC arrays, parallel to Result.Timestamp.
// Entries can be null for days the exchange reported no data.
type QuoteArrays struct {
	Open  []*float64 `json:"open"`
	Close []*float64 `json:"close"`
}
