package model

// History ranges accepted by the history endpoint.
const (
	Range1W  = "1W"
	Range1M  = "1M"
	Range3M  = "3M"
	Range6M  = "6M"
	Range1Y  = "1Y"
	RangeAll = "all"
)

// HistoryPoint is one sampled day of the reconstructed net-worth trajectory.
// NetWorth = Assets - Debts; Checking/Savings/Investing are per-type asset
// subtotals. All values are in the user's base currency.
type HistoryPoint struct {
	Date      string  `json:"date"` // YYYY-MM-DD
	NetWorth  float64 `json:"netWorth"`
	Assets    float64 `json:"assets"`
	Debts     float64 `json:"debts"`
	Checking  float64 `json:"checking"`
	Savings   float64 `json:"savings"`
	Investing float64 `json:"investing"`
}
