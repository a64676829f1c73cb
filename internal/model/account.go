package model

// Account types
const (
	AccountChecking   = "checking"
	AccountSavings    = "savings"
	AccountInvestment = "investment"
)

// Account represents an asset account from the database.
// Non-investment accounts carry a cash StartingValue; investment accounts
// start at zero cash and accumulate value purely through holdings.
type Account struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Currency      string  `json:"currency"`
	StartingValue float64 `json:"startingValue"`
}
