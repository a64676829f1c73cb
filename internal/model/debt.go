package model

import "time"

// Minimum payment types
const (
	MinPaymentFixed      = "fixed"
	MinPaymentPercentage = "percentage"
)

// Debt represents a liability from the database. Charges against the debt
// are recorded as positive transactions, payments as negative ones.
type Debt struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Limit           float64 `json:"limit"`
	APR             float64 `json:"apr"`
	MinPaymentType  string  `json:"minPaymentType"`
	MinPaymentValue float64 `json:"minPaymentValue"`
	StartingValue   float64 `json:"startingValue"`
	Promo           *Promo  `json:"promo,omitempty"`
}

// Promo is a temporary reduced interest rate on a debt, reverting to the
// standard APR after the end date.
type Promo struct {
	PromoAPR     float64   `json:"promoApr"`
	PromoEndDate time.Time `json:"promoEndDate"`
}

// DebtProjection is the payoff outlook for a debt at its current balance.
// PayoffMonths carries the amortization horizon; Indefinite is true when the
// balance never shrinks under the current minimum payment (the horizon is
// undefined, not an error).
type DebtProjection struct {
	DebtID          string  `json:"debtId"`
	Balance         float64 `json:"balance"`
	ActiveAPR       float64 `json:"activeApr"`
	MinPayment      float64 `json:"minPayment"`
	MonthlyInterest float64 `json:"monthlyInterest"`
	PayoffMonths    int     `json:"payoffMonths"`
	Indefinite      bool    `json:"indefinite"`
	PromoActive     bool    `json:"promoActive"`
	PromoMonthsLeft int     `json:"promoMonthsLeft,omitempty"`
	PromoShortfall  float64 `json:"promoShortfall,omitempty"`
}
