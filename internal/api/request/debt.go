package request

// CreateDebtRequest is the payload for creating a debt.
// PromoAPR and PromoEndDate must be provided together or not at all.
type CreateDebtRequest struct {
	Name            string   `json:"name"`
	Limit           float64  `json:"limit"`
	APR             float64  `json:"apr"`
	MinPaymentType  string   `json:"minPaymentType"`
	MinPaymentValue float64  `json:"minPaymentValue"`
	StartingValue   float64  `json:"startingValue"`
	PromoAPR        *float64 `json:"promoApr,omitempty"`
	PromoEndDate    string   `json:"promoEndDate,omitempty"` // YYYY-MM-DD
}

// UpdateDebtRequest is the payload for updating a debt.
type UpdateDebtRequest = CreateDebtRequest
