package request

// CreateAccountRequest is the payload for creating an account.
type CreateAccountRequest struct {
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Currency      string  `json:"currency"`
	StartingValue float64 `json:"startingValue"`
}

// UpdateAccountRequest is the payload for updating an account.
type UpdateAccountRequest struct {
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Currency      string  `json:"currency"`
	StartingValue float64 `json:"startingValue"`
}
