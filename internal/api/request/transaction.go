package request

// CreateTransactionRequest is the payload for creating a ledger entry.
// Symbol, Quantity, Price and Currency apply to investing transactions;
// AccountToID applies to transfers.
type CreateTransactionRequest struct {
	Date        string  `json:"date"` // YYYY-MM-DD
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	AccountID   string  `json:"accountId"`
	AccountToID string  `json:"accountToId,omitempty"`
	Symbol      string  `json:"symbol,omitempty"`
	Quantity    float64 `json:"quantity,omitempty"`
	Price       float64 `json:"price,omitempty"`
	Currency    string  `json:"currency,omitempty"`
}

// UpdateTransactionRequest is the payload for updating a ledger entry.
type UpdateTransactionRequest = CreateTransactionRequest
