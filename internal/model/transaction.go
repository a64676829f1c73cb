package model

import "time"

// Transaction types. The meaning of Amount depends on the type:
// income/expense are signed cash flows, investing amounts are always in the
// user's base currency, debt_payment rows are negative payments against a
// debt, and transfers are recorded as a signed outflow on the source account.
const (
	TypeIncome      = "income"
	TypeExpense     = "expense"
	TypeInvesting   = "investing"
	TypeDebtPayment = "debt_payment"
	TypeTransfer    = "transfer"
)

// CategorySell marks an investing transaction as a disposal. Sells reduce
// the holding's quantity and shrink its cost basis proportionally.
const CategorySell = "Sell"

// Transaction represents a single ledger entry. Transactions are append-only
// from the engine's point of view: the engine derives balances and history
// from them but never mutates them. Ordering is by Date, not insertion order.
//
// For investing transactions, Amount is always in the user's base currency
// while Price and Quantity are in the holding's native currency/unit.
type Transaction struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	AccountID   string    `json:"accountId"`
	AccountToID string    `json:"accountToId,omitempty"`
	Symbol      string    `json:"symbol,omitempty"`
	Quantity    float64   `json:"quantity,omitempty"`
	Price       float64   `json:"price,omitempty"`
	Currency    string    `json:"currency,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}
