package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/finledger/networth-backend/internal/model"
)

// AccountBuilder provides a fluent interface for creating test accounts.
//
// Example usage:
//
//	// Simple creation with defaults
//	account := testutil.NewAccount().Build(t, db)
//
//	// Customized account
//	account := testutil.NewAccount().
//	    WithName("Holiday Fund").
//	    WithType(model.AccountSavings).
//	    WithStartingValue(2500).
//	    Build(t, db)
type AccountBuilder struct {
	ID            string
	Name          string
	Type          string
	Currency      string
	StartingValue float64
}

// NewAccount creates an AccountBuilder with sensible defaults.
func NewAccount() *AccountBuilder {
	return &AccountBuilder{
		ID:            MakeID(),
		Name:          MakeName("Test Account"),
		Type:          model.AccountChecking,
		Currency:      "GBP",
		StartingValue: 0,
	}
}

// WithID sets a custom ID.
func (b *AccountBuilder) WithID(id string) *AccountBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *AccountBuilder) WithName(name string) *AccountBuilder {
	b.Name = name
	return b
}

// WithType sets the account type.
func (b *AccountBuilder) WithType(accountType string) *AccountBuilder {
	b.Type = accountType
	return b
}

// WithCurrency sets the account currency.
func (b *AccountBuilder) WithCurrency(currency string) *AccountBuilder {
	b.Currency = currency
	return b
}

// WithStartingValue sets the opening cash balance.
func (b *AccountBuilder) WithStartingValue(value float64) *AccountBuilder {
	b.StartingValue = value
	return b
}

// Investment marks the account as an investment account.
func (b *AccountBuilder) Investment() *AccountBuilder {
	b.Type = model.AccountInvestment
	return b
}

// Build creates the account in the database and returns it.
func (b *AccountBuilder) Build(t *testing.T, db *sql.DB) model.Account {
	t.Helper()

	query := `
		INSERT INTO account (id, name, type, currency, starting_value)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Name, b.Type, b.Currency, b.StartingValue)
	if err != nil {
		t.Fatalf("Failed to create test account: %v", err)
	}

	return model.Account{
		ID:            b.ID,
		Name:          b.Name,
		Type:          b.Type,
		Currency:      b.Currency,
		StartingValue: b.StartingValue,
	}
}

// DebtBuilder provides a fluent interface for creating test debts.
type DebtBuilder struct {
	ID              string
	Name            string
	Limit           float64
	APR             float64
	MinPaymentType  string
	MinPaymentValue float64
	StartingValue   float64
	Promo           *model.Promo
}

// NewDebt creates a DebtBuilder with sensible defaults.
func NewDebt() *DebtBuilder {
	return &DebtBuilder{
		ID:              MakeID(),
		Name:            MakeName("Test Card"),
		Limit:           5000,
		APR:             21.9,
		MinPaymentType:  model.MinPaymentFixed,
		MinPaymentValue: 50,
		StartingValue:   0,
	}
}

// WithID sets a custom ID.
func (b *DebtBuilder) WithID(id string) *DebtBuilder {
	b.ID = id
	return b
}

// WithAPR sets the standard APR.
func (b *DebtBuilder) WithAPR(apr float64) *DebtBuilder {
	b.APR = apr
	return b
}

// WithMinPayment sets the minimum payment rule.
func (b *DebtBuilder) WithMinPayment(paymentType string, value float64) *DebtBuilder {
	b.MinPaymentType = paymentType
	b.MinPaymentValue = value
	return b
}

// WithStartingValue sets the opening balance.
func (b *DebtBuilder) WithStartingValue(value float64) *DebtBuilder {
	b.StartingValue = value
	return b
}

// WithPromo attaches a promotional rate ending on the given date.
func (b *DebtBuilder) WithPromo(apr float64, endDate time.Time) *DebtBuilder {
	b.Promo = &model.Promo{PromoAPR: apr, PromoEndDate: endDate}
	return b
}

// Build creates the debt in the database and returns it.
func (b *DebtBuilder) Build(t *testing.T, db *sql.DB) model.Debt {
	t.Helper()

	var promoAPR any
	var promoEnd any
	if b.Promo != nil {
		promoAPR = b.Promo.PromoAPR
		promoEnd = b.Promo.PromoEndDate.Format("2006-01-02")
	}

	query := `
		INSERT INTO debt (id, name, debt_limit, apr, min_payment_type, min_payment_value, starting_value, promo_apr, promo_end_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Name, b.Limit, b.APR, b.MinPaymentType, b.MinPaymentValue, b.StartingValue, promoAPR, promoEnd)
	if err != nil {
		t.Fatalf("Failed to create test debt: %v", err)
	}

	return model.Debt{
		ID:              b.ID,
		Name:            b.Name,
		Limit:           b.Limit,
		APR:             b.APR,
		MinPaymentType:  b.MinPaymentType,
		MinPaymentValue: b.MinPaymentValue,
		StartingValue:   b.StartingValue,
		Promo:           b.Promo,
	}
}

// TransactionBuilder provides a fluent interface for creating test ledger entries.
type TransactionBuilder struct {
	ID          string
	Date        time.Time
	Description string
	Amount      float64
	Type        string
	Category    string
	AccountID   string
	AccountToID string
	Symbol      string
	Quantity    float64
	Price       float64
	Currency    string
}

// NewTransaction creates a TransactionBuilder for the given account with
// sensible defaults (an expense of -10 dated today).
func NewTransaction(accountID string) *TransactionBuilder {
	return &TransactionBuilder{
		ID:          MakeID(),
		Date:        time.Now().UTC(),
		Description: "Test transaction",
		Amount:      -10,
		Type:        model.TypeExpense,
		Category:    "General",
		AccountID:   accountID,
	}
}

// On sets the transaction date.
func (b *TransactionBuilder) On(date time.Time) *TransactionBuilder {
	b.Date = date
	return b
}

// WithAmount sets the signed amount.
func (b *TransactionBuilder) WithAmount(amount float64) *TransactionBuilder {
	b.Amount = amount
	return b
}

// WithType sets the transaction type.
func (b *TransactionBuilder) WithType(txType string) *TransactionBuilder {
	b.Type = txType
	return b
}

// WithCategory sets the category.
func (b *TransactionBuilder) WithCategory(category string) *TransactionBuilder {
	b.Category = category
	return b
}

// TransferTo turns the entry into a transfer to the given account. The
// amount stays the signed outflow on the source account.
func (b *TransactionBuilder) TransferTo(accountToID string) *TransactionBuilder {
	b.Type = model.TypeTransfer
	b.AccountToID = accountToID
	return b
}

// Investing turns the entry into an investing transaction for the symbol.
func (b *TransactionBuilder) Investing(symbol string, quantity, price float64) *TransactionBuilder {
	b.Type = model.TypeInvesting
	b.Symbol = symbol
	b.Quantity = quantity
	b.Price = price
	return b
}

// WithCurrency sets the holding's native currency for investing entries.
func (b *TransactionBuilder) WithCurrency(currency string) *TransactionBuilder {
	b.Currency = currency
	return b
}

// Build creates the transaction in the database and returns it.
func (b *TransactionBuilder) Build(t *testing.T, db *sql.DB) model.Transaction {
	t.Helper()

	query := `
		INSERT INTO "transaction" (id, date, description, amount, type, category, account_id, account_to_id, symbol, quantity, price, currency, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var accountToID, symbol, currency any
	if b.AccountToID != "" {
		accountToID = b.AccountToID
	}
	if b.Symbol != "" {
		symbol = b.Symbol
	}
	if b.Currency != "" {
		currency = b.Currency
	}

	_, err := db.Exec(query,
		b.ID,
		b.Date.Format("2006-01-02"),
		b.Description,
		b.Amount,
		b.Type,
		b.Category,
		b.AccountID,
		accountToID,
		symbol,
		b.Quantity,
		b.Price,
		currency,
		b.Date.UTC().Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("Failed to create test transaction: %v", err)
	}

	return model.Transaction{
		ID:          b.ID,
		Date:        b.Date,
		Description: b.Description,
		Amount:      b.Amount,
		Type:        b.Type,
		Category:    b.Category,
		AccountID:   b.AccountID,
		AccountToID: b.AccountToID,
		Symbol:      b.Symbol,
		Quantity:    b.Quantity,
		Price:       b.Price,
		Currency:    b.Currency,
		CreatedAt:   b.Date.UTC(),
	}
}

// InsertPricePoint stores a daily close for a symbol.
//
// Example usage:
//
//	testutil.InsertPricePoint(t, db, "VWRL.L", "2024-03-01", 105.2, false)
func InsertPricePoint(t *testing.T, db *sql.DB, symbol, date string, close float64, synthetic bool) {
	t.Helper()

	query := `
		INSERT INTO symbol_price (id, symbol, date, open, close, synthetic)
		VALUES (?, ?, ?, NULL, ?, ?)
		ON CONFLICT (symbol, date) DO UPDATE SET close = excluded.close, synthetic = excluded.synthetic
	`

	if _, err := db.Exec(query, MakeID(), symbol, date, close, synthetic); err != nil {
		t.Fatalf("Failed to insert test price point: %v", err)
	}
}

// SetSettings updates the single settings row.
func SetSettings(t *testing.T, db *sql.DB, baseCurrency string, fxRate float64) {
	t.Helper()

	if _, err := db.Exec("UPDATE settings SET base_currency = ?, fx_rate = ? WHERE id = 1", baseCurrency, fxRate); err != nil {
		t.Fatalf("Failed to update test settings: %v", err)
	}
}
