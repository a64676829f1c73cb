package repository

import (
	"context"
	"database/sql"
	"fmt"

	apperrors "github.com/finledger/networth-backend/internal/errors"
	"github.com/finledger/networth-backend/internal/model"
)

// TransactionRepository provides data access methods for the transaction table.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

const transactionColumns = `id, date, description, amount, type, category, account_id, account_to_id, symbol, quantity, price, currency, created_at`

// GetTransactions retrieves the full transaction log sorted by date ascending.
// The ledger engine depends on date ordering, never insertion order.
func (r *TransactionRepository) GetTransactions() ([]model.Transaction, error) {
	rows, err := r.db.Query(`
		SELECT ` + transactionColumns + `
		FROM "transaction"
		ORDER BY date ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows.Scan)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction table: %w", err)
	}

	return transactions, nil
}

// GetTransactionsForAccount retrieves all transactions posted to one account
// or debt, sorted by date ascending.
func (r *TransactionRepository) GetTransactionsForAccount(accountID string) ([]model.Transaction, error) {
	rows, err := r.db.Query(`
		SELECT `+transactionColumns+`
		FROM "transaction"
		WHERE account_id = ? OR account_to_id = ?
		ORDER BY date ASC
	`, accountID, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows.Scan)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction table: %w", err)
	}

	return transactions, nil
}

// GetTransaction retrieves a single transaction by ID.
func (r *TransactionRepository) GetTransaction(transactionID string) (model.Transaction, error) {
	row := r.db.QueryRow(`SELECT `+transactionColumns+` FROM "transaction" WHERE id = ?`, transactionID)
	t, err := scanTransaction(row.Scan)
	if err == sql.ErrNoRows {
		return model.Transaction{}, apperrors.ErrTransactionNotFound
	}
	if err != nil {
		return model.Transaction{}, err
	}
	return t, nil
}

// GetSymbols returns the distinct symbols referenced by investing transactions.
func (r *TransactionRepository) GetSymbols() ([]string, error) {
	rows, err := r.db.Query(`
		SELECT DISTINCT symbol
		FROM "transaction"
		WHERE type = 'investing' AND symbol IS NOT NULL AND symbol != ''
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query symbols: %w", err)
	}
	defer rows.Close()

	symbols := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("failed to scan symbol: %w", err)
		}
		symbols = append(symbols, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating symbols: %w", err)
	}

	return symbols, nil
}

func scanTransaction(scan func(dest ...any) error) (model.Transaction, error) {
	var t model.Transaction
	var dateStr, createdAtStr string
	var description, category, accountToID, symbol, currency sql.NullString
	var quantity, price sql.NullFloat64

	err := scan(
		&t.ID,
		&dateStr,
		&description,
		&t.Amount,
		&t.Type,
		&category,
		&t.AccountID,
		&accountToID,
		&symbol,
		&quantity,
		&price,
		&currency,
		&createdAtStr,
	)
	if err == sql.ErrNoRows {
		return model.Transaction{}, err
	}
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to scan transaction table results: %w", err)
	}

	t.Date, err = ParseTime(dateStr)
	if err != nil || t.Date.IsZero() {
		return model.Transaction{}, fmt.Errorf("failed to parse date: %w", err)
	}
	t.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		// created_at can come back in SQLite's "2006-01-02 15:04:05" form.
		t.CreatedAt = t.Date
	}

	t.Description = description.String
	t.Category = category.String
	t.AccountToID = accountToID.String
	t.Symbol = symbol.String
	t.Quantity = quantity.Float64
	t.Price = price.Float64
	t.Currency = currency.String

	return t, nil
}

// InsertTransaction persists a new transaction.
func (r *TransactionRepository) InsertTransaction(ctx context.Context, t *model.Transaction) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO "transaction" (`+transactionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		t.ID,
		t.Date.Format("2006-01-02"),
		t.Description,
		t.Amount,
		t.Type,
		t.Category,
		t.AccountID,
		nullable(t.AccountToID),
		nullable(t.Symbol),
		t.Quantity,
		t.Price,
		nullable(t.Currency),
		t.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// UpdateTransaction updates an existing transaction.
func (r *TransactionRepository) UpdateTransaction(ctx context.Context, t *model.Transaction) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE "transaction"
		SET date = ?, description = ?, amount = ?, type = ?, category = ?,
		    account_id = ?, account_to_id = ?, symbol = ?, quantity = ?, price = ?, currency = ?
		WHERE id = ?
	`,
		t.Date.Format("2006-01-02"),
		t.Description,
		t.Amount,
		t.Type,
		t.Category,
		t.AccountID,
		nullable(t.AccountToID),
		nullable(t.Symbol),
		t.Quantity,
		t.Price,
		nullable(t.Currency),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

// DeleteTransaction removes a transaction by ID.
func (r *TransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM "transaction" WHERE id = ?`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

// nullable maps the empty string to SQL NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
