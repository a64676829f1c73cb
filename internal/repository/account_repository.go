package repository

import (
	"context"
	"database/sql"
	"fmt"

	apperrors "github.com/finledger/networth-backend/internal/errors"
	"github.com/finledger/networth-backend/internal/model"
)

// AccountRepository provides data access methods for the account table.
type AccountRepository struct {
	db *sql.DB
}

// NewAccountRepository creates a new AccountRepository with the provided database connection.
func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// GetAccounts retrieves all accounts, ordered by name.
func (r *AccountRepository) GetAccounts() ([]model.Account, error) {
	rows, err := r.db.Query(`
		SELECT id, name, type, currency, starting_value
		FROM account
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query account table: %w", err)
	}
	defer rows.Close()

	accounts := []model.Account{}
	for rows.Next() {
		var a model.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.Type, &a.Currency, &a.StartingValue); err != nil {
			return nil, fmt.Errorf("failed to scan account table results: %w", err)
		}
		accounts = append(accounts, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account table: %w", err)
	}

	return accounts, nil
}

// GetAccount retrieves a single account by ID.
func (r *AccountRepository) GetAccount(accountID string) (model.Account, error) {
	var a model.Account
	err := r.db.QueryRow(`
		SELECT id, name, type, currency, starting_value
		FROM account
		WHERE id = ?
	`, accountID).Scan(&a.ID, &a.Name, &a.Type, &a.Currency, &a.StartingValue)
	if err == sql.ErrNoRows {
		return model.Account{}, apperrors.ErrAccountNotFound
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to query account: %w", err)
	}
	return a, nil
}

// InsertAccount persists a new account.
func (r *AccountRepository) InsertAccount(ctx context.Context, a *model.Account) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO account (id, name, type, currency, starting_value)
		VALUES (?, ?, ?, ?, ?)
	`, a.ID, a.Name, a.Type, a.Currency, a.StartingValue)
	if err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}
	return nil
}

// UpdateAccount updates an existing account.
func (r *AccountRepository) UpdateAccount(ctx context.Context, a *model.Account) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE account SET name = ?, type = ?, currency = ?, starting_value = ?
		WHERE id = ?
	`, a.Name, a.Type, a.Currency, a.StartingValue, a.ID)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrAccountNotFound
	}
	return nil
}

// DeleteAccount removes an account by ID.
func (r *AccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM account WHERE id = ?`, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrAccountNotFound
	}
	return nil
}
