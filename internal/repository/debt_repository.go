package repository

import (
	"context"
	"database/sql"
	"fmt"

	apperrors "github.com/finledger/networth-backend/internal/errors"
	"github.com/finledger/networth-backend/internal/model"
)

// DebtRepository provides data access methods for the debt table.
type DebtRepository struct {
	db *sql.DB
}

// NewDebtRepository creates a new DebtRepository with the provided database connection.
func NewDebtRepository(db *sql.DB) *DebtRepository {
	return &DebtRepository{db: db}
}

const debtColumns = `id, name, debt_limit, apr, min_payment_type, min_payment_value, starting_value, promo_apr, promo_end_date`

// GetDebts retrieves all debts, ordered by name.
func (r *DebtRepository) GetDebts() ([]model.Debt, error) {
	rows, err := r.db.Query(`SELECT ` + debtColumns + ` FROM debt ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query debt table: %w", err)
	}
	defer rows.Close()

	debts := []model.Debt{}
	for rows.Next() {
		d, err := scanDebt(rows.Scan)
		if err != nil {
			return nil, err
		}
		debts = append(debts, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating debt table: %w", err)
	}

	return debts, nil
}

// GetDebt retrieves a single debt by ID.
func (r *DebtRepository) GetDebt(debtID string) (model.Debt, error) {
	row := r.db.QueryRow(`SELECT `+debtColumns+` FROM debt WHERE id = ?`, debtID)
	d, err := scanDebt(row.Scan)
	if err == sql.ErrNoRows {
		return model.Debt{}, apperrors.ErrDebtNotFound
	}
	if err != nil {
		return model.Debt{}, err
	}
	return d, nil
}

// scanDebt scans one debt row, reassembling the optional promo pair.
// A promo exists only when both promo columns are present.
func scanDebt(scan func(dest ...any) error) (model.Debt, error) {
	var d model.Debt
	var promoAPR sql.NullFloat64
	var promoEndStr sql.NullString

	err := scan(
		&d.ID,
		&d.Name,
		&d.Limit,
		&d.APR,
		&d.MinPaymentType,
		&d.MinPaymentValue,
		&d.StartingValue,
		&promoAPR,
		&promoEndStr,
	)
	if err == sql.ErrNoRows {
		return model.Debt{}, err
	}
	if err != nil {
		return model.Debt{}, fmt.Errorf("failed to scan debt table results: %w", err)
	}

	if promoAPR.Valid && promoEndStr.Valid {
		endDate, err := ParseTime(promoEndStr.String)
		if err != nil {
			return model.Debt{}, fmt.Errorf("failed to parse promo end date: %w", err)
		}
		d.Promo = &model.Promo{PromoAPR: promoAPR.Float64, PromoEndDate: endDate}
	}

	return d, nil
}

// InsertDebt persists a new debt.
func (r *DebtRepository) InsertDebt(ctx context.Context, d *model.Debt) error {
	promoAPR, promoEnd := promoColumns(d)
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO debt (`+debtColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, d.ID, d.Name, d.Limit, d.APR, d.MinPaymentType, d.MinPaymentValue, d.StartingValue, promoAPR, promoEnd)
	if err != nil {
		return fmt.Errorf("failed to insert debt: %w", err)
	}
	return nil
}

// UpdateDebt updates an existing debt.
func (r *DebtRepository) UpdateDebt(ctx context.Context, d *model.Debt) error {
	promoAPR, promoEnd := promoColumns(d)
	result, err := r.db.ExecContext(ctx, `
		UPDATE debt
		SET name = ?, debt_limit = ?, apr = ?, min_payment_type = ?,
		    min_payment_value = ?, starting_value = ?, promo_apr = ?, promo_end_date = ?
		WHERE id = ?
	`, d.Name, d.Limit, d.APR, d.MinPaymentType, d.MinPaymentValue, d.StartingValue, promoAPR, promoEnd, d.ID)
	if err != nil {
		return fmt.Errorf("failed to update debt: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrDebtNotFound
	}
	return nil
}

// DeleteDebt removes a debt by ID.
func (r *DebtRepository) DeleteDebt(ctx context.Context, debtID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM debt WHERE id = ?`, debtID)
	if err != nil {
		return fmt.Errorf("failed to delete debt: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrDebtNotFound
	}
	return nil
}

func promoColumns(d *model.Debt) (any, any) {
	if d.Promo == nil {
		return nil, nil
	}
	return d.Promo.PromoAPR, d.Promo.PromoEndDate.Format("2006-01-02")
}
