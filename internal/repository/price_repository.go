package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/finledger/networth-backend/internal/model"
)

// PriceRepository provides data access methods for the symbol_price table.
type PriceRepository struct {
	db *sql.DB
}

// NewPriceRepository creates a new PriceRepository with the provided database connection.
func NewPriceRepository(db *sql.DB) *PriceRepository {
	return &PriceRepository{db: db}
}

// GetSeries retrieves the historical series for the given symbols, keyed by
// symbol then date string. Symbols with no stored prices are simply absent
// from the result; the price service decides whether to synthesize them.
func (r *PriceRepository) GetSeries(symbols []string) (map[string]model.PriceSeries, error) {
	series := make(map[string]model.PriceSeries, len(symbols))
	if len(symbols) == 0 {
		return series, nil
	}

	placeholders := ""
	args := make([]any, len(symbols))
	for i, s := range symbols {
		if i > 0 {
			placeholders += ","
		}
		placeholders += "?"
		args[i] = s
	}

	rows, err := r.db.Query(`
		SELECT symbol, date, open, close, synthetic
		FROM symbol_price
		WHERE symbol IN (`+placeholders+`)
		ORDER BY date ASC
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query symbol_price table: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var symbol, dateStr string
		var open sql.NullFloat64
		var closePrice float64
		var synthetic bool

		if err := rows.Scan(&symbol, &dateStr, &open, &closePrice, &synthetic); err != nil {
			return nil, fmt.Errorf("failed to scan symbol_price results: %w", err)
		}

		s, exists := series[symbol]
		if !exists {
			s = model.PriceSeries{Symbol: symbol, Points: make(map[string]model.PricePoint)}
		}
		point := model.PricePoint{Date: dateStr, Close: closePrice}
		if open.Valid {
			v := open.Float64
			point.Open = &v
		}
		s.Points[dateStr] = point
		// A series is synthetic only if every stored point is.
		if len(s.Points) == 1 {
			s.Synthetic = synthetic
		} else {
			s.Synthetic = s.Synthetic && synthetic
		}
		series[symbol] = s
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating symbol_price table: %w", err)
	}

	return series, nil
}

// UpsertPoints writes price points for a symbol, replacing any stored value
// for the same date. Real data overwrites synthetic data but keeps the same
// conflict path.
func (r *PriceRepository) UpsertPoints(ctx context.Context, symbol string, points []model.PricePoint, synthetic bool) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin price upsert: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO symbol_price (id, symbol, date, open, close, synthetic)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (symbol, date) DO UPDATE SET open = excluded.open, close = excluded.close, synthetic = excluded.synthetic
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare price upsert: %w", err)
	}
	defer stmt.Close()

	for _, p := range points {
		var open any
		if p.Open != nil {
			open = *p.Open
		}
		if _, err := stmt.ExecContext(ctx, uuid.New().String(), symbol, p.Date, open, p.Close, synthetic); err != nil {
			return fmt.Errorf("failed to upsert price for %s %s: %w", symbol, p.Date, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit price upsert: %w", err)
	}
	return nil
}
