package ledger

import (
	"time"

	"github.com/finledger/networth-backend/internal/model"
)

// ReconstructHoldings replays investing transactions for one account into a
// per-symbol holdings map. A zero asOf means "no cutoff"; otherwise only
// transactions dated on or before asOf are applied.
//
// Cost basis follows the average-cost method: buys and reinvested dividends
// add |amount| to the total cost, sells remove cost proportionally to the
// shares sold (cost-per-share at time of sale times quantity sold). A sell
// that drives the quantity to or below zero leaves whatever residual the
// proportional subtraction yields; floating-point drift there is tolerated
// rather than corrected.
//
// Rows without a symbol are skipped: one malformed transaction must not
// abort the whole reconstruction.
func ReconstructHoldings(transactions []model.Transaction, accountID string, asOf time.Time) map[string]model.Holding {
	holdings := make(map[string]model.Holding)

	for _, tx := range transactions {
		if tx.Type != model.TypeInvesting || tx.AccountID != accountID || tx.Symbol == "" {
			continue
		}
		if !asOf.IsZero() && tx.Date.After(asOf) {
			continue
		}

		holdings[tx.Symbol] = applyInvesting(holdings[tx.Symbol], tx)
	}

	return holdings
}

// applyInvesting applies one investing transaction to a holding.
// Dividend reinvestments are ordinary non-sell rows: they add fractional
// quantity and the reinvested cash value to the cost, which keeps the
// average cost consistent without special-casing dividends downstream.
func applyInvesting(h model.Holding, tx model.Transaction) model.Holding {
	h.Symbol = tx.Symbol
	if tx.Currency != "" {
		h.Currency = tx.Currency
	}

	if tx.Category == model.CategorySell {
		if h.Quantity > 0 {
			costPerShare := h.TotalCost / h.Quantity
			h.TotalCost -= absFloat(tx.Quantity) * costPerShare
			// Sell quantities are recorded negative, so this shrinks the position.
			h.Quantity += tx.Quantity
		}
	} else {
		h.Quantity += tx.Quantity
		h.TotalCost += absFloat(tx.Amount)
	}

	return h
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
