package service

import (
	"strings"
	"time"

	"github.com/finledger/networth-backend/internal/ledger"
	"github.com/finledger/networth-backend/internal/model"
)

// ImportService implements the numeric transformation rules applied to
// imported statement rows before they become ledger entries. The file
// parsing and column mapping happen elsewhere; by the time rows reach this
// service they are already typed values, and the output transactions
// carry exactly the same semantics as manually entered ones.
type ImportService struct{}

// NewImportService creates a new ImportService.
func NewImportService() *ImportService {
	return &ImportService{}
}

// ResolveAmountSign normalizes an imported amount's sign to the ledger's
// convention: expenses and charges negative, income and payments positive.
//
// Statements disagree about signs. When sourceSigned is true the row
// already carries a meaningful sign and passes through unchanged; when
// false the magnitude is re-signed from the transaction type.
func (s *ImportService) ResolveAmountSign(amount float64, txType string, sourceSigned bool) float64 {
	if sourceSigned {
		return amount
	}

	magnitude := amount
	if magnitude < 0 {
		magnitude = -magnitude
	}

	switch txType {
	case model.TypeExpense, model.TypeTransfer:
		return -magnitude
	case model.TypeDebtPayment:
		return -magnitude
	default:
		return magnitude
	}
}

// DividendToShares converts a cash dividend into the fractional reinvested
// quantity using the same-day close (with the resolver's usual
// forward-fill). ok is false when no price exists at all, in which case the
// row should be imported as cash income instead of a reinvestment.
func (s *ImportService) DividendToShares(cashAmount float64, date time.Time, points map[string]model.PricePoint) (float64, bool) {
	price, found := ledger.CloseOnOrBefore(points, date.Format("2006-01-02"))
	if !found || price <= 0 {
		return 0, false
	}
	return cashAmount / price, true
}

// BuildDividendTransaction turns a cash dividend row into an ordinary
// investing transaction that adds fractional quantity and the reinvested
// cash to the cost basis, exactly like a manual dividend entry. That keeps
// the holding's average cost consistent with no downstream special case.
func (s *ImportService) BuildDividendTransaction(accountID, symbol string, cashAmount float64, date time.Time, shares float64) model.Transaction {
	return model.Transaction{
		Date:        date,
		Description: "Dividend reinvestment " + strings.ToUpper(symbol),
		Amount:      -absAmount(cashAmount),
		Type:        model.TypeInvesting,
		Category:    "Dividend",
		AccountID:   accountID,
		Symbol:      symbol,
		Quantity:    shares,
	}
}

func absAmount(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
