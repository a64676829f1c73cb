package ledger

import (
	"time"

	"github.com/finledger/networth-backend/internal/model"
)

// ComputeBalances derives the current balance of every account and debt from
// the transaction log, live quotes and the FX rate. The result is a pure
// function of its arguments: identical inputs produce identical output, and
// no input is mutated.
//
// Balance rules:
//   - Investment accounts are marked to market: the sum over reconstructed
//     holdings of quantity times the quote price converted to the base
//     currency. A symbol with no quote contributes nothing.
//   - Other asset accounts are startingValue plus every signed non-investing
//     amount posted to them, plus the absolute value of inbound transfer
//     legs (transfers are a signed outflow on the source, so the destination
//     adds the magnitude rather than double-counting the sign).
//   - Debts are startingValue plus signed amounts posted to them (charges
//     positive, payments negative). The inbound-transfer rule does not apply
//     to debts.
func ComputeBalances(
	accounts []model.Account,
	debts []model.Debt,
	transactions []model.Transaction,
	quotes map[string]model.Quote,
	base Currency,
	fxRate float64,
) map[string]float64 {
	balances := make(map[string]float64, len(accounts)+len(debts))

	for _, account := range accounts {
		if account.Type == model.AccountInvestment {
			balances[account.ID] = investmentValue(transactions, account.ID, quotes, base, fxRate)
			continue
		}

		balance := account.StartingValue
		for _, tx := range transactions {
			if tx.Type != model.TypeInvesting && tx.AccountID == account.ID {
				balance += tx.Amount
			}
			if tx.AccountToID == account.ID {
				balance += absFloat(tx.Amount)
			}
		}
		balances[account.ID] = balance
	}

	for _, debt := range debts {
		balance := debt.StartingValue
		for _, tx := range transactions {
			if tx.AccountID == debt.ID {
				balance += tx.Amount
			}
		}
		balances[debt.ID] = balance
	}

	return balances
}

// investmentValue marks an investment account to market using live quotes.
func investmentValue(transactions []model.Transaction, accountID string, quotes map[string]model.Quote, base Currency, fxRate float64) float64 {
	var value float64
	for symbol, holding := range ReconstructHoldings(transactions, accountID, time.Time{}) {
		quote, found := quotes[symbol]
		if !found {
			continue
		}
		currency := Currency(holding.Currency)
		if currency == "" {
			currency = Currency(quote.Currency)
		}
		value += holding.Quantity * ToBase(quote.Price, currency, base, fxRate)
	}
	return value
}
