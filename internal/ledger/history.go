package ledger

import (
	"math"
	"sort"
	"time"

	"github.com/finledger/networth-backend/internal/model"
)

// historyPointBudget caps the number of sampled days per history query.
// Longer ranges are downsampled by an integer stride; the final "today"
// point is always emitted on top of the budget.
const historyPointBudget = 90

// HistoryInput carries everything NetWorthHistory needs, already resolved in
// memory. The engine never fetches data itself.
type HistoryInput struct {
	Accounts     []model.Account
	Debts        []model.Debt
	Transactions []model.Transaction
	Series       map[string]model.PriceSeries
	Quotes       map[string]model.Quote
	Base         Currency
	FXRate       float64
	Today        time.Time // zero means time.Now
}

// NetWorthHistory reconstructs the net-worth trajectory over a named range
// (1W, 1M, 3M, 6M, 1Y, all) as an ascending series of sampled days.
//
// The replay is a single forward sweep: transactions are sorted ascending
// once and a cursor advances as the date cursor does, so multi-year ranges
// stay linear instead of re-filtering the full log per day. Historical
// holdings are valued with close-on-or-before forward-fill from Series; the
// final point is today, recomputed from live quotes via ComputeBalances
// because today has no historical close yet.
//
// All historical points are converted with the current FX rate: no
// historical FX series is tracked, so using the one known rate throughout is
// a documented approximation rather than a silent per-point variation.
func NetWorthHistory(in HistoryInput, rng string) []model.HistoryPoint {
	today := dayOf(in.Today)
	if in.Today.IsZero() {
		today = dayOf(time.Now().UTC())
	}

	days := rangeDays(rng, in.Transactions, today)
	stride := 1
	if days > historyPointBudget {
		stride = int(math.Ceil(float64(days) / historyPointBudget))
	}

	sorted := make([]model.Transaction, len(in.Transactions))
	copy(sorted, in.Transactions)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	assetIDs := make(map[string]bool, len(in.Accounts))
	for _, a := range in.Accounts {
		assetIDs[a.ID] = true
	}

	cash := make(map[string]float64)
	holdings := make(map[string]map[string]model.Holding)
	cursor := 0

	points := make([]model.HistoryPoint, 0, historyPointBudget+1)
	for i := 0; i < days; i += stride {
		date := today.AddDate(0, 0, -(days - 1 - i))
		for cursor < len(sorted) && !dayOf(sorted[cursor].Date).After(date) {
			applyToCursor(sorted[cursor], cash, holdings, assetIDs)
			cursor++
		}
		if date.Equal(today) {
			// Today is appended below from live balances.
			continue
		}
		points = append(points, sampleDay(in, date, cash, holdings))
	}

	return append(points, todayPoint(in, today))
}

// rangeDays maps a named range to a day count. "all" spans from the
// earliest transaction to today, never less than one day. An unknown range
// falls back to a month rather than failing the whole chart.
func rangeDays(rng string, transactions []model.Transaction, today time.Time) int {
	switch rng {
	case model.Range1W:
		return 7
	case model.Range1M:
		return 30
	case model.Range3M:
		return 90
	case model.Range6M:
		return 180
	case model.Range1Y:
		return 365
	case model.RangeAll:
		var earliest time.Time
		for _, tx := range transactions {
			if earliest.IsZero() || tx.Date.Before(earliest) {
				earliest = tx.Date
			}
		}
		if earliest.IsZero() {
			return 1
		}
		days := int(today.Sub(dayOf(earliest)).Hours()/24) + 1
		if days < 1 {
			days = 1
		}
		return days
	default:
		return 30
	}
}

// applyToCursor folds one transaction into the sweep state. Investing rows
// move holdings; everything else moves cash, with inbound transfer legs
// adding their magnitude to asset accounts only (debts never receive the
// transfer-destination adjustment).
func applyToCursor(tx model.Transaction, cash map[string]float64, holdings map[string]map[string]model.Holding, assetIDs map[string]bool) {
	if tx.Type == model.TypeInvesting {
		if tx.Symbol == "" {
			return
		}
		accountHoldings := holdings[tx.AccountID]
		if accountHoldings == nil {
			accountHoldings = make(map[string]model.Holding)
			holdings[tx.AccountID] = accountHoldings
		}
		accountHoldings[tx.Symbol] = applyInvesting(accountHoldings[tx.Symbol], tx)
		return
	}

	cash[tx.AccountID] += tx.Amount
	if tx.AccountToID != "" && assetIDs[tx.AccountToID] {
		cash[tx.AccountToID] += absFloat(tx.Amount)
	}
}

// sampleDay values the sweep state for one historical date.
func sampleDay(in HistoryInput, date time.Time, cash map[string]float64, holdings map[string]map[string]model.Holding) model.HistoryPoint {
	dateStr := date.Format("2006-01-02")
	point := model.HistoryPoint{Date: dateStr}

	for _, account := range in.Accounts {
		switch account.Type {
		case model.AccountInvestment:
			point.Investing += valueHoldingsOn(in, holdings[account.ID], dateStr)
		case model.AccountSavings:
			point.Savings += account.StartingValue + cash[account.ID]
		default:
			point.Checking += account.StartingValue + cash[account.ID]
		}
	}
	for _, debt := range in.Debts {
		point.Debts += debt.StartingValue + cash[debt.ID]
	}

	point.Assets = point.Checking + point.Savings + point.Investing
	point.NetWorth = point.Assets - point.Debts
	return point
}

// valueHoldingsOn prices one account's holdings on a historical date.
// Symbols with no series at all fall back to the live quote, so a gap in
// price data degrades that symbol's history to a flat line instead of
// blanking the chart.
func valueHoldingsOn(in HistoryInput, accountHoldings map[string]model.Holding, dateStr string) float64 {
	var value float64
	for symbol, holding := range accountHoldings {
		var price float64
		var found bool
		if series, ok := in.Series[symbol]; ok {
			price, found = CloseOnOrBefore(series.Points, dateStr)
		}
		currency := Currency(holding.Currency)
		if currency == "" {
			currency = Currency(in.Quotes[symbol].Currency)
		}
		if !found {
			quote, ok := in.Quotes[symbol]
			if !ok {
				continue
			}
			price = quote.Price
		}
		value += holding.Quantity * ToBase(price, currency, in.Base, in.FXRate)
	}
	return value
}

// todayPoint computes the final point from current balances rather than
// historical closes.
func todayPoint(in HistoryInput, today time.Time) model.HistoryPoint {
	balances := ComputeBalances(in.Accounts, in.Debts, in.Transactions, in.Quotes, in.Base, in.FXRate)

	point := model.HistoryPoint{Date: today.Format("2006-01-02")}
	for _, account := range in.Accounts {
		switch account.Type {
		case model.AccountInvestment:
			point.Investing += balances[account.ID]
		case model.AccountSavings:
			point.Savings += balances[account.ID]
		default:
			point.Checking += balances[account.ID]
		}
	}
	for _, debt := range in.Debts {
		point.Debts += balances[debt.ID]
	}

	point.Assets = point.Checking + point.Savings + point.Investing
	point.NetWorth = point.Assets - point.Debts
	return point
}

// dayOf truncates a timestamp to midnight UTC so date comparisons ignore
// time-of-day components.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
