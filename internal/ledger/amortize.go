package ledger

import (
	"math"
	"time"

	"github.com/finledger/networth-backend/internal/model"
)

// MinPayment computes the minimum monthly payment for a debt balance.
// Percentage payments are value% of the balance; fixed payments are the
// value itself regardless of balance.
func MinPayment(balance float64, paymentType string, value float64) float64 {
	if paymentType == model.MinPaymentPercentage {
		return balance * value / 100
	}
	return value
}

// MonthlyInterest is one month of interest on a balance at the given APR.
func MonthlyInterest(balance, apr float64) float64 {
	return balance * apr / 100 / 12
}

// PayoffMonths computes how many monthly payments are needed to clear a
// balance at the given APR, using the standard amortization inversion.
//
// ok is false when the horizon is undefined: no positive payment or balance,
// or a payment that does not cover the first month's interest (the balance
// never shrinks and must be surfaced to the user as "indefinite").
func PayoffMonths(balance, monthlyPayment, apr float64) (months int, ok bool) {
	if monthlyPayment <= 0 || balance <= 0 {
		return 0, false
	}
	if apr == 0 {
		return int(math.Ceil(balance / monthlyPayment)), true
	}
	r := apr / 100 / 12
	interestThisMonth := balance * r
	if monthlyPayment <= interestThisMonth {
		return 0, false
	}
	n := math.Log(monthlyPayment/(monthlyPayment-interestThisMonth)) / math.Log(1+r)
	return int(math.Ceil(n)), true
}

// MonthsBetween returns the calendar-month difference from one date to a
// later one. Negative results (to before from) are returned as-is so callers
// can clamp.
func MonthsBetween(from, to time.Time) int {
	years := to.Year() - from.Year()
	months := int(to.Month()) - int(from.Month())
	return years*12 + months
}

// ProjectDebt computes the payoff outlook for a debt at the given balance.
//
// While a promotional window is active (now before the promo end date), the
// projection uses the promo APR and the minimum payment derived from the
// current balance, never a blend of promo and standard rates. The promo
// shortfall is the balance that will remain when the promo expires if only
// minimum payments are made in the months left.
func ProjectDebt(debt model.Debt, balance float64, now time.Time) model.DebtProjection {
	activeAPR := debt.APR
	promoActive := debt.Promo != nil && now.Before(debt.Promo.PromoEndDate)
	if promoActive {
		activeAPR = debt.Promo.PromoAPR
	}

	minPay := MinPayment(balance, debt.MinPaymentType, debt.MinPaymentValue)
	months, ok := PayoffMonths(balance, minPay, activeAPR)

	projection := model.DebtProjection{
		DebtID:          debt.ID,
		Balance:         balance,
		ActiveAPR:       activeAPR,
		MinPayment:      minPay,
		MonthlyInterest: MonthlyInterest(balance, activeAPR),
		PayoffMonths:    months,
		Indefinite:      !ok,
		PromoActive:     promoActive,
	}

	if promoActive {
		monthsLeft := MonthsBetween(now, debt.Promo.PromoEndDate)
		if monthsLeft < 1 {
			monthsLeft = 1
		}
		projection.PromoMonthsLeft = monthsLeft
		projection.PromoShortfall = math.Max(0, balance-minPay*float64(monthsLeft))
	}

	return projection
}
