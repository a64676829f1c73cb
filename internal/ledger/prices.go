package ledger

import "github.com/finledger/networth-backend/internal/model"

// CloseOnOrBefore returns the best available close price for a date:
// the exact date if present, else the most recent earlier date
// (forward-fill over weekends and holidays), else the earliest date in the
// series. ok is false only when the series is empty.
//
// Dates are YYYY-MM-DD strings, so plain string comparison orders them.
func CloseOnOrBefore(points map[string]model.PricePoint, dateStr string) (float64, bool) {
	if p, found := points[dateStr]; found {
		return p.Close, true
	}

	var bestBefore, earliest string
	for d := range points {
		if d < dateStr && d > bestBefore {
			bestBefore = d
		}
		if earliest == "" || d < earliest {
			earliest = d
		}
	}
	if bestBefore != "" {
		return points[bestBefore].Close, true
	}
	if earliest != "" {
		return points[earliest].Close, true
	}
	return 0, false
}

// OpenOn returns the open price for an exact date match only; there is no
// fallback for opens. ok is false when the date is absent or the day has no
// recorded open.
func OpenOn(points map[string]model.PricePoint, dateStr string) (float64, bool) {
	p, found := points[dateStr]
	if !found || p.Open == nil {
		return 0, false
	}
	return *p.Open, true
}
