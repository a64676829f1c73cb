// Package ledger is the valuation core: pure functions that turn an
// append-only transaction log into balances, holdings, debt projections and
// a reconstructed net-worth history. Nothing in this package performs I/O or
// holds state between calls; services load data and pass it in.
package ledger

import "log"

// Currency is a closed set of supported currency tags.
type Currency string

const (
	GBP Currency = "GBP"
	USD Currency = "USD"
	EUR Currency = "EUR"
	// GBX is pence sterling (1/100 GBP), used for London-listed securities.
	GBX Currency = "GBX"
)

// ToBase converts a price or amount from its native currency into the base
// currency, given the GBP->USD rate.
//
// Conversion rules:
//   - GBX divides by 100 and is then treated as GBP. It is never FX-adjusted
//     afterwards, even when the base currency is USD.
//   - USD divides by fxRate when the base currency is not USD. A rate of 0
//     (or below) means "unknown" and the value passes through unchanged.
//   - EUR has no tracked cross-rate and passes through unchanged.
//   - The base currency itself is an identity.
//
// An unrecognized tag never fails: it falls through to identity, logged so a
// silently wrong valuation can at least be diagnosed.
func ToBase(nativePrice float64, native Currency, base Currency, fxRate float64) float64 {
	switch native {
	case GBX:
		return nativePrice / 100
	case USD:
		if base != USD && fxRate > 0 {
			return nativePrice / fxRate
		}
		return nativePrice
	case EUR, GBP, base:
		return nativePrice
	default:
		log.Printf("ledger: unknown currency %q, treating as %s", native, base)
		return nativePrice
	}
}
