package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/finledger/networth-backend/internal/yahoo"
)

// StubQuote describes what the stub price server should return for a symbol.
// Closes are daily, most recent last, ending on the given end date.
type StubQuote struct {
	Price    float64
	Currency string
	Closes   []float64
	End      time.Time
}

// NewStubFinanceClient starts a local HTTP server that answers chart API
// requests with canned data and returns a client pointed at it. Unknown
// symbols get a chart-level "Not Found" error, mirroring the real API.
//
// Example usage:
//
//	client := testutil.NewStubFinanceClient(t, map[string]testutil.StubQuote{
//	    "VWRL.L": {Price: 105.4, Currency: "GBp", Closes: []float64{104, 105.4}, End: time.Now()},
//	})
func NewStubFinanceClient(t *testing.T, quotes map[string]StubQuote) *yahoo.FinanceClient {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		symbol := strings.TrimPrefix(r.URL.Path, "/v8/finance/chart/")

		q, ok := quotes[symbol]
		if !ok {
			writeChartJSON(t, w, map[string]any{
				"chart": map[string]any{
					"result": nil,
					"error":  map[string]any{"code": "Not Found", "description": "No data found, symbol may be delisted"},
				},
			})
			return
		}

		end := q.End
		if end.IsZero() {
			end = time.Now().UTC()
		}

		timestamps := make([]int64, len(q.Closes))
		closes := make([]*float64, len(q.Closes))
		for i := range q.Closes {
			day := end.AddDate(0, 0, i-len(q.Closes)+1)
			timestamps[i] = day.Unix()
			c := q.Closes[i]
			closes[i] = &c
		}

		writeChartJSON(t, w, map[string]any{
			"chart": map[string]any{
				"result": []map[string]any{{
					"meta": map[string]any{
						"symbol":             symbol,
						"currency":           q.Currency,
						"regularMarketPrice": q.Price,
					},
					"timestamp": timestamps,
					"indicators": map[string]any{
						"quote": []map[string]any{{
							"open":  closes,
							"close": closes,
						}},
					},
				}},
				"error": nil,
			},
		})
	}))
	t.Cleanup(server.Close)

	return yahoo.NewFinanceClientWithBaseURL(server.URL)
}

func writeChartJSON(t *testing.T, w http.ResponseWriter, payload any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		t.Errorf("Failed to encode stub response: %v", err)
	}
}
