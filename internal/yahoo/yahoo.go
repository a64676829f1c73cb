// Package yahoo is a thin client for the Yahoo Finance chart API, used as
// the price-data collaborator: it supplies per-symbol historical daily
// series and current quotes. Everything downstream of this package works on
// already-resolved in-memory data.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/finledger/networth-backend/internal/model"
)

// FinanceClient provides methods for fetching financial data from the Yahoo
// Finance API.
type FinanceClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewFinanceClient creates a new Yahoo Finance client with default HTTP settings.
func NewFinanceClient() *FinanceClient {
	return &FinanceClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    "https://query1.finance.yahoo.com",
	}
}

// NewFinanceClientWithBaseURL creates a client against a custom endpoint.
// Used by tests to point the client at a local stub server.
func NewFinanceClientWithBaseURL(baseURL string) *FinanceClient {
	c := NewFinanceClient()
	c.baseURL = baseURL
	return c
}

// GetDailySeries fetches up to a year of daily bars for a symbol and returns
// them as a date-keyed series. Days where the exchange reported no close are
// dropped; gaps are expected and handled by the resolver's forward-fill.
func (c *FinanceClient) GetDailySeries(ctx context.Context, symbol string) (model.PriceSeries, error) {
	url := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=1y", c.baseURL, symbol)
	result, err := c.query(ctx, url)
	if err != nil {
		return model.PriceSeries{}, err
	}

	if len(result.Timestamp) == 0 || len(result.Indicators.Quote) == 0 {
		return model.PriceSeries{}, fmt.Errorf("no price data returned for %s", symbol)
	}
	quote := result.Indicators.Quote[0]
	if len(quote.Close) != len(result.Timestamp) {
		return model.PriceSeries{}, fmt.Errorf("mismatched data lengths for %s", symbol)
	}

	points := make(map[string]model.PricePoint, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if quote.Close[i] == nil {
			continue
		}
		date := time.Unix(ts, 0).UTC().Format("2006-01-02")
		point := model.PricePoint{Date: date, Close: *quote.Close[i]}
		if i < len(quote.Open) && quote.Open[i] != nil {
			point.Open = quote.Open[i]
		}
		points[date] = point
	}

	return model.PriceSeries{Symbol: symbol, Points: points}, nil
}

// GetQuote fetches the current price and pricing currency for a symbol.
func (c *FinanceClient) GetQuote(ctx context.Context, symbol string) (model.Quote, error) {
	url := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=5d", c.baseURL, symbol)
	result, err := c.query(ctx, url)
	if err != nil {
		return model.Quote{}, err
	}

	if result.Meta.RegularMarketPrice == 0 {
		return model.Quote{}, fmt.Errorf("no current price returned for %s", symbol)
	}

	return model.Quote{
		Symbol:   symbol,
		Price:    result.Meta.RegularMarketPrice,
		Currency: normalizeCurrency(result.Meta.Currency),
	}, nil
}

// query performs the HTTP request and unwraps the chart envelope.
func (c *FinanceClient) query(ctx context.Context, url string) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("failed to query price API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("price API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read price API response: %w", err)
	}

	var response Response
	if err := json.Unmarshal(body, &response); err != nil {
		return Result{}, fmt.Errorf("failed to decode price API response: %w", err)
	}

	if response.Chart.Error != nil {
		return Result{}, fmt.Errorf("price API error: %s", response.Chart.Error.Description)
	}
	if len(response.Chart.Result) == 0 {
		return Result{}, fmt.Errorf("price API returned no results")
	}

	return response.Chart.Result[0], nil
}

// normalizeCurrency maps Yahoo's pence tag onto the engine's GBX.
func normalizeCurrency(currency string) string {
	if currency == "GBp" {
		return "GBX"
	}
	return currency
}
