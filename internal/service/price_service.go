package service

import (
	"context"
	"hash/fnv"
	"log"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/finledger/networth-backend/internal/model"
	"github.com/finledger/networth-backend/internal/repository"
	"github.com/finledger/networth-backend/internal/yahoo"
)

// quoteCacheTTL bounds how long live quotes are reused between calls.
// Within the window, repeated balance queries see identical prices, which
// keeps concurrent UI panels agreeing with each other.
const quoteCacheTTL = 5 * time.Minute

// syntheticDays is the span of generated history for symbols with no real
// price series.
const syntheticDays = 365

// PriceService supplies current quotes and historical series to the
// valuation services. It is the one component allowed to do I/O for price
// data; the ledger package only ever sees resolved in-memory structures.
type PriceService struct {
	priceRepo       *repository.PriceRepository
	transactionRepo *repository.TransactionRepository
	client          *yahoo.FinanceClient

	mu            sync.Mutex
	cachedQuotes  map[string]model.Quote
	quoteCachedAt time.Time
}

// NewPriceService creates a new PriceService with the provided dependencies.
func NewPriceService(
	priceRepo *repository.PriceRepository,
	transactionRepo *repository.TransactionRepository,
	client *yahoo.FinanceClient,
) *PriceService {
	return &PriceService{
		priceRepo:       priceRepo,
		transactionRepo: transactionRepo,
		client:          client,
	}
}

// CurrentQuotes returns a live quote per symbol. Quotes are fetched
// concurrently and cached briefly; a symbol whose fetch fails falls back to
// its most recent stored close so one flaky ticker does not blank the
// balances page.
func (s *PriceService) CurrentQuotes(ctx context.Context, symbols []string) (map[string]model.Quote, error) {
	if len(symbols) == 0 {
		return map[string]model.Quote{}, nil
	}

	s.mu.Lock()
	if s.cachedQuotes != nil && time.Since(s.quoteCachedAt) < quoteCacheTTL && coversAll(s.cachedQuotes, symbols) {
		cached := s.cachedQuotes
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	quotes := make(map[string]model.Quote, len(symbols))
	var quotesMu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, symbol := range symbols {
		g.Go(func() error {
			quote, err := s.client.GetQuote(ctx, symbol)
			if err != nil {
				log.Printf("price refresh: quote for %s failed: %v", symbol, err)
				return nil // fall back below, never fail the whole set
			}
			quotesMu.Lock()
			quotes[symbol] = quote
			quotesMu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Fall back to the latest stored close for anything the API missed.
	var missing []string
	for _, symbol := range symbols {
		if _, found := quotes[symbol]; !found {
			missing = append(missing, symbol)
		}
	}
	if len(missing) > 0 {
		stored, err := s.priceRepo.GetSeries(missing)
		if err != nil {
			return nil, err
		}
		today := time.Now().UTC().Format("2006-01-02")
		for symbol, series := range stored {
			if price, found := latestClose(series.Points, today); found {
				quotes[symbol] = model.Quote{Symbol: symbol, Price: price}
			}
		}
	}

	s.mu.Lock()
	s.cachedQuotes = quotes
	s.quoteCachedAt = time.Now()
	s.mu.Unlock()

	return quotes, nil
}

// GetSeries returns a historical series per symbol, substituting a synthetic
// random walk around the current price for symbols with no stored history.
// Synthetic series are flagged and persisted so later real data overwrites
// them in place.
func (s *PriceService) GetSeries(ctx context.Context, symbols []string, quotes map[string]model.Quote) (map[string]model.PriceSeries, error) {
	series, err := s.priceRepo.GetSeries(symbols)
	if err != nil {
		return nil, err
	}

	today := time.Now().UTC()
	for _, symbol := range symbols {
		if existing, found := series[symbol]; found && len(existing.Points) > 0 {
			continue
		}
		quote, found := quotes[symbol]
		if !found || quote.Price <= 0 {
			// No anchor price at all; the history engine will skip the
			// symbol through its quote fallback.
			continue
		}

		synthetic := syntheticSeries(symbol, quote.Price, today)
		series[symbol] = synthetic

		points := make([]model.PricePoint, 0, len(synthetic.Points))
		for _, p := range synthetic.Points {
			points = append(points, p)
		}
		if err := s.priceRepo.UpsertPoints(ctx, symbol, points, true); err != nil {
			return nil, err
		}
	}

	return series, nil
}

// RefreshAll fetches a year of daily bars for every symbol in the ledger
// and stores them. Per-symbol failures are logged and skipped: a dead
// ticker must not abort the nightly refresh for everything else.
func (s *PriceService) RefreshAll(ctx context.Context) error {
	symbols, err := s.transactionRepo.GetSymbols()
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, symbol := range symbols {
		g.Go(func() error {
			series, err := s.client.GetDailySeries(ctx, symbol)
			if err != nil {
				log.Printf("price refresh: series for %s failed: %v", symbol, err)
				return nil
			}
			points := make([]model.PricePoint, 0, len(series.Points))
			for _, p := range series.Points {
				points = append(points, p)
			}
			return s.priceRepo.UpsertPoints(ctx, symbol, points, false)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Stored data changed; drop the quote cache so the next balance query
	// sees it.
	s.mu.Lock()
	s.cachedQuotes = nil
	s.mu.Unlock()

	log.Printf("price refresh: completed for %d symbols", len(symbols))
	return nil
}

// syntheticSeries builds a deterministic random walk ending at the anchor
// price today. The seed derives from the symbol so repeated calls, and
// therefore repeated chart renders, agree with each other.
func syntheticSeries(symbol string, anchor float64, today time.Time) model.PriceSeries {
	h := fnv.New64a()
	h.Write([]byte(symbol))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	points := make(map[string]model.PricePoint, syntheticDays)
	price := anchor
	for i := 0; i < syntheticDays; i++ {
		date := today.AddDate(0, 0, -i).Format("2006-01-02")
		points[date] = model.PricePoint{Date: date, Close: price}
		// Walk backwards in time with small daily steps.
		price /= 1 + (rng.Float64()-0.5)*0.02
	}

	return model.PriceSeries{Symbol: symbol, Points: points, Synthetic: true}
}

// latestClose returns the most recent close on or before today.
func latestClose(points map[string]model.PricePoint, today string) (float64, bool) {
	var best string
	for date := range points {
		if date <= today && date > best {
			best = date
		}
	}
	if best == "" {
		return 0, false
	}
	return points[best].Close, true
}

// coversAll reports whether the cached quote set includes every symbol.
func coversAll(quotes map[string]model.Quote, symbols []string) bool {
	for _, symbol := range symbols {
		if _, found := quotes[symbol]; !found {
			return false
		}
	}
	return true
}
