// Package market serves quotes. The only implementation here is a stub that
// stands in for a real market-data feed; routes depend on the Provider
// interface so a real one can be dropped in without touching them.
package market

import (
	"context"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"portfolio-monitor/models"
)

type Provider interface {
	Quote(ctx context.Context, symbol string) (models.MarketData, error)
	Watchlist(ctx context.Context, symbols []string) ([]models.MarketData, error)
}

// fixedQuote is the static part of a known symbol's quote.
type fixedQuote struct {
	price         float64
	change        float64
	changePercent float64
	volume        int64
	marketCap     float64
}

var fixedQuotes = map[string]fixedQuote{
	"AAPL":  {price: 175.50, change: 2.30, changePercent: 1.32, volume: 65432100, marketCap: 2850000000000},
	"MSFT":  {price: 380.20, change: -1.50, changePercent: -0.39, volume: 25631400, marketCap: 2750000000000},
	"GOOGL": {price: 142.75, change: 0.85, changePercent: 0.60, volume: 18754200, marketCap: 1850000000000},
	"AMZN":  {price: 180.30, change: 3.20, changePercent: 1.80, volume: 32541600, marketCap: 1950000000000},
	"TSLA":  {price: 248.50, change: -5.60, changePercent: -2.20, volume: 85321400, marketCap: 750000000000},
}

// MockProvider returns the fixed table for known symbols and bounded random
// figures for everything else. Unknown-symbol quotes are deliberately not
// reproducible across calls; tests seed the source and assert on ranges.
type MockProvider struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewMockProvider(rng *rand.Rand) *MockProvider {
	return &MockProvider{rng: rng}
}

func (p *MockProvider) Quote(_ context.Context, symbol string) (models.MarketData, error) {
	symbol = strings.ToUpper(symbol)
	now := time.Now().UTC()

	if q, ok := fixedQuotes[symbol]; ok {
		return models.MarketData{
			Symbol:        symbol,
			Price:         q.price,
			Change:        q.change,
			ChangePercent: q.changePercent,
			Volume:        q.volume,
			MarketCap:     q.marketCap,
			DataTimestamp: now,
		}, nil
	}

	p.mu.Lock()
	price := round2(10 + p.rng.Float64()*490)
	change := round2(-10 + p.rng.Float64()*20)
	volume := 100000 + p.rng.Int63n(9900001)
	capMultiplier := 1000000 + p.rng.Int63n(999000001)
	p.mu.Unlock()

	return models.MarketData{
		Symbol:        symbol,
		Price:         price,
		Change:        change,
		ChangePercent: round2(change / price * 100),
		Volume:        volume,
		MarketCap:     price * float64(capMultiplier),
		DataTimestamp: now,
	}, nil
}

// Watchlist quotes each symbol in input order, trimming surrounding
// whitespace from the comma-split entries.
func (p *MockProvider) Watchlist(ctx context.Context, symbols []string) ([]models.MarketData, error) {
	results := make([]models.MarketData, 0, len(symbols))
	for _, symbol := range symbols {
		data, err := p.Quote(ctx, strings.TrimSpace(symbol))
		if err != nil {
			return nil, err
		}
		results = append(results, data)
	}
	return results, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
