// Package news serves financial headlines. The static provider stands in
// for a real news API behind the same interface.
package news

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"portfolio-monitor/models"
)

type Provider interface {
	// List returns up to limit items, optionally filtered to those whose
	// related symbols intersect the given set (case-insensitive).
	List(limit int, symbols []string) []models.NewsItem
}

// StaticProvider holds a fixed article set in provider order.
type StaticProvider struct {
	items []models.NewsItem
}

func NewStaticProvider() *StaticProvider {
	now := time.Now().UTC()
	return &StaticProvider{items: []models.NewsItem{
		{
			ID:             uuid.NewString(),
			Title:          "Apple Reports Record Quarterly Revenue",
			Source:         "Financial Times",
			URL:            "https://example.com/apple-revenue",
			PublishedAt:    now.Add(-3 * time.Hour),
			Summary:        "Apple Inc. reported record quarterly revenue of $91.8 billion, driven by strong iPhone sales.",
			Sentiment:      "positive",
			RelatedSymbols: []string{"AAPL"},
		},
		{
			ID:             uuid.NewString(),
			Title:          "Microsoft Cloud Business Continues to Grow",
			Source:         "Wall Street Journal",
			URL:            "https://example.com/microsoft-cloud",
			PublishedAt:    now.Add(-5 * time.Hour),
			Summary:        "Microsoft's cloud business revenue grew by 25% year over year, exceeding analyst expectations.",
			Sentiment:      "positive",
			RelatedSymbols: []string{"MSFT"},
		},
		{
			ID:             uuid.NewString(),
			Title:          "Tesla Misses Delivery Targets",
			Source:         "Reuters",
			URL:            "https://example.com/tesla-deliveries",
			PublishedAt:    now.Add(-8 * time.Hour),
			Summary:        "Tesla delivered fewer vehicles than expected in the last quarter, citing supply chain issues.",
			Sentiment:      "negative",
			RelatedSymbols: []string{"TSLA"},
		},
		{
			ID:             uuid.NewString(),
			Title:          "Amazon Expands Healthcare Services",
			Source:         "Bloomberg",
			URL:            "https://example.com/amazon-healthcare",
			PublishedAt:    now.Add(-12 * time.Hour),
			Summary:        "Amazon is expanding its healthcare services with new telehealth features.",
			Sentiment:      "positive",
			RelatedSymbols: []string{"AMZN"},
		},
		{
			ID:             uuid.NewString(),
			Title:          "Google Announces New AI Tools for Businesses",
			Source:         "CNBC",
			URL:            "https://example.com/google-ai",
			PublishedAt:    now.Add(-24 * time.Hour),
			Summary:        "Google unveiled new AI tools for businesses at its annual cloud conference.",
			Sentiment:      "positive",
			RelatedSymbols: []string{"GOOGL"},
		},
	}}
}

func (p *StaticProvider) List(limit int, symbols []string) []models.NewsItem {
	items := p.items
	if len(symbols) > 0 {
		wanted := make(map[string]bool, len(symbols))
		for _, s := range symbols {
			wanted[strings.ToUpper(strings.TrimSpace(s))] = true
		}
		filtered := []models.NewsItem{}
		for _, item := range items {
			for _, related := range item.RelatedSymbols {
				if wanted[strings.ToUpper(related)] {
					filtered = append(filtered, item)
					break
				}
			}
		}
		items = filtered
	}

	if limit >= 0 && len(items) > limit {
		items = items[:limit]
	}
	out := make([]models.NewsItem, len(items))
	copy(out, items)
	return out
}
