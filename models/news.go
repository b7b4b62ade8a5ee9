package models

import "time"

type NewsItem struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Source         string    `json:"source"`
	URL            string    `json:"url"`
	PublishedAt    time.Time `json:"published_at"`
	Summary        string    `json:"summary,omitempty"`
	Sentiment      string    `json:"sentiment,omitempty"`
	RelatedSymbols []string  `json:"related_symbols"`
}
