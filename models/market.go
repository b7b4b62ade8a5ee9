package models

import "time"

// MarketData is a point-in-time quote. It is never persisted.
type MarketData struct {
	Symbol        string    `json:"symbol"`
	Price         float64   `json:"price"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"change_percent"`
	Volume        int64     `json:"volume"`
	MarketCap     float64   `json:"market_cap"`
	DataTimestamp time.Time `json:"data_timestamp"`
}
