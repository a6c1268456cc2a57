package model

import "time"

// Quote is a single market observation for one coin.
type Quote struct {
	Symbol    string  `json:"symbol"`
	Price     float64 `json:"price"`
	Change24h float64 `json:"change_24h"`
	Volume    float64 `json:"volume"`
}

// Sample is one point in a rolling time series.
type Sample struct {
	Time   time.Time `json:"time"`
	Price  float64   `json:"price"`
	Volume float64   `json:"volume,omitempty"`
}

// CoinSeries holds copies of one coin's price series per timeframe
// plus the 1m volumes, ready for indicator computation.
type CoinSeries struct {
	Prices1m  []float64
	Prices5m  []float64
	Prices15m []float64
	Prices1h  []float64
	Volumes1m []float64
}
