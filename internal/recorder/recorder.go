package recorder

import "time"

// CycleRecord summarizes one completed poll cycle.
type CycleRecord struct {
	RunID     string
	FearGreed int
	Coins     int
	Duration  time.Duration
}

// SignalRecord holds one coin's evaluation within a cycle.
type SignalRecord struct {
	RunID     string
	Coin      string
	Price     float64
	Change24h float64
	RSI1m     float64
	RSI5m     float64
	RSI15m    float64
	RSI1h     float64
	Score     int
	Level     string
	Prob      int
	Reasons   string
}

// Recorder persists poll-cycle history for later analysis.
type Recorder interface {
	RecordCycle(rec *CycleRecord) error
	RecordSignal(rec *SignalRecord) error
	Ping() error
	Close() error
}
