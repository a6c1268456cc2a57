package history

import (
	"sync"
	"time"

	"CryptoBit/internal/model"
)

// Buffer capacities per timeframe. Oldest samples are silently dropped.
const (
	Cap1m  = 600 // 10 hours of 1m samples
	Cap5m  = 288 // 24 hours
	Cap15m = 200
	Cap1h  = 168 // 7 days
)

// CoinHistory holds the rolling sample buffers for one coin.
type CoinHistory struct {
	Symbol string         `json:"symbol"`
	M1     []model.Sample `json:"m1"`
	M5     []model.Sample `json:"m5"`
	M15    []model.Sample `json:"m15"`
	H1     []model.Sample `json:"h1"`
}

// Store keeps per-coin rolling history with concurrency safety. A single
// poll job appends; HTTP handlers and the strategy read copies.
type Store struct {
	mu    sync.RWMutex
	coins map[string]*CoinHistory
}

// NewStore creates a Store with empty buffers for the given symbols.
func NewStore(symbols []string) *Store {
	coins := make(map[string]*CoinHistory, len(symbols))
	for _, sym := range symbols {
		coins[sym] = &CoinHistory{Symbol: sym}
	}
	return &Store{coins: coins}
}

// Append records a 1m sample for the coin and resamples it into the higher
// timeframes. Resampling is wall-clock keyed: a 5m point is taken when the
// sample minute is a multiple of 5 and differs from the previous 5m point's
// minute, 15m likewise on multiples of 15, and a 1h point when the minute is
// below 5 and the hour differs from the previous 1h point's hour.
func (s *Store) Append(symbol string, at time.Time, price, volume float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.coins[symbol]
	if !ok {
		h = &CoinHistory{Symbol: symbol}
		s.coins[symbol] = h
	}

	h.M1 = trim(append(h.M1, model.Sample{Time: at, Price: price, Volume: volume}), Cap1m)

	minute := at.Minute()
	if len(h.M1) >= 5 && minute%5 == 0 && (len(h.M5) == 0 || h.M5[len(h.M5)-1].Time.Minute() != minute) {
		h.M5 = trim(append(h.M5, model.Sample{Time: at, Price: price}), Cap5m)
	}
	if minute%15 == 0 && (len(h.M15) == 0 || h.M15[len(h.M15)-1].Time.Minute() != minute) {
		h.M15 = trim(append(h.M15, model.Sample{Time: at, Price: price}), Cap15m)
	}
	if minute < 5 && (len(h.H1) == 0 || h.H1[len(h.H1)-1].Time.Hour() != at.Hour()) {
		h.H1 = trim(append(h.H1, model.Sample{Time: at, Price: price}), Cap1h)
	}
}

// Series returns copies of the coin's price series for all four timeframes
// plus the 1m volumes. Unknown symbols yield empty series.
func (s *Store) Series(symbol string) model.CoinSeries {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.coins[symbol]
	if !ok {
		return model.CoinSeries{}
	}
	series := model.CoinSeries{
		Prices1m:  prices(h.M1),
		Prices5m:  prices(h.M5),
		Prices15m: prices(h.M15),
		Prices1h:  prices(h.H1),
		Volumes1m: make([]float64, len(h.M1)),
	}
	for i, smp := range h.M1 {
		series.Volumes1m[i] = smp.Volume
	}
	return series
}

// Len1m returns the number of 1m samples held for the coin.
func (s *Store) Len1m(symbol string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if h, ok := s.coins[symbol]; ok {
		return len(h.M1)
	}
	return 0
}

// Symbols returns the tracked coin symbols.
func (s *Store) Symbols() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	syms := make([]string, 0, len(s.coins))
	for sym := range s.coins {
		syms = append(syms, sym)
	}
	return syms
}

func trim(samples []model.Sample, max int) []model.Sample {
	if len(samples) > max {
		return samples[len(samples)-max:]
	}
	return samples
}

func prices(samples []model.Sample) []float64 {
	out := make([]float64, len(samples))
	for i, smp := range samples {
		out[i] = smp.Price
	}
	return out
}
