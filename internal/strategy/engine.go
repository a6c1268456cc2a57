package strategy

import (
	"CryptoBit/internal/calculator"
	"CryptoBit/internal/model"
)

// WarmUpSamples is the minimum number of 1m samples before a coin is scored.
const WarmUpSamples = 100

// rsiPeriod is the lookback used for all timeframes.
const rsiPeriod = 14

// minResampledPoints is the minimum series length before a resampled
// timeframe gets its own RSI instead of reusing the 1m value.
const minResampledPoints = 20

// mapLevel maps a total score to a signal level and its front-end CSS class.
func mapLevel(score int) (model.SignalLevel, string) {
	switch {
	case score >= 60:
		return model.LevelStrongBuy, "text-success fw-bold"
	case score >= 30:
		return model.LevelBuy, "text-info"
	case score <= -60:
		return model.LevelStrongSell, "text-danger fw-bold"
	case score <= -30:
		return model.LevelSell, "text-warning"
	default:
		return model.LevelNeutral, "text-muted"
	}
}

// clampProb converts a score into a display probability in [10, 98].
func clampProb(score int) int {
	if score < 0 {
		score = -score
	}
	if score < 10 {
		return 10
	}
	if score > 98 {
		return 98
	}
	return score
}

// Evaluate computes the heuristic signal for one coin from its series and
// the current Fear & Greed index.
func Evaluate(symbol string, series model.CoinSeries, fearGreed int) *model.CoinSignal {
	if len(series.Prices1m) < WarmUpSamples {
		return &model.CoinSignal{
			Symbol:     symbol,
			Level:      model.LevelWarmingUp,
			ColorClass: "text-secondary",
		}
	}

	rsi := computeRSISet(series)

	var score int
	var reasons []string
	add := func(f factor) {
		score += f.Delta
		reasons = append(reasons, f.Reason)
	}

	for _, f := range rsiFactors(rsi) {
		add(f)
	}
	if f, ok := emaTrendFactor(series.Prices1m); ok {
		add(f)
	}
	if f, ok := volumeFactor(series.Prices1m, series.Volumes1m); ok {
		add(f)
	}
	if f, ok := sentimentFactor(fearGreed); ok {
		add(f)
	}

	level, class := mapLevel(score)
	prob := clampProb(score)
	maxReasons := 3
	if level == model.LevelNeutral {
		prob = 30
		maxReasons = 2
	}
	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}

	return &model.CoinSignal{
		Symbol:     symbol,
		Score:      score,
		Prob:       prob,
		Level:      level,
		ColorClass: class,
		Reasons:    reasons,
		RSI:        rsi,
	}
}

func computeRSISet(series model.CoinSeries) model.RSISet {
	base := rsiOrDefault(series.Prices1m)
	set := model.RSISet{Min1: base, Min5: base, Min15: base, Hour1: base}
	if len(series.Prices5m) >= minResampledPoints {
		set.Min5 = rsiOrDefault(series.Prices5m)
	}
	if len(series.Prices15m) >= minResampledPoints {
		set.Min15 = rsiOrDefault(series.Prices15m)
	}
	if len(series.Prices1h) >= minResampledPoints {
		set.Hour1 = rsiOrDefault(series.Prices1h)
	}
	return set
}

func rsiOrDefault(prices []float64) float64 {
	v, err := calculator.RSI(prices, rsiPeriod)
	if err != nil {
		return 50
	}
	return v
}
