package strategy

import (
	"fmt"

	"CryptoBit/internal/calculator"
	"CryptoBit/internal/model"
)

// factor is one scored contribution with its display reason.
type factor struct {
	Delta  int
	Reason string
}

// rsiFactors scores the multi-timeframe RSI readings.
func rsiFactors(rsi model.RSISet) []factor {
	var out []factor
	switch {
	case rsi.Min1 < 25:
		out = append(out, factor{25, "1m Extreme Oversold"})
	case rsi.Min1 < 30:
		out = append(out, factor{18, "1m Oversold"})
	}
	if rsi.Min1 > 75 {
		out = append(out, factor{-22, "1m Overbought"})
	}
	if rsi.Hour1 < 40 {
		out = append(out, factor{15, "1h Bullish Structure"})
	}
	return out
}

// emaTrendFactor compares the fast and slow EMA on the 1m series.
// Needs at least 50 samples.
func emaTrendFactor(prices []float64) (factor, bool) {
	if len(prices) < 50 {
		return factor{}, false
	}
	fast := calculator.EMA(prices, 12)
	slow := calculator.EMA(prices, 26)
	if fast > slow {
		return factor{20, "EMA Bullish"}, true
	}
	return factor{-20, "EMA Bearish"}, true
}

// volumeFactor detects a volume surge and classifies it by the direction of
// the price move over the same window.
func volumeFactor(prices, volumes []float64) (factor, bool) {
	ratio, ok := calculator.VolumeSurge(volumes)
	if !ok || ratio <= 1.8 {
		return factor{}, false
	}
	change, err := calculator.Momentum(prices, 10)
	if err != nil {
		return factor{}, false
	}
	switch {
	case change > 0.01:
		return factor{18, "Volume Surge Up"}, true
	case change < -0.01:
		return factor{-20, "Distribution Risk"}, true
	}
	return factor{}, false
}

// sentimentFactor scores the Fear & Greed index extremes.
func sentimentFactor(fearGreed int) (factor, bool) {
	switch {
	case fearGreed < 20:
		return factor{30, fmt.Sprintf("Extreme Fear (%d)", fearGreed)}, true
	case fearGreed > 80:
		return factor{-20, fmt.Sprintf("Extreme Greed (%d)", fearGreed)}, true
	}
	return factor{}, false
}
