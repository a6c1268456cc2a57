package dashboard

import (
	"math"
	"strings"

	"CryptoBit/internal/calculator"
	"CryptoBit/internal/model"
)

// ChartPoints is how many recent 1m prices each chart carries.
const ChartPoints = 150

// emaMinPoints is the minimum chart length before EMA overlays are drawn.
const emaMinPoints = 26

// BuildRow converts a quote and its signal into a dashboard row.
func BuildRow(q model.Quote, sig *model.CoinSignal) model.DashboardRow {
	reasons := "Analyzing..."
	if len(sig.Reasons) > 0 {
		reasons = strings.Join(sig.Reasons, " • ")
	}
	return model.DashboardRow{
		Coin:       q.Symbol,
		Price:      roundTo(q.Price, 6),
		Change:     roundTo(q.Change24h, 2),
		Signal:     string(sig.Level),
		Prob:       sig.Prob,
		ColorClass: sig.ColorClass,
		Reasons:    reasons,
	}
}

// BuildChart builds the plotting series from the 1m prices, trimmed to the
// most recent ChartPoints samples.
func BuildChart(prices []float64) model.ChartSeries {
	if len(prices) > ChartPoints {
		prices = prices[len(prices)-ChartPoints:]
	}
	series := model.ChartSeries{
		Labels:  make([]int, len(prices)),
		Prices:  prices,
		EMAFast: []float64{},
		EMASlow: []float64{},
	}
	for i := range series.Labels {
		series.Labels[i] = i
	}
	if len(prices) > emaMinPoints {
		series.EMAFast = calculator.EMASeries(prices, 12)
		series.EMASlow = calculator.EMASeries(prices, 26)
	}
	return series
}

func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
