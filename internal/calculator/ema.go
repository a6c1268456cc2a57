package calculator

// EMASeries computes the exponential moving average of the prices with
// smoothing factor 2/(span+1), seeded at the first value.
func EMASeries(prices []float64, span int) []float64 {
	if len(prices) == 0 || span <= 0 {
		return nil
	}
	k := 2.0 / (float64(span) + 1.0)
	out := make([]float64, len(prices))
	out[0] = prices[0]
	for i := 1; i < len(prices); i++ {
		out[i] = prices[i]*k + out[i-1]*(1.0-k)
	}
	return out
}

// EMA returns the last value of the EMA series, or 0 for an empty input.
func EMA(prices []float64, span int) float64 {
	series := EMASeries(prices, span)
	if len(series) == 0 {
		return 0
	}
	return series[len(series)-1]
}
