package calculator

import "errors"

// surgeWindow is the number of samples in each half of the volume comparison.
const surgeWindow = 10

// Mean returns the arithmetic mean of the values, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// VolumeSurge compares the mean of the most recent 10 volumes against the
// mean of the 10 before them. Returns the ratio and false when fewer than
// 20 volumes exist or the prior window averages zero.
func VolumeSurge(volumes []float64) (ratio float64, ok bool) {
	if len(volumes) < 2*surgeWindow {
		return 0, false
	}
	n := len(volumes)
	recent := Mean(volumes[n-surgeWindow:])
	prev := Mean(volumes[n-2*surgeWindow : n-surgeWindow])
	if prev == 0 {
		return 0, false
	}
	return recent / prev, true
}

// Momentum returns the relative price change over the last `lookback`
// samples: (last - prices[len-lookback]) / prices[len-lookback].
func Momentum(prices []float64, lookback int) (float64, error) {
	if lookback <= 0 {
		return 0, errors.New("lookback must be positive")
	}
	if len(prices) < lookback {
		return 0, errors.New("not enough data for momentum calculation")
	}
	base := prices[len(prices)-lookback]
	if base == 0 {
		return 0, errors.New("zero base price")
	}
	return (prices[len(prices)-1] - base) / base, nil
}
