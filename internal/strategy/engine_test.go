package strategy

import (
	"strings"
	"testing"

	"CryptoBit/internal/model"
)

func flatSeries(n int, price, volume float64) model.CoinSeries {
	prices := make([]float64, n)
	volumes := make([]float64, n)
	for i := range prices {
		prices[i] = price
		volumes[i] = volume
	}
	return model.CoinSeries{Prices1m: prices, Volumes1m: volumes}
}

func trendSeries(n int, start, step, volume float64) model.CoinSeries {
	prices := make([]float64, n)
	volumes := make([]float64, n)
	for i := range prices {
		prices[i] = start + float64(i)*step
		volumes[i] = volume
	}
	return model.CoinSeries{Prices1m: prices, Volumes1m: volumes}
}

func TestEvaluate_WarmingUp(t *testing.T) {
	sig := Evaluate("BTC", flatSeries(50, 100, 1000), 50)
	if sig.Level != model.LevelWarmingUp {
		t.Errorf("expected warming up, got %s", sig.Level)
	}
	if sig.Prob != 0 || sig.Score != 0 {
		t.Errorf("expected zero score/prob while warming up, got %d/%d", sig.Score, sig.Prob)
	}
	if sig.ColorClass != "text-secondary" {
		t.Errorf("unexpected color class %q", sig.ColorClass)
	}
	if len(sig.Reasons) != 0 {
		t.Errorf("expected no reasons while warming up, got %v", sig.Reasons)
	}
}

func TestEvaluate_OversoldWithFear(t *testing.T) {
	// Steady decline: RSI 0 (+25 oversold, +15 via the 1h fallback),
	// EMA bearish (-20), extreme fear (+30) -> 50 -> BUY.
	series := trendSeries(120, 1000, -1, 1000)
	sig := Evaluate("BTC", series, 10)

	if sig.Score != 50 {
		t.Errorf("expected score 50, got %d", sig.Score)
	}
	if sig.Level != model.LevelBuy {
		t.Errorf("expected BUY, got %s", sig.Level)
	}
	if sig.Prob != 50 {
		t.Errorf("expected prob 50, got %d", sig.Prob)
	}
	if len(sig.Reasons) != 3 {
		t.Errorf("expected reasons trimmed to 3, got %v", sig.Reasons)
	}
	if sig.Reasons[0] != "1m Extreme Oversold" {
		t.Errorf("unexpected first reason %q", sig.Reasons[0])
	}
}

func TestEvaluate_OverboughtWithGreed(t *testing.T) {
	// Steady climb: RSI 100 (-22), EMA bullish (+20), extreme greed (-20)
	// -> -22 -> NEUTRAL with prob forced to 30 and reasons trimmed to 2.
	series := trendSeries(120, 100, 1, 1000)
	sig := Evaluate("BTC", series, 90)

	if sig.Score != -22 {
		t.Errorf("expected score -22, got %d", sig.Score)
	}
	if sig.Level != model.LevelNeutral {
		t.Errorf("expected NEUTRAL, got %s", sig.Level)
	}
	if sig.Prob != 30 {
		t.Errorf("expected neutral prob 30, got %d", sig.Prob)
	}
	if len(sig.Reasons) > 2 {
		t.Errorf("expected at most 2 reasons for NEUTRAL, got %v", sig.Reasons)
	}
}

func TestMapLevel_AllBoundaries(t *testing.T) {
	tests := []struct {
		score int
		level model.SignalLevel
	}{
		{100, model.LevelStrongBuy},
		{60, model.LevelStrongBuy},
		{59, model.LevelBuy},
		{30, model.LevelBuy},
		{29, model.LevelNeutral},
		{0, model.LevelNeutral},
		{-29, model.LevelNeutral},
		{-30, model.LevelSell},
		{-59, model.LevelSell},
		{-60, model.LevelStrongSell},
		{-100, model.LevelStrongSell},
	}
	for _, tt := range tests {
		level, _ := mapLevel(tt.score)
		if level != tt.level {
			t.Errorf("score %d: expected %s, got %s", tt.score, tt.level, level)
		}
	}
}

func TestClampProb(t *testing.T) {
	tests := []struct{ score, want int }{
		{0, 10},
		{5, 10},
		{-5, 10},
		{45, 45},
		{-45, 45},
		{150, 98},
		{-150, 98},
	}
	for _, tt := range tests {
		if got := clampProb(tt.score); got != tt.want {
			t.Errorf("clampProb(%d): expected %d, got %d", tt.score, tt.want, got)
		}
	}
}

func TestVolumeFactor(t *testing.T) {
	prices := make([]float64, 20)
	volumes := make([]float64, 20)
	for i := 0; i < 10; i++ {
		prices[i] = 100
		volumes[i] = 100
	}
	for i := 10; i < 20; i++ {
		prices[i] = 100.5 + float64(i-10)*0.5
		volumes[i] = 300
	}

	f, ok := volumeFactor(prices, volumes)
	if !ok {
		t.Fatal("expected a volume surge factor")
	}
	if f.Delta != 18 || f.Reason != "Volume Surge Up" {
		t.Errorf("unexpected factor %+v", f)
	}

	// same surge, falling price
	for i := 10; i < 20; i++ {
		prices[i] = 99.5 - float64(i-10)*0.5
	}
	f, ok = volumeFactor(prices, volumes)
	if !ok {
		t.Fatal("expected a distribution factor")
	}
	if f.Delta != -20 || f.Reason != "Distribution Risk" {
		t.Errorf("unexpected factor %+v", f)
	}

	// surge with flat price is ignored
	for i := range prices {
		prices[i] = 100
	}
	if _, ok = volumeFactor(prices, volumes); ok {
		t.Error("expected no factor for a flat price")
	}

	// no surge at all
	for i := range volumes {
		volumes[i] = 100
	}
	if _, ok = volumeFactor(prices, volumes); ok {
		t.Error("expected no factor without a surge")
	}
}

func TestSentimentFactor(t *testing.T) {
	f, ok := sentimentFactor(10)
	if !ok || f.Delta != 30 || !strings.Contains(f.Reason, "Extreme Fear (10)") {
		t.Errorf("unexpected fear factor %+v ok=%v", f, ok)
	}
	f, ok = sentimentFactor(90)
	if !ok || f.Delta != -20 || !strings.Contains(f.Reason, "Extreme Greed (90)") {
		t.Errorf("unexpected greed factor %+v ok=%v", f, ok)
	}
	if _, ok = sentimentFactor(50); ok {
		t.Error("expected no factor for neutral sentiment")
	}
}

func TestComputeRSISet_Fallback(t *testing.T) {
	series := trendSeries(120, 1000, -1, 1000)
	series.Prices5m = []float64{100, 101} // too short, reuses 1m value
	set := computeRSISet(series)
	if set.Min5 != set.Min1 {
		t.Errorf("expected 5m RSI to fall back to 1m value, got %.2f vs %.2f", set.Min5, set.Min1)
	}

	// long enough resampled series gets its own RSI
	up := make([]float64, 30)
	for i := range up {
		up[i] = 100 + float64(i)
	}
	series.Prices5m = up
	set = computeRSISet(series)
	if set.Min5 != 100 {
		t.Errorf("expected independent 5m RSI 100, got %.2f", set.Min5)
	}
}
