package notifier

import (
	"strings"
	"testing"

	"CryptoBit/internal/model"
)

func TestFormatAlert(t *testing.T) {
	row := model.DashboardRow{
		Coin:    "BTC",
		Price:   50000,
		Change:  -2.5,
		Signal:  string(model.LevelStrongBuy),
		Prob:    75,
		Reasons: "1m Extreme Oversold • Extreme Fear (Contrarian Buy)",
	}
	msg := FormatAlert(row, model.LevelNeutral)

	for _, want := range []string{"🟢", "BTC", "STRONG BUY", "was NEUTRAL", "75%", "1m Extreme Oversold"} {
		if !strings.Contains(msg, want) {
			t.Errorf("alert missing %q:\n%s", want, msg)
		}
	}
}

func TestFormatStatus_NilSnapshot(t *testing.T) {
	if got := FormatStatus(nil); !strings.Contains(got, "warming up") {
		t.Errorf("expected warm-up message, got %q", got)
	}
}

func TestFormatStatus(t *testing.T) {
	snap := &model.Snapshot{
		Dashboard: []model.DashboardRow{
			{Coin: "ETH", Price: 3000, Change: 1.1, Signal: "BUY", Prob: 40},
		},
		FearGreed: 33,
		Timestamp: "2025-06-02T09:00:00Z",
	}
	msg := FormatStatus(snap)
	for _, want := range []string{"ETH", "BUY 40%", "Fear & Greed: 33"} {
		if !strings.Contains(msg, want) {
			t.Errorf("status missing %q:\n%s", want, msg)
		}
	}
}

func TestFormatFearGreed(t *testing.T) {
	tests := []struct {
		value int
		label string
	}{
		{10, "Extreme Fear"},
		{30, "Fear"},
		{50, "Neutral"},
		{70, "Greed"},
		{90, "Extreme Greed"},
	}
	for _, tt := range tests {
		got := FormatFearGreed(tt.value)
		if !strings.Contains(got, tt.label) {
			t.Errorf("FormatFearGreed(%d) = %q, want label %q", tt.value, got, tt.label)
		}
	}
}
