package dashboard

import (
	"testing"

	"CryptoBit/internal/model"
)

func TestBuildRow(t *testing.T) {
	q := model.Quote{Symbol: "BTC", Price: 0.1234567, Change24h: 2.555, Volume: 100}
	sig := &model.CoinSignal{
		Symbol:     "BTC",
		Level:      model.LevelBuy,
		Prob:       45,
		ColorClass: "text-info",
		Reasons:    []string{"1m Oversold", "EMA Bullish"},
	}
	row := BuildRow(q, sig)
	if row.Price != 0.123457 {
		t.Errorf("expected price rounded to 6 places, got %v", row.Price)
	}
	if row.Change != 2.56 {
		t.Errorf("expected change rounded to 2 places, got %v", row.Change)
	}
	if row.Reasons != "1m Oversold • EMA Bullish" {
		t.Errorf("unexpected reasons %q", row.Reasons)
	}
	if row.Signal != "BUY" || row.Prob != 45 {
		t.Errorf("unexpected row %+v", row)
	}
}

func TestBuildRow_NoReasons(t *testing.T) {
	row := BuildRow(model.Quote{Symbol: "BTC"}, &model.CoinSignal{Level: model.LevelWarmingUp})
	if row.Reasons != "Analyzing..." {
		t.Errorf("expected placeholder reasons, got %q", row.Reasons)
	}
}

func TestBuildChart_TrimsToChartPoints(t *testing.T) {
	prices := make([]float64, 200)
	for i := range prices {
		prices[i] = float64(i)
	}
	series := BuildChart(prices)
	if len(series.Prices) != ChartPoints {
		t.Errorf("expected %d prices, got %d", ChartPoints, len(series.Prices))
	}
	if series.Prices[0] != 50 {
		t.Errorf("expected oldest trimmed, first price 50, got %.0f", series.Prices[0])
	}
	if len(series.Labels) != ChartPoints || series.Labels[len(series.Labels)-1] != ChartPoints-1 {
		t.Errorf("unexpected labels")
	}
	if len(series.EMAFast) != ChartPoints || len(series.EMASlow) != ChartPoints {
		t.Errorf("expected EMA overlays for a long series")
	}
}

func TestBuildChart_ShortSeriesSkipsEMA(t *testing.T) {
	prices := make([]float64, 20)
	series := BuildChart(prices)
	if len(series.EMAFast) != 0 || len(series.EMASlow) != 0 {
		t.Errorf("expected empty EMA overlays below %d points", 26)
	}
	if series.EMAFast == nil || series.EMASlow == nil {
		t.Error("EMA overlays must encode as [] not null")
	}
}
