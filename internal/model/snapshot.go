package model

// DashboardRow is one coin's row in the dashboard payload.
type DashboardRow struct {
	Coin       string  `json:"coin"`
	Price      float64 `json:"price"`
	Change     float64 `json:"change"`
	Signal     string  `json:"signal"`
	Prob       int     `json:"prob"`
	ColorClass string  `json:"color_class"`
	Reasons    string  `json:"reasons"`
}

// ChartSeries holds plotting data for one coin's chart.
type ChartSeries struct {
	Labels  []int     `json:"labels"`
	Prices  []float64 `json:"prices"`
	EMAFast []float64 `json:"ema_fast"`
	EMASlow []float64 `json:"ema_slow"`
}

// Snapshot is the full dashboard payload served to the front end.
type Snapshot struct {
	Dashboard []DashboardRow         `json:"dashboard"`
	ChartData map[string]ChartSeries `json:"chart_data"`
	FearGreed int                    `json:"fg"`
	Timestamp string                 `json:"timestamp"`
}

// EmptySnapshot is what /api/data returns before the first completed cycle.
func EmptySnapshot() *Snapshot {
	return &Snapshot{
		Dashboard: []DashboardRow{},
		ChartData: map[string]ChartSeries{},
		FearGreed: 50,
	}
}
