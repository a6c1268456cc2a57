package notifier

import (
	"fmt"
	"strings"

	"CryptoBit/internal/model"
)

// FormatAlert formats a signal-level transition alert for one coin.
func FormatAlert(row model.DashboardRow, previous model.SignalLevel) string {
	var b strings.Builder

	icon := "🔔"
	switch row.Signal {
	case string(model.LevelStrongBuy):
		icon = "🟢"
	case string(model.LevelStrongSell):
		icon = "🔴"
	}

	b.WriteString(fmt.Sprintf("%s <b>%s</b>: %s (was %s)\n\n", icon, row.Coin, row.Signal, previous))
	b.WriteString(fmt.Sprintf("Price: $%.6g (%+.2f%% 24h)\n", row.Price, row.Change))
	b.WriteString(fmt.Sprintf("Confidence: %d%%\n", row.Prob))
	if row.Reasons != "" {
		b.WriteString(fmt.Sprintf("Reasons: %s\n", row.Reasons))
	}
	return b.String()
}

// FormatStatus formats the current dashboard for a command reply.
func FormatStatus(snap *model.Snapshot) string {
	if snap == nil {
		return "No data yet, still warming up."
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 <b>CryptoBit Status</b> | %s\n\n", snap.Timestamp))
	for _, row := range snap.Dashboard {
		b.WriteString(fmt.Sprintf("%s: $%.6g (%+.2f%%) — %s %d%%\n",
			row.Coin, row.Price, row.Change, row.Signal, row.Prob))
	}
	b.WriteString(fmt.Sprintf("\nFear & Greed: %d", snap.FearGreed))
	return b.String()
}

// FormatFearGreed formats the sentiment value for a command reply.
func FormatFearGreed(value int) string {
	label := "Neutral"
	switch {
	case value < 20:
		label = "Extreme Fear"
	case value < 40:
		label = "Fear"
	case value > 80:
		label = "Extreme Greed"
	case value > 60:
		label = "Greed"
	}
	return fmt.Sprintf("😱 Fear & Greed Index: <b>%d</b> (%s)", value, label)
}
