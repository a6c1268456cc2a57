package scheduler

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"CryptoBit/internal/cache"
	"CryptoBit/internal/collector"
	"CryptoBit/internal/dashboard"
	"CryptoBit/internal/history"
	"CryptoBit/internal/model"
	"CryptoBit/internal/notifier"
	"CryptoBit/internal/recorder"
	"CryptoBit/internal/strategy"
)

// Scheduler drives the poll cycle and periodic history-state saves.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	History   *history.Store
	Snapshots *dashboard.Store
	Recorder  recorder.Recorder
	Notifier  *notifier.TelegramNotifier
	Cache     *cache.SnapshotCache
	Ctx       context.Context
	RunID     string
	StateFile string

	// mu guards lastFearGreed and lastLevels: the poll cycle writes them
	// while the Telegram polling goroutine reads via HandleCommand.
	mu            sync.Mutex
	lastFearGreed int
	lastLevels    map[string]model.SignalLevel
}

// NewScheduler creates a new Scheduler. Notifier and Cache may be nil.
func NewScheduler(ctx context.Context, col *collector.Collector, hist *history.Store,
	snaps *dashboard.Store, rec recorder.Recorder, tn *notifier.TelegramNotifier,
	sc *cache.SnapshotCache, runID, stateFile string) *Scheduler {
	return &Scheduler{
		// Skip a tick when the previous cycle is still running; a slow
		// market fetch must not pile up overlapping cycles.
		Cron: cron.New(cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		Collector:     col,
		History:       hist,
		Snapshots:     snaps,
		Recorder:      rec,
		Notifier:      tn,
		Cache:         sc,
		Ctx:           ctx,
		RunID:         runID,
		StateFile:     stateFile,
		lastFearGreed: 50,
		lastLevels:    make(map[string]model.SignalLevel),
	}
}

// RegisterAll registers the poll cycle and the history-state save.
func (s *Scheduler) RegisterAll(pollCron, saveCron string) error {
	if _, err := s.Cron.AddFunc(pollCron, s.pollCycle); err != nil {
		return fmt.Errorf("register poll cycle: %w", err)
	}
	if _, err := s.Cron.AddFunc(saveCron, s.saveState); err != nil {
		return fmt.Errorf("register state save: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler and saves the history state.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	s.saveState()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes one poll cycle immediately (startup warm-up).
func (s *Scheduler) RunNow() {
	s.pollCycle()
}

// FearGreed returns the most recent sentiment value.
func (s *Scheduler) FearGreed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastFearGreed
}

func (s *Scheduler) pollCycle() {
	start := time.Now()
	quotes, fearGreed := s.Collector.Collect(s.Ctx)
	s.mu.Lock()
	s.lastFearGreed = fearGreed
	s.mu.Unlock()

	symbols := make([]string, 0, len(s.Collector.Coins))
	for sym := range s.Collector.Coins {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	rows := make([]model.DashboardRow, 0, len(symbols))
	charts := make(map[string]model.ChartSeries, len(symbols))

	for _, sym := range symbols {
		q, ok := quotes[sym]
		if !ok {
			continue
		}
		s.History.Append(sym, start, q.Price, q.Volume)
		series := s.History.Series(sym)
		sig := strategy.Evaluate(sym, series, fearGreed)

		row := dashboard.BuildRow(q, sig)
		rows = append(rows, row)
		charts[sym] = dashboard.BuildChart(series.Prices1m)

		s.recordSignal(q, sig)
		s.maybeAlert(row, sig.Level)
	}

	if len(rows) == 0 {
		log.Println("[WARN] poll cycle produced no quotes, keeping previous snapshot")
		return
	}

	snap := &model.Snapshot{
		Dashboard: rows,
		ChartData: charts,
		FearGreed: fearGreed,
		Timestamp: start.Format(time.RFC3339),
	}
	s.Snapshots.Set(snap)
	s.publish(snap, quotes)

	if err := s.Recorder.RecordCycle(&recorder.CycleRecord{
		RunID:     s.RunID,
		FearGreed: fearGreed,
		Coins:     len(rows),
		Duration:  time.Since(start),
	}); err != nil {
		log.Printf("[ERROR] record cycle: %v", err)
	}

	log.Printf("[INFO] poll cycle done: %d coins, fg=%d, took %v", len(rows), fearGreed, time.Since(start).Round(time.Millisecond))
}

// quoteSetter is the cache surface the quote publisher needs.
type quoteSetter interface {
	SetQuote(ctx context.Context, q model.Quote) error
}

// publish mirrors the snapshot and quotes into Redis for external readers.
func (s *Scheduler) publish(snap *model.Snapshot, quotes map[string]model.Quote) {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(s.Ctx, 5*time.Second)
	defer cancel()
	if err := s.Cache.SetSnapshot(ctx, snap); err != nil {
		log.Printf("[WARN] cache snapshot: %v", err)
	}
	publishQuotes(ctx, s.Cache, quotes)
}

// publishQuotes writes every quote; one coin's failure must not leave the
// remaining coins stale while the snapshot key is fresh.
func publishQuotes(ctx context.Context, qs quoteSetter, quotes map[string]model.Quote) {
	for _, q := range quotes {
		if err := qs.SetQuote(ctx, q); err != nil {
			log.Printf("[WARN] cache quote %s: %v", q.Symbol, err)
		}
	}
}

func (s *Scheduler) recordSignal(q model.Quote, sig *model.CoinSignal) {
	if sig.Level == model.LevelWarmingUp {
		return
	}
	if err := s.Recorder.RecordSignal(&recorder.SignalRecord{
		RunID:     s.RunID,
		Coin:      q.Symbol,
		Price:     q.Price,
		Change24h: q.Change24h,
		RSI1m:     sig.RSI.Min1,
		RSI5m:     sig.RSI.Min5,
		RSI15m:    sig.RSI.Min15,
		RSI1h:     sig.RSI.Hour1,
		Score:     sig.Score,
		Level:     string(sig.Level),
		Prob:      sig.Prob,
		Reasons:   strings.Join(sig.Reasons, " • "),
	}); err != nil {
		log.Printf("[ERROR] record signal: %v", err)
	}
}

// maybeAlert notifies when a coin's level transitions into or out of a
// strong signal. The first observation of a coin never alerts.
func (s *Scheduler) maybeAlert(row model.DashboardRow, level model.SignalLevel) {
	s.mu.Lock()
	prev, seen := s.lastLevels[row.Coin]
	s.lastLevels[row.Coin] = level
	s.mu.Unlock()

	if !seen || prev == level || level == model.LevelWarmingUp || prev == model.LevelWarmingUp {
		return
	}
	if !isStrong(level) && !isStrong(prev) {
		return
	}
	if !s.Notifier.Enabled() {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, notifier.FormatAlert(row, prev), 3); err != nil {
		log.Printf("[ERROR] send alert: %v", err)
	}
}

func isStrong(level model.SignalLevel) bool {
	return level == model.LevelStrongBuy || level == model.LevelStrongSell
}

func (s *Scheduler) saveState() {
	if s.StateFile == "" {
		return
	}
	if err := s.History.Save(s.StateFile); err != nil {
		log.Printf("[ERROR] save history state: %v", err)
		return
	}
	log.Printf("[INFO] history state saved: %s", s.StateFile)
}

// HandleCommand processes a Telegram command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/status":
		return notifier.FormatStatus(s.Snapshots.Get())
	case "/fg":
		return notifier.FormatFearGreed(s.FearGreed())
	default:
		return "Available commands:\n• /status — current dashboard\n• /fg — Fear & Greed index"
	}
}
