package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"CryptoBit/internal/cache"
	"CryptoBit/internal/collector"
	"CryptoBit/internal/config"
	"CryptoBit/internal/dashboard"
	"CryptoBit/internal/history"
	"CryptoBit/internal/notifier"
	"CryptoBit/internal/recorder"
	"CryptoBit/internal/scheduler"
	"CryptoBit/internal/server"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] CryptoBit tracker starting...")

	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetchers and collector
	market := collector.NewCoinGeckoFetcher(cfg.DataSource.MarketBaseURL, cfg.DataSource.UserAgent, cfg.Proxy)
	sentiment := collector.NewFearGreedFetcher(cfg.DataSource.SentimentBaseURL, cfg.Proxy)
	col := collector.NewCollector(market, sentiment, cfg.Poll.Coins)
	log.Printf("[INFO] data sources: %s, %s", market.Name(), sentiment.Name())

	// Init history store with warm-start state
	symbols := make([]string, 0, len(cfg.Poll.Coins))
	for sym := range cfg.Poll.Coins {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)
	hist := history.NewStore(symbols)
	if err := hist.Load(cfg.History.StateFile); err != nil {
		log.Printf("[WARN] load history state: %v, starting cold", err)
	}

	// Init snapshot store
	snaps := dashboard.NewStore()

	// Init recorder; healthRec stays nil unless SQLite is actually open
	var rec recorder.Recorder = recorder.NewNoopRecorder()
	var healthRec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
		} else {
			rec = sr
			healthRec = sr
			defer sr.Close()
		}
	}

	// Init Redis snapshot cache (optional)
	var sc *cache.SnapshotCache
	if cfg.Cache.RedisAddr != "" {
		c, err := cache.New(cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB)
		if err != nil {
			log.Printf("[WARN] redis unavailable, continuing memory-only: %v", err)
		} else {
			sc = c
			defer sc.Close()
			log.Printf("[INFO] redis snapshot cache connected: %s", cfg.Cache.RedisAddr)
		}
	}

	// Init Telegram notifier (optional)
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	runID := uuid.NewString()
	sched := scheduler.NewScheduler(ctx, col, hist, snaps, rec, tn, sc, runID, cfg.History.StateFile)
	if err := sched.RegisterAll(cfg.PollCronSpec(), cfg.History.SaveCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()
	log.Printf("[INFO] run id: %s", runID)

	// First cycle immediately instead of waiting for the next cron tick
	go sched.RunNow()

	// Telegram command polling
	if tn.Enabled() {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Println("[INFO] Telegram polling started")
	}

	// HTTP server
	srv := server.NewServer(cfg.Server.Listen, snaps, sc, healthRec, symbols)
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	// Wait for shutdown signal or server failure
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("[FATAL] http server: %v", err)
		}
	case <-sigCh:
		log.Println("[INFO] shutdown signal received, stopping...")
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[ERROR] http shutdown: %v", err)
	}
	log.Println("[INFO] CryptoBit tracker stopped")
}
