package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Listen string `yaml:"listen"`
	} `yaml:"server"`
	Poll struct {
		IntervalSeconds int               `yaml:"interval_seconds"`
		Coins           map[string]string `yaml:"coins"` // symbol -> CoinGecko id
	} `yaml:"poll"`
	DataSource struct {
		MarketBaseURL    string `yaml:"market_base_url"`
		SentimentBaseURL string `yaml:"sentiment_base_url"`
		UserAgent        string `yaml:"user_agent"`
	} `yaml:"data_source"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Cache struct {
		RedisAddr     string `yaml:"redis_addr"`
		RedisPassword string `yaml:"redis_password"`
		RedisDB       int    `yaml:"redis_db"`
	} `yaml:"cache"`
	History struct {
		StateFile string `yaml:"state_file"`
		SaveCron  string `yaml:"save_cron"`
	} `yaml:"history"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.Listen = v
	}
	if v := os.Getenv("POLL_INTERVAL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Poll.IntervalSeconds = n
		}
	}
	if v := os.Getenv("MARKET_BASE_URL"); v != "" {
		cfg.DataSource.MarketBaseURL = v
	}
	if v := os.Getenv("SENTIMENT_BASE_URL"); v != "" {
		cfg.DataSource.SentimentBaseURL = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Cache.RedisAddr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Cache.RedisPassword = v
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Cache.RedisDB = n
		}
	}
	if v := os.Getenv("STATE_FILE"); v != "" {
		cfg.History.StateFile = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":5000"
	}
	if cfg.Poll.IntervalSeconds == 0 {
		cfg.Poll.IntervalSeconds = 15
	}
	if len(cfg.Poll.Coins) == 0 {
		cfg.Poll.Coins = map[string]string{
			"BTC": "bitcoin",
			"ETH": "ethereum",
			"SOL": "solana",
			"TON": "toncoin",
			"BNB": "binancecoin",
		}
	}
	if cfg.DataSource.MarketBaseURL == "" {
		cfg.DataSource.MarketBaseURL = "https://api.coingecko.com/api/v3"
	}
	if cfg.DataSource.SentimentBaseURL == "" {
		cfg.DataSource.SentimentBaseURL = "https://api.alternative.me"
	}
	if cfg.DataSource.UserAgent == "" {
		cfg.DataSource.UserAgent = "CryptoBitTracker/1.0"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/cryptobit.db"
	}
	if cfg.History.StateFile == "" {
		cfg.History.StateFile = "data/history_state.json"
	}
	if cfg.History.SaveCron == "" {
		cfg.History.SaveCron = "0 */5 * * * *"
	}

	return cfg, nil
}

// PollCronSpec returns the seconds-granularity cron spec for the poll cycle.
func (c *Config) PollCronSpec() string {
	return fmt.Sprintf("*/%d * * * * *", c.Poll.IntervalSeconds)
}

// TelegramEnabled reports whether alerting is configured.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.BotToken != "" && c.Telegram.ChatID != ""
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if c.Poll.IntervalSeconds < 1 || c.Poll.IntervalSeconds > 59 {
		return fmt.Errorf("poll.interval_seconds must be in [1, 59]")
	}
	if len(c.Poll.Coins) == 0 {
		return fmt.Errorf("poll.coins must not be empty")
	}
	for sym, id := range c.Poll.Coins {
		if sym == "" || id == "" {
			return fmt.Errorf("poll.coins entries must map symbol to a non-empty id")
		}
	}
	return nil
}
