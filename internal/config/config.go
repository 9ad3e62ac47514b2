package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr     string
	DBPath   string
	LogLevel string

	// Engine tunables. The break-day and plateau heuristics are fixed
	// thresholds with no derivation behind them, so they stay adjustable.
	DailyDrillCount  int
	PlateauThreshold int
	CooldownHours    int

	// Background refresh
	RefreshCron    string
	RefreshEnabled bool
	WorkerCount    int
	QueueSize      int

	// Narrative generation (optional)
	OpenAIKey   string
	OpenAIModel string
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:             envOr("ADDR", ":8080"),
		DBPath:           envOr("DB_PATH", "file:trainflow.db"),
		LogLevel:         envOr("LOG_LEVEL", "INFO"),
		DailyDrillCount:  envIntOr("DAILY_DRILL_COUNT", 4),
		PlateauThreshold: envIntOr("PLATEAU_THRESHOLD", 4),
		CooldownHours:    envIntOr("SESSION_COOLDOWN_HOURS", 12),
		RefreshCron:      envOr("REFRESH_CRON", "0 0 5 * * *"),
		RefreshEnabled:   envBoolOr("REFRESH_ENABLED", true),
		WorkerCount:      envIntOr("WORKER_COUNT", 2),
		QueueSize:        envIntOr("QUEUE_SIZE", 64),
		OpenAIKey:        envOr("OPENAI_API_KEY", ""),
		OpenAIModel:      envOr("OPENAI_MODEL", "gpt-4o-mini"),
	}
}

// Validate checks that the configuration is usable, collecting every
// problem into a single error.
func (c Config) Validate() error {
	var problems []string

	if c.Addr == "" {
		problems = append(problems, "ADDR cannot be empty")
	}
	if c.DBPath == "" {
		problems = append(problems, "DB_PATH cannot be empty")
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL %q is not a valid level", c.LogLevel))
	}
	if c.DailyDrillCount < 1 {
		problems = append(problems, "DAILY_DRILL_COUNT must be at least 1")
	}
	if c.PlateauThreshold < 1 {
		problems = append(problems, "PLATEAU_THRESHOLD must be at least 1")
	}
	if c.CooldownHours < 0 {
		problems = append(problems, "SESSION_COOLDOWN_HOURS cannot be negative")
	}
	if c.WorkerCount < 1 {
		problems = append(problems, "WORKER_COUNT must be at least 1")
	}
	if c.QueueSize < 1 {
		problems = append(problems, "QUEUE_SIZE must be at least 1")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envBoolOr(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("invalid value for %s=%q, using default %t", key, v, def)
	}
	return def
}
