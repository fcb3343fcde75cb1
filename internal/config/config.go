package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultSessionSecret signs sessions when SESSION_SECRET is unset.
const DefaultSessionSecret = "change-me-in-production"

// Config holds application level configuration loaded from environment variables.
type Config struct {
	AppName  string
	Port     string
	DBDriver string // sqlite, postgres or mysql
	DBPath   string // sqlite file
	// DatabaseURL is the DSN for postgres or mysql.
	DatabaseURL string
	DBLogLevel  string

	SessionSecret string
	SessionTTL    time.Duration
	CookieSecure  bool

	Timezone string

	// StockExcludeDeletedTx drops soft-deleted transactions from stock sums.
	// Off by default, which keeps the historical behavior.
	StockExcludeDeletedTx bool
}

// Load reads .env (if present) and builds Config from environment with defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}
	cfg := FromEnv()
	if cfg.UsesDefaultSessionSecret() {
		log.Println("Warning: SESSION_SECRET is not set, sessions are signed with the built-in default")
	}
	return cfg
}

// FromEnv builds Config from the current environment only.
func FromEnv() *Config {
	return &Config{
		AppName:               getEnv("APP_NAME", "Cafe Inventory"),
		Port:                  getEnv("PORT", "3000"),
		DBDriver:              strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DBPath:                getEnv("DB_PATH", "cafe_app.db"),
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		DBLogLevel:            strings.ToLower(getEnv("DB_LOG_LEVEL", "warn")),
		SessionSecret:         getEnv("SESSION_SECRET", DefaultSessionSecret),
		SessionTTL:            time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		CookieSecure:          getEnvBool("COOKIE_SECURE", false),
		Timezone:              getEnv("TIMEZONE", "Asia/Tokyo"),
		StockExcludeDeletedTx: getEnvBool("STOCK_EXCLUDE_DELETED_TX", false),
	}
}

// UsesDefaultSessionSecret reports whether session tokens are signed with a
// publicly known key.
func (c *Config) UsesDefaultSessionSecret() bool {
	return c.SessionSecret == DefaultSessionSecret
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}
