package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// DefaultAPIBaseURL is the production dealer platform host, applied by Load
// when API_BASE_URL is unset or blank.
const DefaultAPIBaseURL = "https://api.evamobilya.com.tr"

type Config struct {
	APIBaseURL  string        `env:"API_BASE_URL"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT, default=15s"`
	LogLevel    string        `env:"LOG_LEVEL,    default=info"`
	LogPretty   bool          `env:"LOG_PRETTY,   default=false"`

	Session      SessionConfig
	Notification NotificationConfig
	Redis        RedisConfig
}

type SessionConfig struct {
	// File is the durable session tier ("remember me"). Defaults to a
	// dotfile in the working directory.
	File string `env:"SESSION_FILE, default=.dealer-session.json"`
}

type NotificationConfig struct {
	FeedCooldown   time.Duration `env:"FEED_COOLDOWN,        default=30s"`
	UnreadCooldown time.Duration `env:"UNREAD_COOLDOWN,      default=10s"`
	PollInterval   time.Duration `env:"UNREAD_POLL_INTERVAL, default=60s"`
	PageSize       int           `env:"FEED_PAGE_SIZE,       default=10"`
}

type RedisConfig struct {
	// Addr enables the shared Redis session tier when non-empty.
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
	}
	return &cfg
}
