package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (backend URL, Redis), security settings
// - default: Values common across all environments (timeouts, storage key), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	API   APIConfig
	Redis RedisConfig
	Store StoreConfig
	Log   LogConfig
}

type APIConfig struct {
	BaseURL   string        `envconfig:"BYTESME_API_BASE_URL" required:"true"`
	Timeout   time.Duration `envconfig:"BYTESME_API_TIMEOUT" default:"15s"`
	UserAgent string        `envconfig:"BYTESME_API_USER_AGENT" default:"bytesme-checkout/1.0"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type StoreConfig struct {
	// Single-slot key holding the JSON-serialized applied voucher.
	AppliedVoucherKey string `envconfig:"APPLIED_VOUCHER_KEY" default:"APPLIED_VOUCHER"`
	// Zero means the slot never expires on its own; the checkout flow owns
	// its lifecycle.
	AppliedVoucherTTL time.Duration `envconfig:"APPLIED_VOUCHER_TTL" default:"0s"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:   "http://localhost:18080",
			Timeout:   5 * time.Second,
			UserAgent: "bytesme-checkout/test",
		},
		Redis: RedisConfig{
			Addr: "localhost:16379",
		},
		Store: StoreConfig{
			AppliedVoucherKey: "APPLIED_VOUCHER",
		},
		Log: LogConfig{
			Level: "error", // Error level only for tests
		},
	}
}
