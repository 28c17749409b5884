package config

import (
	"fmt"
	"time"

	pkgconfig "github.com/agamlatiff/upskills-sub001/pkg/config"
	"github.com/agamlatiff/upskills-sub001/pkg/validator"
)

// Config holds the full application configuration, loaded from the
// environment.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development" validate:"oneof=development staging production"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`

	// Remote catalog API.
	APIBaseURL   string        `env:"UPSKILLS_API_URL" envDefault:"https://api.upskills.app" validate:"required,url"`
	APIToken     string        `env:"UPSKILLS_API_TOKEN"`
	HTTPTimeout  time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
	APIRateLimit float64       `env:"API_RATE_LIMIT" envDefault:"10" validate:"gte=0"`

	// Cache store.
	CacheTTL     time.Duration `env:"CACHE_TTL" envDefault:"5m" validate:"gt=0"`
	CacheBackend string        `env:"CACHE_BACKEND" envDefault:"file" validate:"oneof=file redis"`
	CacheFile    string        `env:"CACHE_FILE" envDefault:"upskills_cache.json"`

	Redis RedisConfig `envPrefix:"REDIS_"`
}

// RedisConfig configures the optional Redis cache backend.
type RedisConfig struct {
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0" validate:"gte=0"`
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := pkgconfig.Load(&cfg); err != nil {
		return nil, err
	}
	if err := validator.Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
