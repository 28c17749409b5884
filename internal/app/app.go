package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/agamlatiff/upskills-sub001/internal/api"
	"github.com/agamlatiff/upskills-sub001/internal/auth"
	"github.com/agamlatiff/upskills-sub001/internal/cache"
	"github.com/agamlatiff/upskills-sub001/internal/catalog"
	"github.com/agamlatiff/upskills-sub001/internal/config"
	"github.com/agamlatiff/upskills-sub001/internal/wishlist"
	"github.com/agamlatiff/upskills-sub001/pkg/health"
	"github.com/agamlatiff/upskills-sub001/pkg/httpclient"
	"github.com/agamlatiff/upskills-sub001/pkg/logger"
)

// App owns every long-lived component and hands them to commands. All state
// lives here rather than in package globals, so two App values never share
// anything.
type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	Cache    *cache.Store
	Catalog  *catalog.Service
	Wishlist *wishlist.Service
	Health   *health.Registry

	redisClient *redis.Client
}

// New loads configuration and wires the full component graph.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return NewWithConfig(ctx, cfg)
}

// NewWithConfig wires the component graph from an already loaded config.
func NewWithConfig(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logger.New("upskills", cfg.LogLevel)

	a := &App{
		Config: cfg,
		Logger: log,
		Health: health.NewRegistry(),
	}

	persister, err := a.newPersister(ctx, cfg)
	if err != nil {
		return nil, err
	}

	a.Cache = cache.NewStore(cache.Config{
		TTL:       cfg.CacheTTL,
		Persister: persister,
		Logger:    log,
	})

	httpCfg := httpclient.DefaultConfig()
	httpCfg.Timeout = cfg.HTTPTimeout
	httpCfg.RequestsPerSecond = cfg.APIRateLimit
	httpCfg.Burst = 3

	doer := httpclient.NewCircuitBreakerClient(
		httpclient.New(httpCfg),
		httpclient.DefaultCircuitBreakerConfig("catalog-api"),
		log,
	)

	tokens := auth.NewStaticProvider(cfg.APIToken)
	client := api.New(cfg.APIBaseURL, doer, tokens, log)

	a.Catalog = catalog.NewService(client, a.Cache, log)
	a.Wishlist = wishlist.NewService(client, tokens, log)

	a.Health.Register("catalog_api", func(ctx context.Context) error {
		_, err := client.PricingPlans(ctx)
		return err
	})
	a.Health.Register("cache_backend", func(ctx context.Context) error {
		_, err := persister.Load(ctx)
		return err
	})
	return a, nil
}

func (a *App) newPersister(ctx context.Context, cfg *config.Config) (cache.Persister, error) {
	switch cfg.CacheBackend {
	case "redis":
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		client, err := cache.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, fmt.Errorf("connect cache backend: %w", err)
		}
		a.redisClient = client
		return cache.NewRedisPersister(client), nil
	case "file":
		return cache.NewFilePersister(cfg.CacheFile), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.CacheBackend)
	}
}

// Close releases external connections.
func (a *App) Close() error {
	if a.redisClient != nil {
		return a.redisClient.Close()
	}
	return nil
}
