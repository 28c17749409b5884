package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// storageKey is the fixed key the whole serialized cache lives under.
const storageKey = "upskills:catalog_cache"

// NewRedisClient creates a Redis client and verifies the connection.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// RedisPersister keeps the cache state in a single Redis key.
type RedisPersister struct {
	client  *redis.Client
	key     string
	timeout time.Duration
}

// NewRedisPersister creates a persister backed by the given Redis client.
func NewRedisPersister(client *redis.Client) *RedisPersister {
	return &RedisPersister{
		client:  client,
		key:     storageKey,
		timeout: 3 * time.Second,
	}
}

// Load reads the cache record. A missing key is not an error.
func (p *RedisPersister) Load(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	data, err := p.client.Get(ctx, p.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get cache state: %w", err)
	}
	return data, nil
}

// Save replaces the cache record. Freshness is judged per entry on read, so
// the key itself does not expire.
func (p *RedisPersister) Save(ctx context.Context, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.client.Set(ctx, p.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set cache state: %w", err)
	}
	return nil
}
