package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTL constants
const (
	TTLInterpretation = 24 * time.Hour   // interpretation results keyed by request hash
	TTLDefault        = 5 * time.Minute  // fallback
	TTLShort          = 1 * time.Minute  // near-realtime values
)

// Cache key prefixes
const (
	PrefixInterpretation = "interp:"
	PrefixRateLimit      = "api:ratelimit:"
)

// ErrMiss signals a cache miss. An unconfigured cache reports every read
// as a miss.
var ErrMiss = errors.New("cache miss")

// Service is the redis-backed cache. All operations degrade to silent
// no-ops when no client is configured: reads miss, writes are dropped.
type Service interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) (bool, error)
	Exists(ctx context.Context, key string) (bool, error)

	// Interpretation result cache
	GetInterpretation(ctx context.Context, key string, dest interface{}) error
	SetInterpretation(ctx context.Context, key string, value interface{}) error

	IsAvailable() bool
	Ping(ctx context.Context) error
}

// redisCache implements Service over go-redis
type redisCache struct {
	client *redis.Client
}

// NewService creates a cache service. A nil client is allowed and yields
// the degraded no-op behavior.
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

// IsAvailable reports whether a redis client is configured
func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

// Ping tests the redis connection
func (c *redisCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	return c.client.Ping(ctx).Err()
}

// Get reads a JSON value into dest. Returns ErrMiss when absent or when
// the cache is unconfigured.
func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return ErrMiss
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrMiss
	}
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

// Set stores a JSON value with the given TTL
func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, ttl).Err()
}

// Delete removes keys, reporting whether anything was deleted
func (c *redisCache) Delete(ctx context.Context, keys ...string) (bool, error) {
	if c.client == nil {
		return false, nil
	}
	n, err := c.client.Del(ctx, keys...).Result()
	return n > 0, err
}

// Exists checks key presence
func (c *redisCache) Exists(ctx context.Context, key string) (bool, error) {
	if c.client == nil {
		return false, nil
	}
	n, err := c.client.Exists(ctx, key).Result()
	return n > 0, err
}

func (c *redisCache) interpretationKey(key string) string {
	return PrefixInterpretation + key
}

// GetInterpretation reads a cached interpretation payload by request hash
func (c *redisCache) GetInterpretation(ctx context.Context, key string, dest interface{}) error {
	return c.Get(ctx, c.interpretationKey(key), dest)
}

// SetInterpretation stores an interpretation payload with the fixed TTL
func (c *redisCache) SetInterpretation(ctx context.Context, key string, value interface{}) error {
	return c.Set(ctx, c.interpretationKey(key), value, TTLInterpretation)
}
