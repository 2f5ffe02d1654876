package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bizdesk-server/internal/config"
	"bizdesk-server/internal/observability"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const lockPrefix = "bizdesk:lock:"

var ErrNotInitialized = errors.New("redis client not initialized")

// releaseScript deletes the lock only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// Client wraps the Redis client with observability
type Client struct {
	client *redis.Client
	logger *observability.Logger
}

// NewClient creates a new Redis client. A disabled configuration yields a nil
// client, which callers treat as "run without locks".
func NewClient(cfg config.RedisConfig, logger *observability.Logger) (*Client, error) {
	if !cfg.Enabled {
		logger.Info(context.Background(), "Redis is disabled, skipping client initialization")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "host", Value: cfg.Host},
		observability.Field{Key: "port", Value: cfg.Port},
		observability.Field{Key: "db", Value: cfg.DB},
	)
	logger.Info(ctx, "successfully connected to Redis")

	return NewFromClient(client, logger), nil
}

func NewFromClient(client *redis.Client, logger *observability.Logger) *Client {
	return &Client{
		client: client,
		logger: logger,
	}
}

// TryLock takes the named lock for ttl. It returns acquired=false when another
// holder has it. The returned release function is safe to call after expiry
// and never removes a lock taken over by someone else.
func (c *Client) TryLock(ctx context.Context, name string, ttl time.Duration) (release func(context.Context) error, acquired bool, err error) {
	if !c.IsEnabled() {
		return nil, false, ErrNotInitialized
	}

	key := lockPrefix + name
	token := uuid.NewString()
	ok, err := c.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("failed to acquire lock %s: %w", name, err)
	}
	if !ok {
		return nil, false, nil
	}

	release = func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, c.client, []string{key}, token).Err(); err != nil {
			return fmt.Errorf("failed to release lock %s: %w", name, err)
		}
		return nil
	}
	return release, true, nil
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// IsEnabled returns whether Redis is enabled
func (c *Client) IsEnabled() bool {
	return c != nil && c.client != nil
}
