package config

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig backs rate limiting and gallery event pub/sub. REDIS_URL, when
// set, takes precedence over the individual host settings.
type RedisConfig struct {
	URL         string
	Host        string
	Port        string
	Password    string
	DB          int
	PoolSize    int
	DialTimeout time.Duration
}

func DefaultRedisConfig() *RedisConfig {
	return &RedisConfig{
		URL:         getEnvWithDefault("REDIS_URL", ""),
		Host:        getEnvWithDefault("REDIS_HOST", "localhost"),
		Port:        getEnvWithDefault("REDIS_PORT", "6379"),
		Password:    getEnvWithDefault("REDIS_PASSWORD", ""),
		DB:          getEnvIntWithDefault("REDIS_DB", 0),
		PoolSize:    getEnvIntWithDefault("REDIS_POOL_SIZE", 0),
		DialTimeout: getEnvDurationWithDefault("REDIS_DIAL_TIMEOUT", 5*time.Second),
	}
}

// Options builds client options; a zero PoolSize keeps the go-redis default.
func (c *RedisConfig) Options() (*redis.Options, error) {
	var opts *redis.Options
	if c.URL != "" {
		parsed, err := redis.ParseURL(c.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{
			Addr:     fmt.Sprintf("%s:%s", c.Host, c.Port),
			Password: c.Password,
			DB:       c.DB,
		}
	}

	if c.PoolSize > 0 {
		opts.PoolSize = c.PoolSize
	}
	opts.DialTimeout = c.DialTimeout
	return opts, nil
}

func (c *RedisConfig) GetClient(ctx context.Context) (*redis.Client, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", opts.Addr, err)
	}

	return client, nil
}
