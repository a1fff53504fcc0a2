package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	AppEnv     string `env:"APP_ENV,default=development"`
	ServerPort int    `env:"SERVER_PORT,default=10000"`

	JWT       JWTConfig       `env:",prefix=JWT_"`
	RateLimit RateLimitConfig `env:",prefix=RATE_LIMIT_"`
	Upload    UploadConfig    `env:",prefix=UPLOAD_"`
}

type JWTConfig struct {
	SecretKey       string `env:"SECRET_KEY"`
	ExpirationHours int    `env:"EXPIRATION_HOURS,default=24"`
}

type RateLimitConfig struct {
	// Global is requests per minute per client IP across the whole API.
	Global int `env:"GLOBAL,default=10000"`
	// Attempts bounds code-guessing on login, upload and delete per IP.
	Attempts int           `env:"ATTEMPTS,default=20"`
	Window   time.Duration `env:"WINDOW,default=1m"`
}

type UploadConfig struct {
	MaxFileSize  int64  `env:"MAX_FILE_SIZE,default=5242880"`
	MaxFiles     int    `env:"MAX_FILES,default=10"`
	AutoApprove  bool   `env:"AUTO_APPROVE,default=true"`
	CacheControl string `env:"CACHE_CONTROL,default=max-age=3600"`
}

func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}
	if cfg.JWT.SecretKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY is required")
	}
	return &cfg, nil
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWT.ExpirationHours) * time.Hour
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
