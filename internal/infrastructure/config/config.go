package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Session SessionConfig
	Auth    AuthConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

type SessionConfig struct {
	// Secret seals the session cookie. Required outside development;
	// rotating it invalidates every outstanding session.
	Secret     string        `env:"SESSION_SECRET"`
	CookieName string        `env:"SESSION_COOKIE, default=WebDawgFutures-session-cookie"`
	TTL        time.Duration `env:"SESSION_TTL,    default=168h"`
}

type AuthConfig struct {
	// BcryptCost 16 matches the reference deployment; lower it only in
	// throwaway environments.
	BcryptCost int `env:"BCRYPT_COST, default=16"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=webdawg_futures"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// IsProduction reports whether the process runs in a production-equivalent
// environment (secure cookies, JSON logs).
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.IsProduction() && cfg.Session.Secret == "" {
		return nil, fmt.Errorf("config: SESSION_SECRET is required in production")
	}
	return &cfg, nil
}
