package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

type Config struct {
	Port        string `env:"PORT" env-default:"8080"`
	Environment string `env:"ENVIRONMENT" env-default:"development"`

	// Storage
	StorageDriver    string `env:"STORAGE_DRIVER" env-default:"postgres"`
	DBUrl            string `env:"DATABASE_URL"`
	SQLitePath       string `env:"SQLITE_PATH" env-default:"jobboard.db"`
	DBConnectRetries uint64 `env:"DB_CONNECT_RETRIES" env-default:"5"`

	// Auth
	JWTSecret  string        `env:"JWT_SECRET"`
	JWTIssuer  string        `env:"JWT_ISSUER" env-default:"go-jobboard-api"`
	JWTTTL     time.Duration `env:"JWT_TTL" env-default:"24h"`
	BcryptCost int           `env:"BCRYPT_COST" env-default:"10"`

	// HTTP
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:3000"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"5s"`

	// Redis (optional, rate limiting falls back to memory without it)
	RedisURL      string `env:"REDIS_URL"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	// Rate Limiting
	RateLimitWindowSeconds   int `env:"RATE_LIMIT_WINDOW_SECONDS" env-default:"60"`
	RateLimitAuthThreshold   int `env:"RATE_LIMIT_AUTH_THRESHOLD" env-default:"10"`
	RateLimitGlobalThreshold int `env:"RATE_LIMIT_GLOBAL_THRESHOLD" env-default:"100"`
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func LoadConfig() (*Config, error) {
	// Local only: a missing .env is fine, the process environment wins either way.
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.StorageDriver == StoragePostgres && cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageDriver {
	case StoragePostgres, StorageSQLite:
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.StorageDriver)
	}

	if c.JWTSecret == "" {
		if c.IsProduction() {
			return errors.New("JWT_SECRET is required in production")
		}
		log.Println("WARNING: JWT_SECRET not set, using an insecure development secret.")
		c.JWTSecret = "dev-secret-change-me"
	}

	for i, origin := range c.CORSAllowedOrigins {
		c.CORSAllowedOrigins[i] = strings.TrimRight(strings.TrimSpace(origin), "/")
	}
	return nil
}
