// Package config loads process configuration from environment variables.
// The resulting Config is read-only after Load and is passed explicitly
// into constructors, never consulted as ambient global state.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,       default=5000"`
	Env      string `env:"ENV,        default=development"`
	LogLevel string `env:"LOG_LEVEL,  default=info"`

	// JWTSecret falls back to an insecure default for local development
	// only; Validate rejects the default in production.
	JWTSecret  string        `env:"JWT_SECRET,  default=your-secret-key"`
	TokenTTL   time.Duration `env:"TOKEN_TTL,   default=24h"`
	BcryptCost int           `env:"BCRYPT_COST, default=10"`

	MySQL MySQLConfig
	Redis RedisConfig

	MigrationsDir string `env:"MIGRATIONS_DIR, default=migrations"`
}

type MySQLConfig struct {
	User     string `env:"DB_USER, default=ims"`
	Password string `env:"DB_PASS"`
	Host     string `env:"DB_HOST, default=localhost"`
	Port     string `env:"DB_PORT, default=3306"`
	Name     string `env:"DB_NAME, default=ims"`
}

// DSN renders the go-sql-driver connection string. parseTime maps DATETIME
// columns to time.Time; loc=UTC keeps stored timestamps consistent;
// multiStatements is required by the migration runner.
func (c MySQLConfig) DSN() string {
	auth := c.User
	if c.Password != "" {
		auth = fmt.Sprintf("%s:%s", c.User, c.Password)
	}
	return fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC&multiStatements=true",
		auth, c.Host, c.Port, c.Name)
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate enforces the settings that must never reach production with
// development defaults.
func (c *Config) Validate() error {
	if c.Env == "production" && c.JWTSecret == "your-secret-key" {
		return fmt.Errorf("config: JWT_SECRET must be set in production")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("config: TOKEN_TTL must be positive")
	}
	return nil
}
