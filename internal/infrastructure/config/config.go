package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
	"golang.org/x/text/language"
)

type Config struct {
	Port     string `env:"PORT, default=4000"`
	Env      string `env:"ENV, default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// CORSAllowedOrigins lists the browser origins of the web client.
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS, default=http://localhost:5173,http://127.0.0.1:5173"`
	CollationLocale    string   `env:"COLLATION_LOCALE, default=vi"`
	ImageDir           string   `env:"IMAGE_DIR, default=img"`

	Auth  AuthConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type AuthConfig struct {
	JWTSecret        string        `env:"JWT_SECRET, default=secret"`
	TokenTTL         time.Duration `env:"TOKEN_TTL, default=24h"`
	LoginMaxAttempts int           `env:"LOGIN_MAX_ATTEMPTS, default=5"`
	LoginLockout     time.Duration `env:"LOGIN_LOCKOUT, default=15m"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB, default=hotel_management"`
}

// RedisConfig is optional; an empty address turns login throttling off.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// IsDevelopment reports whether human-friendly logging should be used.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// Locale parses CollationLocale.
func (c *Config) Locale() (language.Tag, error) {
	tag, err := language.Parse(c.CollationLocale)
	if err != nil {
		return language.Und, fmt.Errorf("config: invalid COLLATION_LOCALE %q: %w", c.CollationLocale, err)
	}
	return tag, nil
}

// Load reads a .env file when present, then the process environment.
// Variables already set in the environment win over the file.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if _, err := cfg.Locale(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
