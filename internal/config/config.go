package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string   `mapstructure:"PORT"`
	Env            string   `mapstructure:"ENV"`
	DatabaseURL    string   `mapstructure:"DATABASE_URL"`
	DBMaxConns     int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns     int32    `mapstructure:"DB_MIN_CONNS"`
	CORSOrigins    []string `mapstructure:"CORS_ORIGINS"`
	RateLimitRPS   float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int      `mapstructure:"RATE_LIMIT_BURST"`
	SeedDemoData   bool     `mapstructure:"SEED_DEMO_DATA"`
	NLPLatencyMS   int      `mapstructure:"NLP_LATENCY_MS"`

	NphiesBaseURL      string `mapstructure:"NPHIES_BASE_URL"`
	NphiesClientID     string `mapstructure:"NPHIES_CLIENT_ID"`
	NphiesClientSecret string `mapstructure:"NPHIES_CLIENT_SECRET"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_RPS", 100)
	v.SetDefault("RATE_LIMIT_BURST", 200)
	v.SetDefault("SEED_DEMO_DATA", true)
	v.SetDefault("NLP_LATENCY_MS", 500)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("RATE_LIMIT_RPS")
	v.BindEnv("RATE_LIMIT_BURST")
	v.BindEnv("SEED_DEMO_DATA")
	v.BindEnv("NLP_LATENCY_MS")
	v.BindEnv("NPHIES_BASE_URL")
	v.BindEnv("NPHIES_CLIENT_ID")
	v.BindEnv("NPHIES_CLIENT_SECRET")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true when the server is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// UsePostgres reports whether a Postgres-backed store should be used.
// Without DATABASE_URL everything runs on the in-memory backend.
func (c *Config) UsePostgres() bool {
	return c.DatabaseURL != ""
}

// Validate checks that the configuration is safe to run. The in-memory
// backend is fine for demos, so DATABASE_URL stays optional, but the
// NPHIES credentials must be complete when a base URL is configured.
func (c *Config) Validate() error {
	if c.NLPLatencyMS < 0 || c.NLPLatencyMS > 10000 {
		return fmt.Errorf("NLP_LATENCY_MS must be between 0 and 10000, got %d", c.NLPLatencyMS)
	}
	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be positive, got %v", c.RateLimitRPS)
	}
	if c.RateLimitBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be positive, got %d", c.RateLimitBurst)
	}
	if c.NphiesBaseURL != "" {
		if c.NphiesClientID == "" || c.NphiesClientSecret == "" {
			return fmt.Errorf("NPHIES_CLIENT_ID and NPHIES_CLIENT_SECRET are required when NPHIES_BASE_URL is set")
		}
	}
	if c.IsProduction() && !c.UsePostgres() {
		return fmt.Errorf("DATABASE_URL is required in production; the in-memory backend is for development only")
	}
	return nil
}
