package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"github.com/zizouhuweidi/trivia/internal/database"
)

// Config holds the runtime configuration of the API
type Config struct {
	HTTPAddr         string
	ShutdownTimeout  time.Duration
	Env              string
	LogLevel         string
	QuestionsPerPage int
	Postgres         database.PostgresConfig
	Redis            database.RedisConfig
	RateLimit        RateLimitConfig
}

// RateLimitConfig holds the per-client request limit. It only applies when Redis is configured.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// IsDevelopment reports whether the API runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads the configuration from the environment. When envFile exists it is read first
// and environment variables take precedence over its values.
func Load(envFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			v.SetConfigFile(envFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
			}
		}
	}

	cfg := &Config{
		HTTPAddr:         v.GetString("HTTP_ADDR"),
		ShutdownTimeout:  v.GetDuration("SHUTDOWN_TIMEOUT"),
		Env:              v.GetString("APP_ENV"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		QuestionsPerPage: v.GetInt("QUESTIONS_PER_PAGE"),
		Postgres: database.PostgresConfig{
			Host:     v.GetString("POSTGRES_HOST"),
			Port:     v.GetString("POSTGRES_PORT"),
			User:     v.GetString("POSTGRES_USER"),
			Password: v.GetString("POSTGRES_PASSWORD"),
			DBName:   v.GetString("POSTGRES_DB"),
			SSLMode:  v.GetString("POSTGRES_SSLMODE"),
			MaxConns: v.GetInt32("POSTGRES_MAX_CONNS"),
		},
		Redis: database.RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		RateLimit: RateLimitConfig{
			Requests: v.GetInt("RATE_LIMIT"),
			Window:   v.GetDuration("RATE_LIMIT_WINDOW"),
		},
	}

	if cfg.QuestionsPerPage <= 0 {
		return nil, fmt.Errorf("QUESTIONS_PER_PAGE must be positive, got %d", cfg.QuestionsPerPage)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("QUESTIONS_PER_PAGE", 10)

	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", "5432")
	v.SetDefault("POSTGRES_USER", "postgres")
	v.SetDefault("POSTGRES_PASSWORD", "postgres")
	v.SetDefault("POSTGRES_DB", "trivia")
	v.SetDefault("POSTGRES_SSLMODE", "disable")
	v.SetDefault("POSTGRES_MAX_CONNS", 10)

	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("RATE_LIMIT", 120)
	v.SetDefault("RATE_LIMIT_WINDOW", time.Minute)
}
