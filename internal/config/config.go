// Package config loads the advisor configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/tair/shopping-advisor/pkg/cache"
	"github.com/tair/shopping-advisor/pkg/database"
	"github.com/tair/shopping-advisor/pkg/tracing"
)

// Config is the complete service configuration
type Config struct {
	Service        ServiceConfig
	Database       database.Config
	Redis          RedisConfig
	Kafka          KafkaConfig
	Auth           AuthConfig
	Tracing        tracing.Config
	Recommendation RecommendationConfig
}

type ServiceConfig struct {
	Name        string
	Environment string
	LogLevel    string
	HTTPPort    string
	GRPCPort    string
}

type RedisConfig struct {
	Enabled    bool
	Conn       cache.Config
	CatalogTTL time.Duration
	RateLimit  int
	RateWindow time.Duration
}

type KafkaConfig struct {
	Enabled bool
	Brokers []string
	GroupID string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type RecommendationConfig struct {
	ChatLimit        int
	MoodLimit        int
	MoodProfilesPath string
	CatalogSeedFile  string
}

// Load reads .env files if present and builds the config from the environment
func Load() (*Config, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, err
	}
	return FromEnv()
}

// loadEnvFiles loads ENV_FILE if set, otherwise .env. Missing files are ignored.
func loadEnvFiles() error {
	file := ".env"
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		file = envFile
	}
	if err := godotenv.Load(file); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load env file %s: %w", file, err)
	}
	return nil
}

// FromEnv builds the config from environment variables only
func FromEnv() (*Config, error) {
	cfg := &Config{
		Service: ServiceConfig{
			Name:        getEnv("OTEL_SERVICE_NAME", "shopping-advisor"),
			Environment: getEnv("ENVIRONMENT", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			HTTPPort:    getEnv("HTTP_PORT", "8080"),
			GRPCPort:    getEnv("GRPC_PORT", "9090"),
		},
		Database: database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "catalogdb"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Conn: cache.Config{
				Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
				Password: getEnv("REDIS_PASSWORD", ""),
			},
		},
		Kafka: KafkaConfig{
			GroupID: getEnv("KAFKA_GROUP_ID", "shopping-advisor"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
		},
		Tracing: tracing.Config{
			ServiceVersion: getEnv("SERVICE_VERSION", "1.0.0"),
			Endpoint:       getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
		},
		Recommendation: RecommendationConfig{
			MoodProfilesPath: getEnv("MOOD_PROFILES_PATH", ""),
			CatalogSeedFile:  getEnv("CATALOG_SEED_FILE", ""),
		},
	}
	cfg.Tracing.ServiceName = cfg.Service.Name
	cfg.Kafka.Brokers = splitList(getEnv("KAFKA_BROKERS", ""))
	cfg.Kafka.Enabled = len(cfg.Kafka.Brokers) > 0

	var err error
	parse := func(key string, fn func(string) error) {
		if err != nil {
			return
		}
		if v := os.Getenv(key); v != "" {
			if perr := fn(v); perr != nil {
				err = fmt.Errorf("invalid %s: %w", key, perr)
			}
		}
	}

	cfg.Database.MaxOpenConns = 25
	cfg.Database.MaxIdleConns = 5
	cfg.Database.ConnMaxLife = 5 * time.Minute
	cfg.Redis.Enabled = true
	cfg.Redis.CatalogTTL = 5 * time.Minute
	cfg.Redis.RateLimit = 100
	cfg.Redis.RateWindow = time.Minute
	cfg.Auth.TokenTTL = 24 * time.Hour
	cfg.Tracing.SampleRatio = 1
	cfg.Recommendation.ChatLimit = 5
	cfg.Recommendation.MoodLimit = 3

	parse("DB_MAX_OPEN_CONNS", intInto(&cfg.Database.MaxOpenConns))
	parse("DB_MAX_IDLE_CONNS", intInto(&cfg.Database.MaxIdleConns))
	parse("DB_CONN_MAX_LIFETIME", durationInto(&cfg.Database.ConnMaxLife))
	parse("REDIS_ENABLED", boolInto(&cfg.Redis.Enabled))
	parse("REDIS_DB", intInto(&cfg.Redis.Conn.DB))
	parse("CATALOG_CACHE_TTL", durationInto(&cfg.Redis.CatalogTTL))
	parse("RATE_LIMIT_REQUESTS", intInto(&cfg.Redis.RateLimit))
	parse("RATE_LIMIT_WINDOW", durationInto(&cfg.Redis.RateWindow))
	parse("KAFKA_ENABLED", boolInto(&cfg.Kafka.Enabled))
	parse("JWT_TTL", durationInto(&cfg.Auth.TokenTTL))
	parse("TRACE_SAMPLE_RATIO", floatInto(&cfg.Tracing.SampleRatio))
	parse("CHAT_RESULT_LIMIT", intInto(&cfg.Recommendation.ChatLimit))
	parse("MOOD_RESULT_LIMIT", intInto(&cfg.Recommendation.MoodLimit))
	if err != nil {
		return nil, err
	}

	if cfg.Kafka.Enabled && len(cfg.Kafka.Brokers) == 0 {
		return nil, fmt.Errorf("KAFKA_ENABLED is set but KAFKA_BROKERS is empty")
	}
	if cfg.Recommendation.ChatLimit <= 0 || cfg.Recommendation.MoodLimit <= 0 {
		return nil, fmt.Errorf("result limits must be positive")
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func intInto(dst *int) func(string) error {
	return func(v string) error {
		n, err := strconv.Atoi(v)
		if err == nil {
			*dst = n
		}
		return err
	}
}

func floatInto(dst *float64) func(string) error {
	return func(v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			*dst = f
		}
		return err
	}
}

func boolInto(dst *bool) func(string) error {
	return func(v string) error {
		b, err := strconv.ParseBool(v)
		if err == nil {
			*dst = b
		}
		return err
	}
}

func durationInto(dst *time.Duration) func(string) error {
	return func(v string) error {
		d, err := time.ParseDuration(v)
		if err == nil {
			*dst = d
		}
		return err
	}
}
