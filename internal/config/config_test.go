package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "shopping-advisor", cfg.Service.Name)
	assert.Equal(t, "development", cfg.Service.Environment)
	assert.Equal(t, "8080", cfg.Service.HTTPPort)
	assert.Equal(t, "9090", cfg.Service.GRPCPort)
	assert.Equal(t, "catalogdb", cfg.Database.DBName)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Redis.CatalogTTL)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, 5, cfg.Recommendation.ChatLimit)
	assert.Equal(t, 3, cfg.Recommendation.MoodLimit)
	assert.Equal(t, "shopping-advisor", cfg.Tracing.ServiceName)
	assert.Equal(t, 1.0, cfg.Tracing.SampleRatio)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("OTEL_SERVICE_NAME", "advisor-test")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("CATALOG_CACHE_TTL", "30s")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("CHAT_RESULT_LIMIT", "4")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "advisor-test", cfg.Tracing.ServiceName)
	assert.Equal(t, "production", cfg.Service.Environment)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Kafka.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Redis.CatalogTTL)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 4, cfg.Recommendation.ChatLimit)
}

func TestFromEnvRejectsInvalidValues(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "many")
	_, err := FromEnv()
	assert.ErrorContains(t, err, "DB_MAX_OPEN_CONNS")
}

func TestFromEnvRejectsKafkaWithoutBrokers(t *testing.T) {
	t.Setenv("KAFKA_ENABLED", "true")
	_, err := FromEnv()
	assert.Error(t, err)
}

func TestFromEnvRejectsNonPositiveLimits(t *testing.T) {
	t.Setenv("MOOD_RESULT_LIMIT", "0")
	_, err := FromEnv()
	assert.Error(t, err)
}

func TestLoadReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "advisor.env")
	require.NoError(t, os.WriteFile(path, []byte("HTTP_PORT=18080\n"), 0o600))
	t.Setenv("ENV_FILE", path)
	t.Setenv("HTTP_PORT", "")
	require.NoError(t, os.Unsetenv("HTTP_PORT"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "18080", cfg.Service.HTTPPort)
}

func TestLoadIgnoresMissingEnvFile(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	_, err := Load()
	assert.NoError(t, err)
}
