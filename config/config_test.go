package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func setRequired(t *testing.T) {
	t.Helper()
	for k, v := range map[string]string{
		"APP_PORT": ":8080", "GRPC_PORT": ":9090",
		"DB_HOST": "localhost", "DB_PORT": "5432", "DB_USER": "u",
		"DB_PASSWORD": "p", "DB_NAME": "laundry", "DB_SSLMODE": "disable",
	} {
		t.Setenv(k, v)
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("KAFKA_BROKERS", " k1:9092, ,k2:9092 ")
	t.Setenv("CACHE_TTL_SECONDS", "oops")

	cfg := Load(zap.NewNop())
	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, "laundry", cfg.DB.Name)
	assert.Equal(t, "Asia/Ho_Chi_Minh", cfg.Location.String())
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 60*time.Second, cfg.Redis.TTL)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "laundry.orders", cfg.Kafka.Topic)
	assert.False(t, cfg.Auth.Enabled)
}

func TestLoad_MissingRequiredPanics(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_HOST", "")
	// пустое значение считается заданным; панику даёт только отсутствие переменной
	assert.NotPanics(t, func() { Load(zap.NewNop()) })

	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("JWT_SECRET", "")
	assert.Panics(t, func() { Load(zap.NewNop()) })
}

func TestLoadLocation_Unknown(t *testing.T) {
	assert.Equal(t, time.UTC, loadLocation("Mars/Olympus", zap.NewNop()))
}
