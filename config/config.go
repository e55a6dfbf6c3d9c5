package config

import (
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"laundry-service/internal/database"

	"go.uber.org/zap"
)

type Config struct {
	Port     string
	GRPCPort string
	Location *time.Location
	DB       DB
	Redis    Redis
	Kafka    Kafka
	Auth     Auth
}

type DB struct {
	database.Config
}

type Redis struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type Kafka struct {
	Brokers []string
	Topic   string
}

type Auth struct {
	Enabled bool
	Secret  string
	Issuer  string
}

func Load(log *zap.Logger) *Config {
	cfg := &Config{
		Port:     getEnv("APP_PORT", log),
		GRPCPort: getEnv("GRPC_PORT", log),
		Location: loadLocation(getEnvDefault("TIMEZONE", "Asia/Ho_Chi_Minh"), log),
		DB: DB{
			Config: database.Config{
				Host:     getEnv("DB_HOST", log),
				Port:     getEnv("DB_PORT", log),
				User:     getEnv("DB_USER", log),
				Password: getEnv("DB_PASSWORD", log),
				Name:     getEnv("DB_NAME", log),
				SSLMode:  getEnv("DB_SSLMODE", log),
			},
		},
		Redis: Redis{
			Enabled:  getEnvDefault("REDIS_ENABLED", "false") == "true",
			Addr:     getEnvDefault("REDIS_ADDR", "localhost:6379"),
			Password: getEnvDefault("REDIS_PASSWORD", ""),
			DB:       atoiDefault(getEnvDefault("REDIS_DB", "0"), 0),
			TTL:      time.Duration(atoiDefault(getEnvDefault("CACHE_TTL_SECONDS", "60"), 60)) * time.Second,
		},
		Kafka: Kafka{
			Brokers: splitAndTrim(os.Getenv("KAFKA_BROKERS")),
			Topic:   getEnvDefault("KAFKA_TOPIC_ORDERS", "laundry.orders"),
		},
		Auth: Auth{
			Enabled: getEnvDefault("AUTH_ENABLED", "false") == "true",
			Secret:  os.Getenv("JWT_SECRET"),
			Issuer:  getEnvDefault("JWT_ISSUER", "laundry-service"),
		},
	}

	if cfg.Auth.Enabled && cfg.Auth.Secret == "" {
		log.Error("AUTH_ENABLED=true, но JWT_SECRET не задан")
		panic("missing required environment variable: JWT_SECRET")
	}
	return cfg
}

func getEnv(key string, log *zap.Logger) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	log.Error("Обязательная переменная окружения не установлена", zap.String("key", key))
	panic("missing required environment variable: " + key)
}

func getEnvDefault(key, def string) string {
	if val, exists := os.LookupEnv(key); exists && val != "" {
		return val
	}
	return def
}

func loadLocation(name string, log *zap.Logger) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Warn("Неизвестная временная зона, используется UTC", zap.String("tz", name), zap.Error(err))
		return time.UTC
	}
	return loc
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := []string{}
	for _, p := range strings.Split(s, ",") {
		pt := strings.TrimSpace(p)
		if pt != "" {
			parts = append(parts, pt)
		}
	}
	return parts
}
