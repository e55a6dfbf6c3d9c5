package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"laundry-service/internal/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	keyProductTypes  = "laundry:product_types"
	keyPendingOrders = "laundry:orders:pending"
)

// RedisClient реализует service.Cache. Любая ошибка redis - промах, а не отказ операции.
type RedisClient struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewRedisClient(addr, password string, db int, ttl time.Duration, log *zap.Logger) (*RedisClient, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Info("Redis подключен", zap.String("addr", addr))

	return &RedisClient{
		client: rdb,
		ttl:    ttl,
		log:    log,
	}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

func (r *RedisClient) GetProductTypes(ctx context.Context) ([]models.ProductType, bool) {
	var list []models.ProductType
	return list, r.getJSON(ctx, keyProductTypes, &list)
}

func (r *RedisClient) SetProductTypes(ctx context.Context, list []models.ProductType) {
	r.setJSON(ctx, keyProductTypes, list)
}

func (r *RedisClient) GetPendingOrders(ctx context.Context) ([]models.Order, bool) {
	var list []models.Order
	return list, r.getJSON(ctx, keyPendingOrders, &list)
}

func (r *RedisClient) SetPendingOrders(ctx context.Context, list []models.Order) {
	r.setJSON(ctx, keyPendingOrders, list)
}

func (r *RedisClient) InvalidatePendingOrders(ctx context.Context) {
	if err := r.client.Del(ctx, keyPendingOrders).Err(); err != nil {
		r.log.Warn("redis del failed", zap.String("key", keyPendingOrders), zap.Error(err))
	}
}

func (r *RedisClient) getJSON(ctx context.Context, key string, dst any) bool {
	raw, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		r.log.Warn("redis get failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		r.log.Warn("redis value corrupted", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (r *RedisClient) setJSON(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		r.log.Warn("redis marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := r.client.Set(ctx, key, raw, r.ttl).Err(); err != nil {
		r.log.Warn("redis set failed", zap.String("key", key), zap.Error(err))
	}
}
