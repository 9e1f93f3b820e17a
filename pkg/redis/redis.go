package redis

import (
	"context"
	"fmt"
	"log"
	"time"

	"hearth/pkg/config"

	"github.com/go-redis/redis/v8"
)

type RedisClient struct {
	Client *redis.Client
	ttl    time.Duration
}

// Redis 클라이언트 생성
func NewRedisClient(cfg config.RedisConfig) (*RedisClient, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// 연결 확인
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		rdb.Close()
		return nil, err
	}

	return NewRedisClientFrom(rdb, cfg.ReportTTL), nil
}

// NewRedisClientFrom 이미 생성된 클라이언트를 감싼다
func NewRedisClientFrom(rdb *redis.Client, ttl time.Duration) *RedisClient {
	return &RedisClient{Client: rdb, ttl: ttl}
}

// 데이터 저장
func (r *RedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	err := r.Client.Set(ctx, key, value, expiration).Err()
	if err != nil {
		log.Printf("Failed to set key %s in Redis: %v", key, err)
		return err
	}
	return nil
}

// 데이터 조회, 키가 없으면 redis.Nil
func (r *RedisClient) Get(ctx context.Context, key string) (string, error) {
	val, err := r.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", err
	} else if err != nil {
		log.Printf("Failed to get key %s from Redis: %v", key, err)
		return "", fmt.Errorf("get %s: %w", key, err)
	}
	return val, nil
}

// 데이터 삭제
func (r *RedisClient) Delete(ctx context.Context, key string) error {
	err := r.Client.Del(ctx, key).Err()
	if err != nil {
		log.Printf("Failed to delete key %s from Redis: %v", key, err)
		return err
	}
	return nil
}

func (r *RedisClient) Close() error {
	return r.Client.Close()
}
