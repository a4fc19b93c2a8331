package redis

import (
	"FinanceTracker/pkg/log"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type IRedis interface {
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	GetInt(ctx context.Context, key string) (int64, error)
	Incr(ctx context.Context, key string) (int64, error)
	Close() error
}

type redisClient struct {
	client *redis.Client
}

// New connects using REDIS_ADDRESS, REDIS_PASSWORD and REDIS_DB. It returns
// nil, nil when REDIS_ADDRESS is unset so callers can run without a cache.
func New() (IRedis, error) {
	redisAddr := os.Getenv("REDIS_ADDRESS")
	if redisAddr == "" {
		logrus.Info("REDIS_ADDRESS not set, running without redis")
		return nil, nil
	}

	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
		_ = client.Close()
		return nil, err
	}
	logrus.Info("Successfully connected to Redis")

	return &redisClient{client: client}, nil
}

func NewFromClient(client *redis.Client) IRedis {
	return &redisClient{client: client}
}

func (r *redisClient) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		log.WithRequestID(ctx).WithField("key", key).Debug("Cache miss")
		return false, nil
	} else if err != nil {
		log.WithRequestID(ctx).WithFields(log.Fields{
			"key":   key,
			"error": err.Error(),
		}).Error("Error getting key")
		return false, err
	}

	if err := jsoniter.Unmarshal(val, dest); err != nil {
		return false, fmt.Errorf("decode cached value for %s: %w", key, err)
	}
	return true, nil
}

func (r *redisClient) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := jsoniter.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode value for %s: %w", key, err)
	}

	if err := r.client.Set(ctx, key, data, expiration).Err(); err != nil {
		log.WithRequestID(ctx).WithFields(log.Fields{
			"key":   key,
			"error": err.Error(),
		}).Error("Error setting key")
		return err
	}
	return nil
}

// GetInt returns 0 for a missing key.
func (r *redisClient) GetInt(ctx context.Context, key string) (int64, error) {
	val, err := r.client.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return val, err
}

func (r *redisClient) Incr(ctx context.Context, key string) (int64, error) {
	return r.client.Incr(ctx, key).Result()
}

func (r *redisClient) Close() error {
	return r.client.Close()
}
