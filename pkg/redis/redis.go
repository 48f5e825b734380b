package redis

import (
	"context"
	"errors"
	"fmt"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"os"
	"strconv"
	"time"
)

type IRedis interface {
	SetBlogList(ctx context.Context, company string, payload []byte, expiration time.Duration) error
	GetBlogList(ctx context.Context, company string) ([]byte, error)
	InvalidateBlogList(ctx context.Context, company string) error
}

// ErrCacheMiss is returned by GetBlogList when no entry exists for the tenant.
var ErrCacheMiss = errors.New("cache miss")

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func blogListKey(company string) string {
	return fmt.Sprintf("blogs:%s", company)
}

func (r *redisClient) SetBlogList(ctx context.Context, company string, payload []byte, expiration time.Duration) error {
	key := blogListKey(company)
	if err := r.client.Set(ctx, key, payload, expiration).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error caching blog list for %s: %v", company, err))
		return err
	}
	return nil
}

func (r *redisClient) GetBlogList(ctx context.Context, company string) ([]byte, error) {
	val, err := r.client.Get(ctx, blogListKey(company)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error getting blog list cache for %s: %v", company, err))
		return nil, err
	}
	return val, nil
}

func (r *redisClient) InvalidateBlogList(ctx context.Context, company string) error {
	result, err := r.client.Del(ctx, blogListKey(company)).Result()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error invalidating blog list cache for %s: %v", company, err))
		return err
	}

	if result == 0 {
		logrus.Debug(fmt.Sprintf("Blog list cache for %s was already empty", company))
	}

	return nil
}
