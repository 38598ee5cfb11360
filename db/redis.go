package db

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client
var redisCtx = context.Background()

const (
	AnalyzeQueueKey = "newscheck:queue:analyze"
	DeadLetterKey   = "newscheck:queue:failed"
)

var ErrNoRedisURL = errors.New("REDIS_URL is not set")

// ErrQueueEmpty is returned by PopFromQueue when the timeout elapses.
var ErrQueueEmpty = errors.New("queue empty")

func ConnectRedis(redisURL string) error {
	if redisURL == "" {
		return ErrNoRedisURL
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	Redis = redis.NewClient(opt)

	_, err = Redis.Ping(redisCtx).Result()
	return err
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}

func PushToQueue(queueKey string, data string) error {
	return Redis.LPush(redisCtx, queueKey, data).Err()
}

func PopFromQueue(queueKey string, timeout time.Duration) (string, error) {
	result, err := Redis.BRPop(redisCtx, timeout, queueKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrQueueEmpty
	}
	if err != nil {
		return "", err
	}
	return result[1], nil
}

func GetQueueLength(queueKey string) (int64, error) {
	return Redis.LLen(redisCtx, queueKey).Result()
}
