package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"newscheck/internal/model"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "newscheck:analysis:"

// ResultCache keeps finished analyses in Redis keyed by the text hash.
type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewResultCache(client *redis.Client, ttl time.Duration) *ResultCache {
	return &ResultCache{client: client, ttl: ttl}
}

func (c *ResultCache) Get(ctx context.Context, key string) (*model.Analysis, error) {
	data, err := c.client.Get(ctx, cacheKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var a model.Analysis
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *ResultCache) Set(ctx context.Context, key string, a *model.Analysis) error {
	data, err := json.Marshal(a)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKeyPrefix+key, data, c.ttl).Err()
}
