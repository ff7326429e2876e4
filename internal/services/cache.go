package services

import (
	"context"
	"time"

	"jurisight/internal/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const listingKeyPrefix = "public:articles"

// CacheService fronts the public published-article listings with Redis.
// Every failure degrades to a miss; the cache must never take a request
// down with it.
type CacheService struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCacheService(rdb *redis.Client) *CacheService {
	return &CacheService{rdb: rdb, ttl: 5 * time.Minute}
}

func (c *CacheService) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.WithCtx(ctx).Warn("cache get failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return data, true
}

func (c *CacheService) Set(ctx context.Context, key string, data []byte) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		logger.WithCtx(ctx).Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// InvalidateListings drops every cached public listing. Called when an
// article becomes published or disappears; failures are logged and
// swallowed so they never surface as the primary request's failure.
func (c *CacheService) InvalidateListings(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	keys, err := c.rdb.Keys(ctx, listingKeyPrefix+"*").Result()
	if err != nil {
		logger.WithCtx(ctx).Warn("cache invalidation scan failed", zap.Error(err))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		logger.WithCtx(ctx).Warn("cache invalidation failed", zap.Int("keys", len(keys)), zap.Error(err))
		return
	}
	logger.WithCtx(ctx).Debug("public listing cache invalidated", zap.Int("keys", len(keys)))
}
