package controllers

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	FoodListCachePrefix = "foods:v:"
	CacheVersionKey     = "foods:version"

	DefaultCacheTTL = 5 * time.Minute
)

// CacheManager handles the Redis response cache for list-shaped food reads.
// Keys embed a version number; writers invalidate every cached list at once
// by bumping the version. Any Redis failure is treated as a miss so the
// store remains the source of truth.
type CacheManager struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCacheManager(redis *redis.Client) *CacheManager {
	return &CacheManager{
		redis: redis,
		ttl:   DefaultCacheTTL,
	}
}

// GetList retrieves a cached response body for the given list key.
func (cm *CacheManager) GetList(ctx context.Context, key string) ([]byte, bool) {
	if cm.redis == nil {
		return nil, false
	}

	version, err := cm.getCacheVersion(ctx)
	if err != nil || version == 0 {
		return nil, false
	}

	data, err := cm.redis.Get(ctx, cm.versionedKey(version, key)).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetListAsync caches a response body without blocking the request.
func (cm *CacheManager) SetListAsync(key string, body []byte) {
	if cm.redis == nil {
		return
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		version, err := cm.getCacheVersion(bgCtx)
		if err != nil || version == 0 {
			return
		}

		if err := cm.redis.Set(bgCtx, cm.versionedKey(version, key), body, cm.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache food list", zap.Error(err), zap.String("key", key))
		}
	}()
}

// Invalidate drops every cached list by bumping the version.
func (cm *CacheManager) Invalidate(ctx context.Context) {
	if cm.redis == nil {
		return
	}

	if err := cm.redis.Incr(ctx, CacheVersionKey).Err(); err != nil {
		zap.L().Warn("Failed to invalidate food cache", zap.Error(err))
	}
}

func (cm *CacheManager) versionedKey(version int64, key string) string {
	return fmt.Sprintf("%s%d:%s", FoodListCachePrefix, version, key)
}

func (cm *CacheManager) getCacheVersion(ctx context.Context) (int64, error) {
	ver, err := cm.redis.Get(ctx, CacheVersionKey).Int64()
	if err == nil && ver > 0 {
		return ver, nil
	}
	if err == redis.Nil {
		// First access seeds the version; NX keeps concurrent seeds from racing.
		if err := cm.redis.SetNX(ctx, CacheVersionKey, 1, 0).Err(); err != nil {
			return 0, err
		}
		return 1, nil
	}
	return 0, err
}
