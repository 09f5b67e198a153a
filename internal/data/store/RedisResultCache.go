package store

import (
	"context"
	"fmt"
	"time"

	"github.com/estla/skillserver/internal/config"
	"github.com/estla/skillserver/internal/data/redisStore"
	"github.com/estla/skillserver/pkg/logger_i"
)

type RedisResultCache struct {
	store  *redisStore.Store
	ttl    time.Duration
	logger *logger_i.Logger
}

// GetRedisResultCache returns nil when redis is unreachable.
func GetRedisResultCache(ctx context.Context, opts redisStore.ConnectionOptions) *RedisResultCache {
	s := redisStore.GetRedisStore(ctx, opts, config.RedisResultCache)
	if s == nil {
		return nil
	}
	return NewRedisResultCache(s, config.RedisResultCacheTTL)
}

func NewRedisResultCache(s *redisStore.Store, ttl time.Duration) *RedisResultCache {
	return &RedisResultCache{
		store:  s,
		ttl:    ttl,
		logger: logger_i.NewLogger("ResultCache"),
	}
}

func (c *RedisResultCache) Get(ctx context.Context, key string) (CachedSearch, error) {
	var cached CachedSearch
	err := c.store.GetJSON(ctx, key, &cached)
	if c.store.IsNil(err) {
		return CachedSearch{}, ErrCacheMiss
	} else if err != nil {
		return CachedSearch{}, fmt.Errorf("read cached search: %w", err)
	}
	return cached, nil
}

func (c *RedisResultCache) Set(ctx context.Context, key string, value CachedSearch) error {
	if err := c.store.SetJSON(ctx, key, value, c.ttl); err != nil {
		return fmt.Errorf("write cached search: %w", err)
	}
	c.logger.WithTrace(ctx, config.TRACE_ID_KEY).Debug("Cached search", "key", key, "results", len(value.Positions))
	return nil
}
