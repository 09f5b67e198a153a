package redisStore

import (
	"context"
	"fmt"
	"sync"

	"github.com/estla/skillserver/internal/config"
	"github.com/estla/skillserver/pkg/logger_i"
	"github.com/redis/go-redis/v9"
)

var (
	instances = make(map[int]*Store)
	mu        sync.RWMutex
	once      sync.Once
)

type Store struct {
	client *redis.Client
	Type   int
	logger *logger_i.Logger
}

type ConnectionOptions struct {
	Addr     string
	Password string
}

// GetRedisStore returns the shared store for one redis database, creating and
// pinging it on first use. It returns nil when redis cannot be reached.
// All stores are closed once ctx is cancelled.
func GetRedisStore(ctx context.Context, opts ConnectionOptions, dbType int) *Store {
	mu.RLock()
	instance, exists := instances[dbType]
	mu.RUnlock()

	if exists {
		return instance
	}

	mu.Lock()
	defer mu.Unlock()

	if instance, exists = instances[dbType]; exists {
		return instance
	}
	return createNewStore(ctx, opts, dbType)
}

func closeRedisStores(ctx context.Context) {
	<-ctx.Done()
	logger := logger_i.NewLogger("Redis Store")
	logger.Info("Closing Redis Stores")
	mu.Lock()
	defer mu.Unlock()
	for db, store := range instances {
		if err := store.client.Close(); err != nil {
			logger.Error("Error closing redis client", "db", db, "error", err)
		}
		delete(instances, db)
	}
	logger.Info("Redis Stores closed")
}

func createNewStore(ctx context.Context, opts ConnectionOptions, dbType int) *Store {
	addr := opts.Addr
	if addr == "" {
		addr = config.RedisAddr
	}
	logger := logger_i.NewLogger(fmt.Sprintf("Redis Store db=%d", dbType))

	newClient := redis.NewClient(&redis.Options{
		Addr:                  addr,
		Password:              opts.Password,
		DB:                    dbType,
		ContextTimeoutEnabled: true,
		ReadTimeout:           config.RedisIOTimeout,
		WriteTimeout:          config.RedisIOTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, config.RedisPingTimeout)
	defer cancel()

	if err := newClient.Ping(pingCtx).Err(); err != nil {
		logger.Error("Redis is offline", "addr", addr, "error", err)
		_ = newClient.Close()
		return nil
	}

	logger.Info("Redis store ready", "addr", addr)

	newStore := &Store{
		client: newClient,
		Type:   dbType,
		logger: logger,
	}

	instances[dbType] = newStore
	once.Do(func() {
		go closeRedisStores(ctx)
	})
	return newStore
}

// NewTestStore wraps an existing client, bypassing the shared instances.
func NewTestStore(client *redis.Client) *Store {
	return &Store{
		client: client,
		logger: logger_i.NewLogger("Redis Store test"),
	}
}
