package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/role-gate/internal/config"
)

const redisConnectTimeout = 2 * time.Second

// Redis holds the client behind the account lookup cache. Client is nil when
// the cache is disabled by config or Redis was unreachable at startup; the
// cached repository then reads straight from Postgres.
type Redis struct {
	Client *redis.Client
}

// NewRedis connects only when the account cache is enabled. A failed ping
// disables the cache rather than failing startup.
func NewRedis(ctx context.Context, cfg config.RedisConfig, cache config.CacheConfig, logger *zap.Logger) *Redis {
	if cache.AccountTTL() <= 0 {
		logger.Info("account cache disabled")
		return &Redis{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis unreachable; account cache disabled", zap.String("addr", cfg.Addr), zap.Error(err))
		_ = client.Close()
		return &Redis{}
	}

	logger.Info("account cache connected", zap.String("addr", cfg.Addr), zap.Duration("ttl", cache.AccountTTL()))
	return &Redis{Client: client}
}

// Enabled reports whether the cache has a live client.
func (r *Redis) Enabled() bool {
	return r != nil && r.Client != nil
}

// Close closes the client.
func (r *Redis) Close() {
	if r.Enabled() {
		_ = r.Client.Close()
	}
}

// Ping verifies Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if !r.Enabled() {
		return errors.New("account cache disabled")
	}
	return r.Client.Ping(ctx).Err()
}
