package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/role-gate/internal/domain"
)

const accountKeyPrefix = "account:username:"

// CachedAccountRepository serves FindByUsername hits from Redis before
// falling back to the wrapped repository. Misses are never cached so a
// freshly registered username is visible immediately. Cached accounts never
// carry the password hash (domain.Account omits it from JSON); callers that
// verify passwords read from the wrapped repository.
type CachedAccountRepository struct {
	next   AccountRepository
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedAccountRepository wraps next. A nil client or non-positive ttl
// disables caching.
func NewCachedAccountRepository(next AccountRepository, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedAccountRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedAccountRepository{next: next, client: client, ttl: ttl, logger: logger}
}

func (r *CachedAccountRepository) enabled() bool {
	return r.client != nil && r.ttl > 0
}

func (r *CachedAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if err := r.next.Create(ctx, account); err != nil {
		return err
	}
	if r.enabled() {
		if err := r.client.Del(ctx, accountKey(account.Username)).Err(); err != nil {
			r.logger.Warn("account cache invalidate failed", zap.Error(err))
		}
	}
	return nil
}

func (r *CachedAccountRepository) List(ctx context.Context) ([]domain.Account, error) {
	return r.next.List(ctx)
}

func (r *CachedAccountRepository) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	if !r.enabled() {
		return r.next.FindByUsername(ctx, username)
	}

	key := accountKey(username)
	raw, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var account domain.Account
		if jsonErr := json.Unmarshal(raw, &account); jsonErr == nil {
			return &account, nil
		}
		r.logger.Warn("discarding undecodable cached account", zap.String("key", key))
	case !errors.Is(err, redis.Nil):
		r.logger.Warn("account cache read failed", zap.Error(err))
	}

	account, err := r.next.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(account); err == nil {
		if err := r.client.Set(ctx, key, payload, r.ttl).Err(); err != nil {
			r.logger.Warn("account cache write failed", zap.Error(err))
		}
	}
	return account, nil
}

func accountKey(username string) string {
	return accountKeyPrefix + username
}
