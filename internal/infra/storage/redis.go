package storage

import (
	"context"
	"time"

	"github.com/nauteik/soa-project-sub001/config"
	"github.com/nauteik/soa-project-sub001/internal/domain/service"
	"github.com/nauteik/soa-project-sub001/internal/errors"

	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore builds a redis-backed session store. The prefix keeps
// storefront and admin keyspaces apart when they share an instance.
func NewRedisStore(cfg *config.RedisConfig, prefix string) service.SessionStore {
	return &redisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		prefix: prefix,
	}
}

// NewStore picks redis when configured, the in-process store otherwise.
func NewStore(cfg *config.Config) service.SessionStore {
	if cfg.Redis != nil && cfg.Redis.Addr != "" {
		return NewRedisStore(cfg.Redis, cfg.Env.ServiceName)
	}

	return NewMemoryStore()
}

func (s *redisStore) key(key string) string {
	if s.prefix == "" {
		return key
	}

	return s.prefix + ":" + key
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, service.ErrStoreKeyNotFound
		}

		return nil, errors.Wrap(err, "redis get")
	}

	return value, nil
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return errors.Wrap(s.client.Set(ctx, s.key(key), value, ttl).Err(), "redis set")
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	return errors.Wrap(s.client.Del(ctx, s.key(key)).Err(), "redis del")
}
