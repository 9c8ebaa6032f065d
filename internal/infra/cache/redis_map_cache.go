package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"conecta/config"
	"conecta/internal/domain/entity"
	"conecta/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	mapKey        = "providers:map"
	generationKey = "providers:map:generation"
	allTypesField = "all"
	typeFieldPfx  = "type:"
	defaultMapTTL = 5 * time.Minute
)

// redisMapCache keeps every map projection in one hash so a single DEL invalidates them all
type redisMapCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisMapCache creates a Redis-backed map projection cache
func NewRedisMapCache(client *redis.Client, ttl time.Duration) service.MapCache {
	if ttl <= 0 {
		ttl = defaultMapTTL
	}

	return &redisMapCache{
		client: client,
		ttl:    ttl,
	}
}

func field(providerType *string) string {
	if providerType == nil {
		return allTypesField
	}

	return typeFieldPfx + *providerType
}

// Get returns the cached projection for the filter
func (c *redisMapCache) Get(ctx context.Context, providerType *string) ([]*entity.MapProvider, bool, error) {
	data, err := c.client.HGet(ctx, mapKey, field(providerType)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}

		return nil, false, errors.Wrap(err, "redis hget map projection")
	}

	var providers []*entity.MapProvider
	if err := json.Unmarshal(data, &providers); err != nil {
		return nil, false, errors.Wrap(err, "unmarshal map projection")
	}

	return providers, true, nil
}

// Generation returns the invalidation counter; a missing key reads as zero
func (c *redisMapCache) Generation(ctx context.Context) (int64, error) {
	generation, err := c.client.Get(ctx, generationKey).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}

		return 0, errors.Wrap(err, "redis get map generation")
	}

	return generation, nil
}

// Set stores the projection and refreshes the hash TTL.
// The write is dropped when an invalidation happened after generation was read.
func (c *redisMapCache) Set(ctx context.Context, providerType *string, generation int64, providers []*entity.MapProvider) error {
	if providers == nil {
		providers = []*entity.MapProvider{}
	}

	data, err := json.Marshal(providers)
	if err != nil {
		return errors.Wrap(err, "marshal map projection")
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, generationKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return errors.Wrap(err, "redis get map generation")
		}
		if current != generation {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, mapKey, field(providerType), data)
			pipe.Expire(ctx, mapKey, c.ttl)

			return nil
		})

		return err
	}, generationKey)
	if err != nil {
		// Another writer invalidated between WATCH and EXEC; the projection is stale.
		if errors.Is(err, redis.TxFailedErr) {
			return nil
		}

		return errors.Wrap(err, "redis hset map projection")
	}

	return nil
}

// Invalidate drops every cached projection and bumps the generation
func (c *redisMapCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey)
		pipe.Del(ctx, mapKey)

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "redis invalidate map projection")
	}

	return nil
}

// noopMapCache always misses; used when Redis is not configured
type noopMapCache struct{}

func (noopMapCache) Get(context.Context, *string) ([]*entity.MapProvider, bool, error) {
	return nil, false, nil
}

func (noopMapCache) Generation(context.Context) (int64, error) {
	return 0, nil
}

func (noopMapCache) Set(context.Context, *string, int64, []*entity.MapProvider) error {
	return nil
}

func (noopMapCache) Invalidate(context.Context) error {
	return nil
}

// MapCacheParams holds dependencies for MapCache, injected by Fx
type MapCacheParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewMapCache creates a MapCache based on configuration
func NewMapCache(params MapCacheParams) service.MapCache {
	cfg := params.Config.Redis
	logger := params.Logger

	if cfg == nil || cfg.Addr == "" {
		logger.Info("Redis not configured, map projection is not cached")

		return noopMapCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// The cache is optional; an unreachable Redis only costs cache hits.
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("Redis ping failed, map cache will miss until it recovers",
					slog.String("addr", cfg.Addr),
					slog.Any("error", err),
				)

				return nil
			}
			logger.Info("Connected to Redis", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing Redis client")

			return client.Close()
		},
	})

	return NewRedisMapCache(client, cfg.MapTTL)
}
