package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/guttosm/carryon-service/internal/domain/model"
	"github.com/guttosm/carryon-service/internal/metrics"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// DefaultRedisKeyPrefix namespaces compliance reports in a shared Redis.
const DefaultRedisKeyPrefix = "carryon:report:"

// RedisCache stores compliance reports in Redis so replicas share results.
// Redis errors are logged and reported as misses.
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCache connects to Redis and verifies the connection.
func NewRedisCache(ctx context.Context, opts *redis.Options, ttl time.Duration) (*RedisCache, error) {
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return NewRedisCacheFromClient(client, DefaultRedisKeyPrefix, ttl), nil
}

// NewRedisCacheFromClient wraps an existing client.
func NewRedisCacheFromClient(client *redis.Client, prefix string, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, prefix: prefix, ttl: ttl}
}

// Get returns the stored report for key.
func (c *RedisCache) Get(ctx context.Context, key string) (model.ComplianceReport, bool) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.RecordCacheOperation("get", "miss")
		return model.ComplianceReport{}, false
	}
	if err != nil {
		log.Warn().Err(err).Msg("Redis cache get failed")
		metrics.RecordCacheOperation("get", "error")
		return model.ComplianceReport{}, false
	}

	var report model.ComplianceReport
	if err := json.Unmarshal(data, &report); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Discarding undecodable cached report")
		_ = c.client.Del(ctx, c.prefix+key).Err()
		metrics.RecordCacheOperation("get", "error")
		return model.ComplianceReport{}, false
	}

	metrics.RecordCacheOperation("get", "hit")
	return report, true
}

// Set stores the report with the configured TTL.
func (c *RedisCache) Set(ctx context.Context, key string, value model.ComplianceReport) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Error().Err(err).Msg("Failed to encode compliance report for cache")
		return
	}
	if err := c.client.Set(ctx, c.prefix+key, data, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Msg("Redis cache set failed")
		metrics.RecordCacheOperation("set", "error")
		return
	}
	metrics.RecordCacheOperation("set", "success")
}

// Clear deletes every key under the prefix.
func (c *RedisCache) Clear(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Warn().Err(err).Msg("Redis cache scan failed")
		metrics.RecordCacheOperation("clear", "error")
		return
	}
	if len(keys) > 0 {
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			log.Warn().Err(err).Msg("Redis cache clear failed")
			metrics.RecordCacheOperation("clear", "error")
			return
		}
	}
	metrics.RecordCacheOperation("clear", "success")
}

// Stop closes the Redis client.
func (c *RedisCache) Stop() {
	if err := c.client.Close(); err != nil {
		log.Warn().Err(err).Msg("Failed to close Redis client")
	}
}

// Ping checks Redis reachability for readiness probes.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
