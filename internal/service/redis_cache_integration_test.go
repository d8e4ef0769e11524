//go:build integration

package service

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/carryon-service/internal/domain/model"
	"github.com/guttosm/carryon-service/internal/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCache_Integration(t *testing.T) {
	ctx := context.Background()

	redisContainer, err := testutil.SetupRedis(ctx)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, redisContainer.Cleanup(ctx))
	}()

	reports, err := NewRedisCache(ctx, &redis.Options{Addr: redisContainer.Addr}, time.Minute)
	require.NoError(t, err)
	defer reports.Stop()

	require.NoError(t, reports.Ping(ctx))

	t.Run("miss then hit", func(t *testing.T) {
		_, ok := reports.Get(ctx, "missing")
		assert.False(t, ok)

		want := model.ComplianceReport{
			Complete:        true,
			System:          model.Metric,
			Dimensions:      model.UserDimensions{Height: 55, Width: 40, Depth: 23},
			ComplianceScore: 25,
			DatasetVersion:  "abc123",
		}
		reports.Set(ctx, "k1", want)

		got, ok := reports.Get(ctx, "k1")
		require.True(t, ok)
		assert.Equal(t, want.ComplianceScore, got.ComplianceScore)
		assert.Equal(t, want.Dimensions, got.Dimensions)
		assert.Equal(t, want.DatasetVersion, got.DatasetVersion)
	})

	t.Run("entries expire with the ttl", func(t *testing.T) {
		client := redis.NewClient(&redis.Options{Addr: redisContainer.Addr})
		defer func() { _ = client.Close() }()

		short := NewRedisCacheFromClient(client, "ttl-test:", time.Second)
		short.Set(ctx, "k", model.ComplianceReport{ComplianceScore: 50})

		ttl, err := client.TTL(ctx, "ttl-test:k").Result()
		require.NoError(t, err)
		assert.Positive(t, ttl)
		assert.LessOrEqual(t, ttl, time.Second)
	})

	t.Run("undecodable entries are dropped", func(t *testing.T) {
		client := redis.NewClient(&redis.Options{Addr: redisContainer.Addr})
		defer func() { _ = client.Close() }()
		require.NoError(t, client.Set(ctx, DefaultRedisKeyPrefix+"garbage", "not json", 0).Err())

		_, ok := reports.Get(ctx, "garbage")
		assert.False(t, ok)

		exists, err := client.Exists(ctx, DefaultRedisKeyPrefix+"garbage").Result()
		require.NoError(t, err)
		assert.Zero(t, exists)
	})

	t.Run("clear only removes prefixed keys", func(t *testing.T) {
		client := redis.NewClient(&redis.Options{Addr: redisContainer.Addr})
		defer func() { _ = client.Close() }()
		require.NoError(t, client.Set(ctx, "unrelated", "keep", 0).Err())
		reports.Set(ctx, "k2", model.ComplianceReport{})

		reports.Clear(ctx)

		_, ok := reports.Get(ctx, "k2")
		assert.False(t, ok)
		val, err := client.Get(ctx, "unrelated").Result()
		require.NoError(t, err)
		assert.Equal(t, "keep", val)
	})

	t.Run("backs the compliance service", func(t *testing.T) {
		reports.Clear(ctx)
		airlines := NewAirlineService(nil, WithBundledDataset(testAirlines()))
		svc := NewComplianceService(airlines, WithCacheInterface(reports))
		req := EvaluationRequest{Dimensions: model.UserDimensions{Height: 55, Width: 40, Depth: 23}, System: model.Metric}

		first, err := svc.Evaluate(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, 25.0, first.ComplianceScore)

		keys, err := reports.client.Keys(ctx, DefaultRedisKeyPrefix+"*").Result()
		require.NoError(t, err)
		assert.Len(t, keys, 1)

		second, err := svc.Evaluate(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, first.ComplianceScore, second.ComplianceScore)

		svc.InvalidateCache(ctx)
		keys, err = reports.client.Keys(ctx, DefaultRedisKeyPrefix+"*").Result()
		require.NoError(t, err)
		assert.Empty(t, keys)
	})

	t.Run("unreachable redis fails fast", func(t *testing.T) {
		_, err := NewRedisCache(ctx, &redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1}, time.Minute)
		assert.Error(t, err)
	})
}
