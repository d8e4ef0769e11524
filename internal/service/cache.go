// Package service contains the business logic of the carry-on compliance service.
package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/guttosm/carryon-service/internal/domain/model"
	"github.com/guttosm/carryon-service/internal/metrics"
	"github.com/guttosm/carryon-service/internal/service/cache"
)

const defaultShards = 16

// ShardedCache is the in-process report cache. Keys are spread by xxhash
// over independently locked expiring LRU shards.
type ShardedCache struct {
	shards    []*reportShard
	shardMask uint64
}

// NewShardedCache creates a cache holding about capacity reports for ttl.
// numShards is rounded up to a power of 2 and every shard holds at least one report.
func NewShardedCache(capacity int, ttl time.Duration, numShards int) *ShardedCache {
	if numShards <= 0 {
		numShards = defaultShards
	}
	n := 1
	for n < numShards {
		n <<= 1
	}

	perShard := max(capacity/n, 1)
	shards := make([]*reportShard, n)
	for i := range shards {
		shards[i] = newReportShard(perShard, ttl)
	}

	return &ShardedCache{shards: shards, shardMask: uint64(n - 1)}
}

func (sc *ShardedCache) shardFor(key string) *reportShard {
	return sc.shards[xxhash.Sum64String(key)&sc.shardMask]
}

// Get returns a copy of the cached report for key.
func (sc *ShardedCache) Get(_ context.Context, key string) (model.ComplianceReport, bool) {
	return sc.shardFor(key).get(key)
}

// Set stores a copy of report under key, restarting its TTL.
func (sc *ShardedCache) Set(_ context.Context, key string, report model.ComplianceReport) {
	sc.shardFor(key).set(key, report)
	metrics.UpdateCacheSize(sc.Len())
}

// Clear drops every report and resets the counters.
func (sc *ShardedCache) Clear(context.Context) {
	for _, shard := range sc.shards {
		shard.clear()
	}
	metrics.UpdateCacheSize(0)
	metrics.RecordCacheOperation("clear", "success")
}

// Stop releases the cached reports.
func (sc *ShardedCache) Stop() {
	for _, shard := range sc.shards {
		shard.lru.Purge()
	}
}

// Len counts stored reports, including expired ones not yet swept.
func (sc *ShardedCache) Len() int {
	total := 0
	for _, shard := range sc.shards {
		total += shard.lru.Len()
	}
	return total
}

// Metrics sums the shard counters.
func (sc *ShardedCache) Metrics() cache.Metrics {
	var total cache.Metrics
	for _, shard := range sc.shards {
		total.Hits += shard.hits.Load()
		total.Misses += shard.misses.Load()
		total.Evictions += shard.evictions.Load()
		total.Size += shard.lru.Len()
		total.Capacity += shard.capacity
	}
	return total
}

// reportShard is one expiring LRU with its own counters.
type reportShard struct {
	lru      *expirable.LRU[string, model.ComplianceReport]
	capacity int

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

func newReportShard(capacity int, ttl time.Duration) *reportShard {
	return &reportShard{
		lru:      expirable.NewLRU[string, model.ComplianceReport](capacity, nil, ttl),
		capacity: capacity,
	}
}

func (s *reportShard) get(key string) (model.ComplianceReport, bool) {
	report, ok := s.lru.Get(key)
	if !ok {
		s.misses.Add(1)
		metrics.RecordCacheOperation("get", "miss")
		return model.ComplianceReport{}, false
	}
	s.hits.Add(1)
	metrics.RecordCacheOperation("get", "hit")
	return report.Clone(), true
}

func (s *reportShard) set(key string, report model.ComplianceReport) {
	if evicted := s.lru.Add(key, report.Clone()); evicted {
		s.evictions.Add(1)
		metrics.RecordCacheOperation("evict", "capacity")
	}
	metrics.RecordCacheOperation("set", "success")
}

func (s *reportShard) clear() {
	s.lru.Purge()
	s.hits.Store(0)
	s.misses.Store(0)
	s.evictions.Store(0)
}
