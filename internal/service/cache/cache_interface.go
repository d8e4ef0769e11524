// Package cache defines the compliance report cache contract shared by the
// in-memory and Redis backends.
package cache

import (
	"context"

	"github.com/guttosm/carryon-service/internal/domain/model"
)

// Cache stores compliance reports by request fingerprint.
// Implementations treat backend failures as misses. Get hands out a report
// the caller owns: changing it never affects the stored entry.
type Cache interface {
	Get(ctx context.Context, key string) (model.ComplianceReport, bool)
	Set(ctx context.Context, key string, value model.ComplianceReport)
	Clear(ctx context.Context)
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
