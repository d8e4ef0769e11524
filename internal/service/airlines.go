package service

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/guttosm/carryon-service/internal/dataset"
	"github.com/guttosm/carryon-service/internal/domain/model"
	"github.com/guttosm/carryon-service/internal/metrics"
	"github.com/guttosm/carryon-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when the repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// Dataset sources reported by a snapshot.
const (
	SourceMongoDB = "mongodb"
	SourceBundled = "bundled"
)

// DefaultDatasetTTL is how long a loaded snapshot is served before reloading.
const DefaultDatasetTTL = 30 * time.Second

const (
	seedOperator = "seed"
	snapshotKey  = "snapshot"
)

// DatasetSnapshot is an immutable view of the active airline dataset.
type DatasetSnapshot struct {
	Airlines []model.AirlineAllowanceEntry
	Version  string
	Source   string
	LoadedAt time.Time

	generation uint64
}

// AirlineService reads and maintains the airline allowance dataset.
type AirlineService interface {
	List(ctx context.Context, filter repository.AirlineFilter) ([]model.AirlineAllowanceEntry, error)
	Get(ctx context.Context, id string) (*model.AirlineAllowanceEntry, error)
	Upsert(ctx context.Context, entry model.AirlineAllowanceEntry, updatedBy string) (*repository.AirlineDocument, error)
	Delete(ctx context.Context, id, deletedBy string) error
	// Snapshot never fails. It degrades to the last good or bundled dataset.
	Snapshot(ctx context.Context) *DatasetSnapshot
}

// AirlineOption configures an AirlineServiceImpl.
type AirlineOption func(*AirlineServiceImpl)

// AirlineServiceImpl implements AirlineService.
type AirlineServiceImpl struct {
	repo     repository.AirlinesRepositoryInterface
	bundled  []model.AirlineAllowanceEntry
	ttl      time.Duration
	onChange func(ctx context.Context)
	now      func() time.Time

	snapshot atomic.Pointer[DatasetSnapshot]
	group    singleflight.Group
	// generation is bumped by every write. Snapshots loaded under an older
	// generation are never served from the cache.
	generation atomic.Uint64
}

// NewAirlineService creates the airline service. A nil repo serves the bundled dataset read-only.
func NewAirlineService(repo repository.AirlinesRepositoryInterface, opts ...AirlineOption) *AirlineServiceImpl {
	s := &AirlineServiceImpl{
		repo: repo,
		ttl:  DefaultDatasetTTL,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.bundled == nil {
		s.bundled = dataset.MustLoad()
	}
	return s
}

// WithDatasetTTL sets how long a snapshot is reused.
func WithDatasetTTL(ttl time.Duration) AirlineOption {
	return func(s *AirlineServiceImpl) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithBundledDataset replaces the embedded fallback dataset.
func WithBundledDataset(entries []model.AirlineAllowanceEntry) AirlineOption {
	return func(s *AirlineServiceImpl) {
		s.bundled = entries
	}
}

// WithOnChange registers a hook called after every successful write.
func WithOnChange(fn func(ctx context.Context)) AirlineOption {
	return func(s *AirlineServiceImpl) {
		s.onChange = fn
	}
}

// Snapshot returns the active dataset, reloading it once the TTL has passed.
func (s *AirlineServiceImpl) Snapshot(ctx context.Context) *DatasetSnapshot {
	if snap := s.snapshot.Load(); s.fresh(snap) {
		return snap
	}

	v, _, _ := s.group.Do(snapshotKey, func() (interface{}, error) {
		return s.reload(context.WithoutCancel(ctx)), nil
	})
	return v.(*DatasetSnapshot)
}

func (s *AirlineServiceImpl) fresh(snap *DatasetSnapshot) bool {
	if snap == nil || snap.generation != s.generation.Load() {
		return false
	}
	return s.repo == nil || s.now().Sub(snap.LoadedAt) < s.ttl
}

func (s *AirlineServiceImpl) reload(ctx context.Context) *DatasetSnapshot {
	gen := s.generation.Load()
	if s.repo == nil {
		return s.store(s.newSnapshot(s.bundled, SourceBundled), gen)
	}

	entries, err := s.repo.List(ctx, repository.AirlineFilter{})
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("Airline dataset unavailable, serving fallback")
		if prev := s.snapshot.Load(); prev != nil {
			retry := *prev
			retry.LoadedAt = s.now()
			return s.store(&retry, gen)
		}
		return s.store(s.newSnapshot(s.bundled, SourceBundled), gen)
	}
	if len(entries) == 0 {
		return s.store(s.newSnapshot(s.bundled, SourceBundled), gen)
	}
	return s.store(s.newSnapshot(entries, SourceMongoDB), gen)
}

func (s *AirlineServiceImpl) newSnapshot(entries []model.AirlineAllowanceEntry, source string) *DatasetSnapshot {
	return &DatasetSnapshot{
		Airlines: entries,
		Version:  dataset.Fingerprint(entries),
		Source:   source,
		LoadedAt: s.now(),
	}
}

// store caches snap unless a write happened since gen was read. The
// outdated snapshot is still returned to the callers of that load.
func (s *AirlineServiceImpl) store(snap *DatasetSnapshot, gen uint64) *DatasetSnapshot {
	snap.generation = gen
	if s.generation.Load() != gen {
		return snap
	}
	prev := s.snapshot.Swap(snap)
	metrics.SetDatasetSize(len(snap.Airlines))
	if prev == nil || prev.Version != snap.Version {
		log.Info().
			Str("source", snap.Source).
			Str("version", snap.Version).
			Int("airlines", len(snap.Airlines)).
			Msg("Airline dataset loaded")
	}
	return snap
}

// List returns airlines from the active snapshot matching the filter.
func (s *AirlineServiceImpl) List(ctx context.Context, filter repository.AirlineFilter) ([]model.AirlineAllowanceEntry, error) {
	return FilterAirlines(s.Snapshot(ctx).Airlines, filter), nil
}

// Get returns one airline from the active snapshot.
func (s *AirlineServiceImpl) Get(ctx context.Context, id string) (*model.AirlineAllowanceEntry, error) {
	for _, e := range s.Snapshot(ctx).Airlines {
		if e.ID == id {
			entry := e
			return &entry, nil
		}
	}
	return nil, repository.ErrAirlineNotFound
}

// Upsert completes and stores an airline, then invalidates cached data.
func (s *AirlineServiceImpl) Upsert(ctx context.Context, entry model.AirlineAllowanceEntry, updatedBy string) (*repository.AirlineDocument, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	completed, err := dataset.Complete(entry)
	if err != nil {
		return nil, err
	}

	doc, err := s.repo.Upsert(ctx, completed, updatedBy)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	log.Ctx(ctx).Info().
		Str("airline_id", doc.ID).
		Int("version", doc.Version).
		Str("operator", updatedBy).
		Msg("Airline stored")
	return doc, nil
}

// Delete removes an airline, then invalidates cached data.
func (s *AirlineServiceImpl) Delete(ctx context.Context, id, deletedBy string) error {
	if s.repo == nil {
		return ErrRepositoryNotConfigured
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	log.Ctx(ctx).Info().Str("airline_id", id).Str("operator", deletedBy).Msg("Airline deleted")
	return nil
}

// Seed stores the bundled dataset when the collection is empty.
func (s *AirlineServiceImpl) Seed(ctx context.Context) (int, error) {
	if s.repo == nil {
		return 0, nil
	}
	n, err := s.repo.SeedIfEmpty(ctx, s.bundled, seedOperator)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.invalidate(ctx)
	}
	return n, nil
}

func (s *AirlineServiceImpl) invalidate(ctx context.Context) {
	s.generation.Add(1)
	s.group.Forget(snapshotKey)
	s.snapshot.Store(nil)
	if s.onChange != nil {
		s.onChange(ctx)
	}
}

// FilterAirlines keeps entries matching the region (case-insensitive) and ids, in input order.
func FilterAirlines(entries []model.AirlineAllowanceEntry, filter repository.AirlineFilter) []model.AirlineAllowanceEntry {
	var ids map[string]struct{}
	if len(filter.IDs) > 0 {
		ids = make(map[string]struct{}, len(filter.IDs))
		for _, id := range filter.IDs {
			ids[id] = struct{}{}
		}
	}

	out := make([]model.AirlineAllowanceEntry, 0, len(entries))
	for _, e := range entries {
		if filter.Region != "" && !strings.EqualFold(e.Region, filter.Region) {
			continue
		}
		if ids != nil {
			if _, ok := ids[e.ID]; !ok {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}
