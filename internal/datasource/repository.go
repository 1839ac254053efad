package datasource

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"golang.org/x/sync/semaphore"
	"golang.org/x/sync/singleflight"

	"github.com/gobees/gobees/internal/cache"
	"github.com/gobees/gobees/internal/database"
	"github.com/gobees/gobees/internal/events"
	"github.com/gobees/gobees/internal/models"
)

type state int

const (
	stateNew state = iota
	stateOpen
	stateClosed
)

// Keys of the list-is-warm flags
const apiaryListKey = "apiaries"

func hiveListKey(apiaryID int64) string {
	return "hives#" + strconv.FormatInt(apiaryID, 10)
}

// flightKey scopes a shared store read to the cache generations observed
// before it started. A request issued after any invalidation gets a new key
// and never joins a read that began earlier.
func flightKey(key string, gens ...uint64) string {
	for _, g := range gens {
		key += "@" + strconv.FormatUint(g, 10)
	}
	return key
}

// Repository implements DataSource over a Store with a write-through cache.
type Repository struct {
	open Opener

	mu    sync.RWMutex
	state state
	store Store

	inflight sync.WaitGroup
	sem      *semaphore.Weighted
	group    singleflight.Group

	apiaries   *cache.Cache[int64, models.Apiary]
	hives      *cache.Cache[int64, models.Hive]
	recordings *cache.Cache[string, models.Recording]
	lists      *cache.Cache[string, bool]

	publisher events.EventPublisher
	logger    *slog.Logger
	execute   func(func())
	metrics   *Metrics
}

// New creates a Repository. Nothing touches the store until OpenDB.
func New(open Opener, opts ...Option) *Repository {
	cfg := config{maxConcurrency: DefaultMaxConcurrency}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.executor == nil {
		cfg.executor = func(fn func()) { fn() }
	}
	if cfg.metrics == nil {
		cfg.metrics = NewMetrics()
	}

	return &Repository{
		open:       open,
		sem:        semaphore.NewWeighted(cfg.maxConcurrency),
		apiaries:   cache.New[int64, models.Apiary](),
		hives:      cache.New[int64, models.Hive](),
		recordings: cache.New[string, models.Recording](),
		lists:      cache.New[string, bool](),
		publisher:  cfg.publisher,
		logger:     cfg.logger,
		execute:    cfg.executor,
		metrics:    cfg.metrics,
	}
}

// Metrics returns the counters of this data source
func (r *Repository) Metrics() *Metrics {
	return r.metrics
}

// Stats returns a snapshot of the metrics and of every cache tier
func (r *Repository) Stats() Stats {
	snap := r.metrics.Snapshot()
	return Stats{
		Metrics: snap,
		HitRate: snap.HitRate(),
		Cache: map[string]TierStats{
			"apiaries":   tierStats(r.apiaries),
			"hives":      tierStats(r.hives),
			"recordings": tierStats(r.recordings),
			"lists":      tierStats(r.lists),
		},
	}
}

func tierStats[K cmp.Ordered, V any](c *cache.Cache[K, V]) TierStats {
	s := c.Stats()
	return TierStats{Entries: c.Len(), Lookups: s.Total, Hits: s.Hits}
}

func (r *Repository) OpenDB(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.state {
	case stateOpen:
		return ErrAlreadyOpen
	case stateClosed:
		return ErrClosed
	}

	store, err := r.open(ctx)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	r.store = store
	r.state = stateOpen
	r.logger.Debug("data source opened")
	return nil
}

func (r *Repository) CloseDB() error {
	r.mu.Lock()
	switch r.state {
	case stateNew:
		r.mu.Unlock()
		return ErrNotOpen
	case stateClosed:
		r.mu.Unlock()
		return ErrClosed
	}
	r.state = stateClosed
	store := r.store
	r.mu.Unlock()

	r.inflight.Wait()
	r.purge()

	if err := store.Close(); err != nil {
		return fmt.Errorf("failed to close store: %w", err)
	}
	r.logger.Debug("data source closed")
	return nil
}

// begin registers an in-flight request and returns the store it may use
func (r *Repository) begin() (Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	switch r.state {
	case stateNew:
		return nil, ErrNotOpen
	case stateClosed:
		return nil, ErrClosed
	}
	r.inflight.Add(1)
	return r.store, nil
}

// async runs work on its own goroutine with bounded store access.
// work returns the notification to deliver; fail builds the notification for
// a request that never reached the store. The notification runs through the
// executor after the semaphore is released and the request has left the
// in-flight set, at most once.
func (r *Repository) async(ctx context.Context, op string, work func(context.Context, Store) func(), fail func(error) func()) {
	ctx = context.WithoutCancel(ctx)

	var once sync.Once
	deliver := func(notify func()) {
		r.execute(func() { once.Do(notify) })
	}

	store, err := r.begin()
	if err != nil {
		r.logger.Warn("request rejected", "op", op, "error", err)
		go deliver(fail(err))
		return
	}

	go func() {
		if err := r.sem.Acquire(ctx, 1); err != nil {
			r.inflight.Done()
			deliver(fail(err))
			return
		}
		notify := work(ctx, store)
		r.sem.Release(1)

		// The notification no longer touches the store, so a callback may
		// call CloseDB without waiting on its own request.
		r.inflight.Done()
		deliver(notify)
	}()
}

// Helpers that build notifications and count outcomes

func (r *Repository) failed(cb TaskCallback, op string, err error, attrs ...any) func() {
	r.metrics.Failures.Add(1)
	r.logger.Warn("write failed", append([]any{"op", op, "error", err}, attrs...)...)
	return func() { cb.OnFailure(err) }
}

func (r *Repository) succeeded(cb TaskCallback, event events.Event) func() {
	events.Publish(r.publisher, event)
	return cb.OnSuccess
}

func (r *Repository) unavailable(notify func(), op string, err error, attrs ...any) func() {
	r.metrics.NotAvailable.Add(1)
	if err != nil && !errors.Is(err, database.ErrNotFound) && !errors.Is(err, ErrDataNotAvailable) {
		r.logger.Warn("read failed", append([]any{"op", op, "error", err}, attrs...)...)
	}
	return notify
}

func (r *Repository) taskFailure(cb TaskCallback) func(error) func() {
	return func(err error) func() {
		r.metrics.Failures.Add(1)
		return func() { cb.OnFailure(err) }
	}
}

func (r *Repository) notAvailable(notify func()) func(error) func() {
	return func(error) func() {
		r.metrics.NotAvailable.Add(1)
		return notify
	}
}

func (r *Repository) hit() {
	r.metrics.CacheHits.Add(1)
}

func (r *Repository) miss() {
	r.metrics.CacheMisses.Add(1)
	r.metrics.StoreReads.Add(1)
}

// purge drops every cached entry
func (r *Repository) purge() {
	r.apiaries.Purge()
	r.hives.Purge()
	r.recordings.Purge()
	r.lists.Purge()
}

// DeleteAll removes every entity, resets id assignment and clears the cache
func (r *Repository) DeleteAll(ctx context.Context, cb TaskCallback) {
	r.async(ctx, "delete_all", func(ctx context.Context, store Store) func() {
		if err := store.DeleteAll(ctx); err != nil {
			return r.failed(cb, "delete_all", err)
		}
		r.purge()
		return r.succeeded(cb, events.Event{Type: events.EventDataCleared})
	}, r.taskFailure(cb))
}
