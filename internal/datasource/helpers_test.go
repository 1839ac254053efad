package datasource

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gobees/gobees/internal/database"
	"github.com/gobees/gobees/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// newTestRepository opens a data source over a private in-memory database
func newTestRepository(t *testing.T, opts ...Option) *Repository {
	t.Helper()
	repo := New(SQLite(database.MemoryPath), opts...)
	require.NoError(t, repo.OpenDB(context.Background()))
	t.Cleanup(func() { _ = repo.CloseDB() })
	return repo
}

// newWrappedRepository opens a data source whose store is wrapped by wrap
func newWrappedRepository(t *testing.T, wrap func(Store) Store, opts ...Option) *Repository {
	t.Helper()
	open := func(ctx context.Context) (Store, error) {
		store, err := SQLite(database.MemoryPath)(ctx)
		if err != nil {
			return nil, err
		}
		return wrap(store), nil
	}
	repo := New(open, opts...)
	require.NoError(t, repo.OpenDB(context.Background()))
	t.Cleanup(func() { _ = repo.CloseDB() })
	return repo
}

func saveApiary(t *testing.T, ds DataSource, apiary models.Apiary) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, AwaitTask(ctx, func(cb TaskCallback) { ds.SaveApiary(ctx, apiary, cb) }))
}

func saveHive(t *testing.T, ds DataSource, apiaryID int64, hive models.Hive) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, AwaitTask(ctx, func(cb TaskCallback) { ds.SaveHive(ctx, apiaryID, hive, cb) }))
}

func saveRecords(t *testing.T, ds DataSource, hiveID int64, records ...models.Record) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, AwaitTask(ctx, func(cb TaskCallback) { ds.SaveRecords(ctx, hiveID, records, cb) }))
}

func day(d, hour int) time.Time {
	return time.Date(2024, time.May, d, hour, 0, 0, 0, time.Local)
}

func ptr(f float64) *float64 { return &f }

// gatedStore holds GetAllApiaries after the store answered until release is closed
type gatedStore struct {
	Store
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (g *gatedStore) GetAllApiaries(ctx context.Context) ([]models.Apiary, error) {
	apiaries, err := g.Store.GetAllApiaries(ctx)
	g.once.Do(func() {
		close(g.entered)
		<-g.release
	})
	return apiaries, err
}

// gatedApiaryStore holds the first GetApiary after the store answered until release is closed
type gatedApiaryStore struct {
	gatedStore
}

func (g *gatedApiaryStore) GetApiary(ctx context.Context, id int64) (models.Apiary, error) {
	apiary, err := g.Store.GetApiary(ctx, id)
	g.once.Do(func() {
		close(g.entered)
		<-g.release
	})
	return apiary, err
}

// failingStore fails every write and read of records
type failingStore struct {
	Store
}

var errInjected = errors.New("injected store failure")

func (f failingStore) SaveApiary(context.Context, models.Apiary) (models.Apiary, error) {
	return models.Apiary{}, errInjected
}

func (f failingStore) GetAllApiaries(context.Context) ([]models.Apiary, error) {
	return nil, errInjected
}

func (f failingStore) NextApiaryID(context.Context) (int64, error) {
	return 0, errInjected
}

// countingCallback records every notification it receives
type countingCallback struct {
	mu        sync.Mutex
	successes int
	failures  int
	done      chan struct{}
}

func newCountingCallback() *countingCallback {
	return &countingCallback{done: make(chan struct{}, 8)}
}

func (c *countingCallback) OnSuccess() {
	c.mu.Lock()
	c.successes++
	c.mu.Unlock()
	c.done <- struct{}{}
}

func (c *countingCallback) OnFailure(error) {
	c.mu.Lock()
	c.failures++
	c.mu.Unlock()
	c.done <- struct{}{}
}

func (c *countingCallback) wait(t *testing.T) {
	t.Helper()
	select {
	case <-c.done:
	case <-time.After(2 * time.Second):
		t.Fatal("callback never fired")
	}
}

func (c *countingCallback) counts() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.successes, c.failures
}
