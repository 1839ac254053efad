package database

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gobees/gobees/internal/models"
)

func TestApiarySaveAndGet(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	ctx := context.Background()

	want := models.Apiary{
		ID:           1,
		Name:         "North Field",
		ImageURL:     "https://example.com/north.png",
		LocationLat:  ptr(40.4168),
		LocationLong: ptr(-3.7038),
		Notes:        "near the river",
		LastRevision: time.Date(2024, time.April, 2, 9, 30, 0, 0, time.Local),
	}

	saved, err := repo.SaveApiary(ctx, want)
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.ID)

	got, err := repo.GetApiary(ctx, 1)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GetApiary mismatch (-want +got):\n%s", diff)
	}
}

func TestSavedApiaryMatchesStoredForm(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	ctx := context.Background()

	revised := time.Date(2024, time.April, 2, 9, 30, 0, 0, time.FixedZone("UTC+5", 5*3600))
	saved, err := repo.SaveApiary(ctx, models.Apiary{Name: "East", LastRevision: revised})
	require.NoError(t, err)
	assert.Equal(t, StoreLocation, saved.LastRevision.Location())
	assert.True(t, saved.LastRevision.Equal(revised))

	got, err := repo.GetApiary(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestApiarySaveAssignsSequentialIDs(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)

	a := createTestApiary(t, repo, "A")
	b := createTestApiary(t, repo, "B")

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)
}

func TestApiarySaveExplicitIDRaisesSequence(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	ctx := context.Background()

	_, err := repo.SaveApiary(ctx, models.Apiary{ID: 10, Name: "Ten"})
	require.NoError(t, err)

	next := createTestApiary(t, repo, "After ten")
	assert.Equal(t, int64(11), next.ID)

	id, err := repo.NextApiaryID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)
}

func TestApiarySaveUpdatesExisting(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	ctx := context.Background()

	apiary := createTestApiary(t, repo, "Old name")
	apiary.Name = "New name"
	apiary.LocationLat = ptr(1.5)

	_, err := repo.SaveApiary(ctx, apiary)
	require.NoError(t, err)

	all, err := repo.GetAllApiaries(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "New name", all[0].Name)
	require.NotNil(t, all[0].LocationLat)
	assert.InDelta(t, 1.5, *all[0].LocationLat, 1e-9)
	assert.Nil(t, all[0].LocationLong)
}

func TestApiarySaveValidation(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)

	_, err := repo.SaveApiary(context.Background(), models.Apiary{Name: "   "})
	assert.ErrorIs(t, err, models.ErrEmptyName)

	all, err := repo.GetAllApiaries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestApiaryGetMissing(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)

	_, err := repo.GetApiary(context.Background(), 42)
	assert.True(t, errors.Is(err, ErrNotFound), "expected ErrNotFound, got %v", err)
}

func TestApiaryGetAllOrderedByID(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	ctx := context.Background()

	for _, id := range []int64{5, 2, 9} {
		_, err := repo.SaveApiary(ctx, models.Apiary{ID: id, Name: "apiary"})
		require.NoError(t, err)
	}

	all, err := repo.GetAllApiaries(ctx)
	require.NoError(t, err)
	ids := make([]int64, len(all))
	for i, a := range all {
		ids[i] = a.ID
	}
	assert.Equal(t, []int64{2, 5, 9}, ids)
}

func TestApiaryDeleteCascades(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	ctx := context.Background()

	apiary := createTestApiary(t, repo, "Doomed")
	other := createTestApiary(t, repo, "Survivor")
	hive := createTestHive(t, repo, apiary.ID, "H1")
	kept := createTestHive(t, repo, other.ID, "H2")

	require.NoError(t, repo.SaveRecords(ctx, hive.ID, []models.Record{{Timestamp: at(1, 10), NumBees: 3}}))
	require.NoError(t, repo.SaveRecords(ctx, kept.ID, []models.Record{{Timestamp: at(1, 10), NumBees: 4}}))
	_, err := repo.SaveMeteoRecord(ctx, models.MeteoRecord{ApiaryID: apiary.ID, Timestamp: at(1, 10)})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteApiary(ctx, apiary.ID))

	_, err = repo.GetApiary(ctx, apiary.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.GetHive(ctx, hive.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	n, err := repo.RecordRepo.Count(ctx, hive.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	meteo, err := repo.GetMeteoBetween(ctx, apiary.ID, at(1, 0), at(2, 0))
	require.NoError(t, err)
	assert.Empty(t, meteo)

	records, err := repo.GetRecordsByHive(ctx, kept.ID)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestApiaryDeleteMissing(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)

	err := repo.DeleteApiary(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestApiaryDeleteAllKeepsSequence(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	ctx := context.Background()

	a := createTestApiary(t, repo, "A")
	createTestHive(t, repo, a.ID, "H")

	require.NoError(t, repo.DeleteAllApiaries(ctx))

	all, err := repo.GetAllApiaries(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	b := createTestApiary(t, repo, "B")
	assert.Equal(t, int64(2), b.ID)
}

func TestNextApiaryIDConcurrentUnique(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	ctx := context.Background()

	const workers = 20
	ids := make(chan int64, workers*2)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			id, err := repo.NextApiaryID(ctx)
			assert.NoError(t, err)
			ids <- id
		}()
		go func() {
			defer wg.Done()
			a, err := repo.SaveApiary(ctx, models.Apiary{Name: "concurrent"})
			assert.NoError(t, err)
			ids <- a.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers*2)
}
