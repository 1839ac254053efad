package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gobees/gobees/internal/models"
)

func TestDeleteAllResetsSequences(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	ctx := context.Background()

	a := createTestApiary(t, repo, "A")
	h := createTestHive(t, repo, a.ID, "H")
	require.NoError(t, repo.SaveRecords(ctx, h.ID, []models.Record{{Timestamp: at(1, 1), NumBees: 1}}))

	require.NoError(t, repo.DeleteAll(ctx))

	all, err := repo.GetAllApiaries(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	a = createTestApiary(t, repo, "Again")
	h = createTestHive(t, repo, a.ID, "Again")
	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(1), h.ID)
}

func TestDataPersistsAcrossReopen(t *testing.T) {
	repo, path := setupTestRepoFile(t)
	ctx := context.Background()

	a := createTestApiary(t, repo, "Persistent")
	h := createTestHive(t, repo, a.ID, "Persistent hive")
	require.NoError(t, repo.SaveRecords(ctx, h.ID, []models.Record{{Timestamp: at(4, 4), NumBees: 44}}))
	require.NoError(t, repo.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.GetApiary(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Persistent", got.Name)

	records, err := reopened.GetRecordsByHive(ctx, h.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 44, records[0].NumBees)

	next := createTestApiary(t, reopened, "Next")
	assert.Equal(t, a.ID+1, next.ID, "sequence survives reopen")
}

func TestMigrationsAreIdempotent(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)

	require.NoError(t, runMigrations(context.Background(), repo.db.DB))
	require.NoError(t, runMigrations(context.Background(), repo.db.DB))

	var n int
	require.NoError(t, repo.db.Get(&n, `SELECT COUNT(*) FROM id_sequences`))
	assert.Equal(t, 2, n)
}
