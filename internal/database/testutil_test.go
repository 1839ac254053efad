package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gobees/gobees/internal/models"
)

// ============================================================================
// Local Test Helpers (to avoid import cycle with testutil)
// ============================================================================

// setupTestRepo opens a fresh in-memory database with the full schema
func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := Open(context.Background(), MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// setupTestRepoFile opens a file-based database for persistence checks
func setupTestRepoFile(t *testing.T) (*Repository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "gobees-test.db")
	repo, err := Open(context.Background(), path)
	require.NoError(t, err)
	return repo, path
}

func createTestApiary(t *testing.T, repo *Repository, name string) models.Apiary {
	t.Helper()
	apiary, err := repo.SaveApiary(context.Background(), models.Apiary{Name: name})
	require.NoError(t, err)
	return apiary
}

func createTestHive(t *testing.T, repo *Repository, apiaryID int64, name string) models.Hive {
	t.Helper()
	hive, err := repo.SaveHive(context.Background(), models.Hive{ApiaryID: apiaryID, Name: name})
	require.NoError(t, err)
	return hive
}

func ptr(f float64) *float64 { return &f }

func at(day, hour int) time.Time {
	return time.Date(2024, time.May, day, hour, 0, 0, 0, time.Local)
}
