package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/gobees/gobees/internal/app"
	"github.com/gobees/gobees/internal/config"
	"github.com/gobees/gobees/internal/database"
	"github.com/gobees/gobees/internal/datasource"
	"github.com/gobees/gobees/internal/models"
)

// TestConfig returns a configuration suitable for in-memory tests
func TestConfig() *config.Config {
	return &config.Config{
		Database:   config.DatabaseConfig{Path: database.MemoryPath},
		DataSource: config.DataSourceConfig{MaxConcurrency: datasource.DefaultMaxConcurrency},
		Log:        config.LogConfig{Level: "debug"},
	}
}

// SetupTestApp opens an App over a private in-memory database.
// The App is closed when the test ends.
func SetupTestApp(t *testing.T) *app.App {
	t.Helper()

	a := app.New(TestConfig(), app.WithOpener(datasource.SQLite(database.MemoryPath)))
	if err := a.Open(context.Background()); err != nil {
		t.Fatalf("Failed to open test app: %v", err)
	}
	t.Cleanup(func() {
		if err := a.Close(); err != nil {
			t.Errorf("Failed to close test app: %v", err)
		}
	})

	return a
}

// CreateTestApiary saves an apiary with a reserved id and returns the id
func CreateTestApiary(t *testing.T, a *app.App, name string) int64 {
	t.Helper()
	ctx := context.Background()
	ds := a.DataSource

	id, err := datasource.AwaitNextApiaryID(ctx, ds)
	if err != nil {
		t.Fatalf("Failed to reserve apiary id: %v", err)
	}

	apiary := models.Apiary{ID: id, Name: name, LastRevision: time.Now()}
	if err := datasource.AwaitTask(ctx, func(cb datasource.TaskCallback) {
		ds.SaveApiary(ctx, apiary, cb)
	}); err != nil {
		t.Fatalf("Failed to create test apiary: %v", err)
	}

	return id
}

// CreateTestHive saves a hive in apiaryID with a reserved id and returns the id
func CreateTestHive(t *testing.T, a *app.App, apiaryID int64, name string) int64 {
	t.Helper()
	ctx := context.Background()
	ds := a.DataSource

	id, err := datasource.AwaitNextHiveID(ctx, ds)
	if err != nil {
		t.Fatalf("Failed to reserve hive id: %v", err)
	}

	hive := models.Hive{ID: id, Name: name, LastRevision: time.Now()}
	if err := datasource.AwaitTask(ctx, func(cb datasource.TaskCallback) {
		ds.SaveHive(ctx, apiaryID, hive, cb)
	}); err != nil {
		t.Fatalf("Failed to create test hive: %v", err)
	}

	return id
}

// CreateTestRecords saves records for hiveID in one batch
func CreateTestRecords(t *testing.T, a *app.App, hiveID int64, records ...models.Record) {
	t.Helper()
	ctx := context.Background()
	ds := a.DataSource

	if err := datasource.AwaitTask(ctx, func(cb datasource.TaskCallback) {
		ds.SaveRecords(ctx, hiveID, records, cb)
	}); err != nil {
		t.Fatalf("Failed to create test records: %v", err)
	}
}
