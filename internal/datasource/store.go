package datasource

import (
	"context"
	"time"

	"github.com/gobees/gobees/internal/database"
	"github.com/gobees/gobees/internal/models"
)

// Store is the persistence the Repository drives. *database.Repository
// implements it; tests wrap it to count or fail calls.
type Store interface {
	GetAllApiaries(ctx context.Context) ([]models.Apiary, error)
	GetApiary(ctx context.Context, id int64) (models.Apiary, error)
	SaveApiary(ctx context.Context, apiary models.Apiary) (models.Apiary, error)
	DeleteApiary(ctx context.Context, id int64) error
	DeleteAllApiaries(ctx context.Context) error
	NextApiaryID(ctx context.Context) (int64, error)

	GetHivesByApiary(ctx context.Context, apiaryID int64) ([]models.Hive, error)
	GetHive(ctx context.Context, id int64) (models.Hive, error)
	SaveHive(ctx context.Context, hive models.Hive) (models.Hive, error)
	DeleteHive(ctx context.Context, id int64) error
	NextHiveID(ctx context.Context) (int64, error)

	SaveRecords(ctx context.Context, hiveID int64, records []models.Record) error
	GetRecordsByHive(ctx context.Context, hiveID int64) ([]models.Record, error)
	GetRecordsBetween(ctx context.Context, hiveID int64, from, to time.Time) ([]models.Record, error)

	SaveMeteoRecord(ctx context.Context, meteo models.MeteoRecord) (models.MeteoRecord, error)
	GetMeteoBetween(ctx context.Context, apiaryID int64, from, to time.Time) ([]models.MeteoRecord, error)

	DeleteAll(ctx context.Context) error
	Close() error
}

// Opener creates the store when the data source is opened
type Opener func(ctx context.Context) (Store, error)

// SQLite returns an Opener for the SQLite database at path
func SQLite(path string) Opener {
	return func(ctx context.Context) (Store, error) {
		repo, err := database.Open(ctx, path)
		if err != nil {
			return nil, err
		}
		return repo, nil
	}
}
