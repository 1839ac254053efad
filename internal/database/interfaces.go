// Package database defines repository interfaces for data access
package database

import (
	"context"
	"time"

	"github.com/gobees/gobees/internal/models"
)

// ApiaryRepository defines apiary persistence
type ApiaryRepository interface {
	GetAllApiaries(ctx context.Context) ([]models.Apiary, error)
	GetApiary(ctx context.Context, id int64) (models.Apiary, error)
	SaveApiary(ctx context.Context, apiary models.Apiary) (models.Apiary, error)
	DeleteApiary(ctx context.Context, id int64) error
	DeleteAllApiaries(ctx context.Context) error
	NextApiaryID(ctx context.Context) (int64, error)
}

// HiveRepository defines hive persistence
type HiveRepository interface {
	GetHivesByApiary(ctx context.Context, apiaryID int64) ([]models.Hive, error)
	GetHive(ctx context.Context, id int64) (models.Hive, error)
	SaveHive(ctx context.Context, hive models.Hive) (models.Hive, error)
	DeleteHive(ctx context.Context, id int64) error
	NextHiveID(ctx context.Context) (int64, error)
}

// RecordRepository defines hive record persistence
type RecordRepository interface {
	SaveRecords(ctx context.Context, hiveID int64, records []models.Record) error
	GetRecordsByHive(ctx context.Context, hiveID int64) ([]models.Record, error)
	GetRecordsBetween(ctx context.Context, hiveID int64, from, to time.Time) ([]models.Record, error)
}

// MeteoRepository defines weather record persistence
type MeteoRepository interface {
	SaveMeteoRecord(ctx context.Context, m models.MeteoRecord) (models.MeteoRecord, error)
	GetMeteoBetween(ctx context.Context, apiaryID int64, from, to time.Time) ([]models.MeteoRecord, error)
}

// DataStore is the full set of store operations, implemented by Repository
type DataStore interface {
	ApiaryRepository
	HiveRepository
	RecordRepository
	MeteoRepository
	DeleteAll(ctx context.Context) error
	Close() error
}

var _ DataStore = (*Repository)(nil)
