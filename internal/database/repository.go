package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/gobees/gobees/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories over one sqlx handle.
type Repository struct {
	db *sqlx.DB
	*ApiaryRepo
	*HiveRepo
	*RecordRepo
	*MeteoRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	x := sqlx.NewDb(db, "sqlite")
	return &Repository{
		db:         x,
		ApiaryRepo: &ApiaryRepo{db: x},
		HiveRepo:   &HiveRepo{db: x},
		RecordRepo: &RecordRepo{db: x},
		MeteoRepo:  &MeteoRepo{db: x},
	}
}

// Open initializes the database at path and returns a repository over it
func Open(ctx context.Context, path string) (*Repository, error) {
	db, err := InitDB(ctx, path)
	if err != nil {
		return nil, err
	}
	return NewRepository(db), nil
}

// Close closes the underlying database
func (r *Repository) Close() error {
	return r.db.Close()
}

// DeleteAll removes every row and resets the id sequences
func (r *Repository) DeleteAll(ctx context.Context) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := deleteAllRows(ctx, tx); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `UPDATE id_sequences SET value = 0`); err != nil {
			return fmt.Errorf("failed to reset id sequences: %w", err)
		}
		// AUTOINCREMENT counters of records and meteo_records
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM sqlite_sequence WHERE name IN ('records', 'meteo_records')`); err != nil {
			return fmt.Errorf("failed to reset record sequences: %w", err)
		}
		return nil
	})
}

// Wrapper methods for ApiaryRepo
func (r *Repository) GetAllApiaries(ctx context.Context) ([]models.Apiary, error) {
	return r.ApiaryRepo.GetAll(ctx)
}

func (r *Repository) GetApiary(ctx context.Context, id int64) (models.Apiary, error) {
	return r.ApiaryRepo.GetByID(ctx, id)
}

func (r *Repository) SaveApiary(ctx context.Context, apiary models.Apiary) (models.Apiary, error) {
	return r.ApiaryRepo.Save(ctx, apiary)
}

func (r *Repository) DeleteApiary(ctx context.Context, id int64) error {
	return r.ApiaryRepo.Delete(ctx, id)
}

func (r *Repository) DeleteAllApiaries(ctx context.Context) error {
	return r.ApiaryRepo.DeleteAll(ctx)
}

func (r *Repository) NextApiaryID(ctx context.Context) (int64, error) {
	return r.ApiaryRepo.NextID(ctx)
}

// Wrapper methods for HiveRepo
func (r *Repository) GetHivesByApiary(ctx context.Context, apiaryID int64) ([]models.Hive, error) {
	return r.HiveRepo.GetByApiary(ctx, apiaryID)
}

func (r *Repository) GetHive(ctx context.Context, id int64) (models.Hive, error) {
	return r.HiveRepo.GetByID(ctx, id)
}

func (r *Repository) SaveHive(ctx context.Context, hive models.Hive) (models.Hive, error) {
	return r.HiveRepo.Save(ctx, hive)
}

func (r *Repository) DeleteHive(ctx context.Context, id int64) error {
	return r.HiveRepo.Delete(ctx, id)
}

func (r *Repository) NextHiveID(ctx context.Context) (int64, error) {
	return r.HiveRepo.NextID(ctx)
}

// Wrapper methods for RecordRepo
func (r *Repository) SaveRecords(ctx context.Context, hiveID int64, records []models.Record) error {
	return r.RecordRepo.SaveBatch(ctx, hiveID, records)
}

func (r *Repository) GetRecordsByHive(ctx context.Context, hiveID int64) ([]models.Record, error) {
	return r.RecordRepo.GetByHive(ctx, hiveID)
}

func (r *Repository) GetRecordsBetween(ctx context.Context, hiveID int64, from, to time.Time) ([]models.Record, error) {
	return r.RecordRepo.GetBetween(ctx, hiveID, from, to)
}

// Wrapper methods for MeteoRepo
func (r *Repository) SaveMeteoRecord(ctx context.Context, m models.MeteoRecord) (models.MeteoRecord, error) {
	return r.MeteoRepo.Save(ctx, m)
}

func (r *Repository) GetMeteoBetween(ctx context.Context, apiaryID int64, from, to time.Time) ([]models.MeteoRecord, error) {
	return r.MeteoRepo.GetBetween(ctx, apiaryID, from, to)
}
