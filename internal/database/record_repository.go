package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/gobees/gobees/internal/models"
)

// RecordRepo handles the time series of hive records.
type RecordRepo struct {
	db *sqlx.DB
}

const (
	insertRecord = `
		INSERT INTO records (hive_id, timestamp, num_bees, temperature)
		VALUES (:hive_id, :timestamp, :num_bees, :temperature)`

	upsertRecord = `
		INSERT INTO records (id, hive_id, timestamp, num_bees, temperature)
		VALUES (:id, :hive_id, :timestamp, :num_bees, :temperature)
		ON CONFLICT(id) DO UPDATE SET
			hive_id = excluded.hive_id,
			timestamp = excluded.timestamp,
			num_bees = excluded.num_bees,
			temperature = excluded.temperature`
)

// SaveBatch stores every record for the hive in one transaction.
// Either all records are written or none: a single invalid record rejects the batch.
func (r *RecordRepo) SaveBatch(ctx context.Context, hiveID int64, records []models.Record) error {
	for i, rec := range records {
		if err := rec.Validate(); err != nil {
			return fmt.Errorf("invalid record %d of %d: %w", i+1, len(records), err)
		}
	}

	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		found, err := exists(ctx, tx, "hives", hiveID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("hive %d: %w", hiveID, ErrNotFound)
		}

		for _, rec := range records {
			rec.HiveID = hiveID
			query := upsertRecord
			if rec.ID == 0 {
				query = insertRecord
			}
			if _, err := tx.NamedExecContext(ctx, query, toRecordRow(rec)); err != nil {
				return fmt.Errorf("failed to save record at %s for hive %d: %w",
					rec.Timestamp.Format(time.RFC3339), hiveID, err)
			}
		}
		return nil
	})
}

// GetByHive retrieves every record of a hive ordered by timestamp.
// It returns ErrNotFound when the hive does not exist.
func (r *RecordRepo) GetByHive(ctx context.Context, hiveID int64) ([]models.Record, error) {
	if err := r.requireHive(ctx, hiveID); err != nil {
		return nil, err
	}
	return r.query(ctx,
		`SELECT * FROM records WHERE hive_id = ? ORDER BY timestamp, id`, hiveID)
}

// GetBetween retrieves the records of a hive with from <= timestamp <= to
func (r *RecordRepo) GetBetween(ctx context.Context, hiveID int64, from, to time.Time) ([]models.Record, error) {
	if err := r.requireHive(ctx, hiveID); err != nil {
		return nil, err
	}
	return r.query(ctx,
		`SELECT * FROM records WHERE hive_id = ? AND timestamp BETWEEN ? AND ? ORDER BY timestamp, id`,
		hiveID, from.UnixNano(), to.UnixNano())
}

// Count returns the number of records stored for a hive
func (r *RecordRepo) Count(ctx context.Context, hiveID int64) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM records WHERE hive_id = ?`, hiveID); err != nil {
		return 0, fmt.Errorf("failed to count records for hive %d: %w", hiveID, err)
	}
	return n, nil
}

func (r *RecordRepo) requireHive(ctx context.Context, hiveID int64) error {
	found, err := exists(ctx, r.db, "hives", hiveID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("hive %d: %w", hiveID, ErrNotFound)
	}
	return nil
}

func (r *RecordRepo) query(ctx context.Context, query string, args ...any) ([]models.Record, error) {
	var rows []recordRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}

	records := make([]models.Record, len(rows))
	for i, row := range rows {
		records[i] = toRecordModel(row)
	}
	return records, nil
}
