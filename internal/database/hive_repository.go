package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gobees/gobees/internal/models"
)

// HiveRepo handles all hive-related database operations.
type HiveRepo struct {
	db *sqlx.DB
}

const upsertHive = `
	INSERT INTO hives (id, apiary_id, name, image_url, notes, last_revision)
	VALUES (:id, :apiary_id, :name, :image_url, :notes, :last_revision)
	ON CONFLICT(id) DO UPDATE SET
		apiary_id = excluded.apiary_id,
		name = excluded.name,
		image_url = excluded.image_url,
		notes = excluded.notes,
		last_revision = excluded.last_revision`

// Save inserts the hive or updates the row with the same id.
// The apiary referenced by hive.ApiaryID must exist.
func (r *HiveRepo) Save(ctx context.Context, hive models.Hive) (models.Hive, error) {
	if err := hive.Validate(); err != nil {
		return models.Hive{}, fmt.Errorf("invalid hive: %w", err)
	}

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		found, err := exists(ctx, tx, "apiaries", hive.ApiaryID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("apiary %d: %w", hive.ApiaryID, ErrNotFound)
		}

		if hive.ID == 0 {
			id, err := nextID(ctx, tx, hiveSequence)
			if err != nil {
				return err
			}
			hive.ID = id
		} else if err := raiseSequence(ctx, tx, hiveSequence, hive.ID); err != nil {
			return err
		}

		if _, err := tx.NamedExecContext(ctx, upsertHive, toHiveRow(hive)); err != nil {
			return fmt.Errorf("failed to save hive %d: %w", hive.ID, err)
		}
		return nil
	})
	if err != nil {
		return models.Hive{}, err
	}

	// Recordings are not stored with the hive; the saved hive carries none.
	return toHiveModel(toHiveRow(hive)), nil
}

// GetByID retrieves a hive by its ID, without records
func (r *HiveRepo) GetByID(ctx context.Context, id int64) (models.Hive, error) {
	var row hiveRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM hives WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Hive{}, fmt.Errorf("hive %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.Hive{}, fmt.Errorf("failed to get hive %d: %w", id, err)
	}
	return toHiveModel(row), nil
}

// GetByApiary retrieves the hives of an apiary ordered by ID.
// It returns ErrNotFound when the apiary itself does not exist.
func (r *HiveRepo) GetByApiary(ctx context.Context, apiaryID int64) ([]models.Hive, error) {
	found, err := exists(ctx, r.db, "apiaries", apiaryID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("apiary %d: %w", apiaryID, ErrNotFound)
	}

	var rows []hiveRow
	if err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM hives WHERE apiary_id = ? ORDER BY id`, apiaryID); err != nil {
		return nil, fmt.Errorf("failed to query hives for apiary %d: %w", apiaryID, err)
	}

	hives := make([]models.Hive, len(rows))
	for i, row := range rows {
		hives[i] = toHiveModel(row)
	}
	return hives, nil
}

// Delete removes a hive and its records
func (r *HiveRepo) Delete(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM records WHERE hive_id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete records for hive %d: %w", id, err)
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM hives WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete hive %d: %w", id, err)
		}
		return requireAffected(result, "hive", id)
	})
}

// NextID reserves the next hive id
func (r *HiveRepo) NextID(ctx context.Context) (int64, error) {
	return nextID(ctx, r.db, hiveSequence)
}
