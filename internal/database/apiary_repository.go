package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gobees/gobees/internal/models"
)

// ApiaryRepo handles all apiary-related database operations.
type ApiaryRepo struct {
	db *sqlx.DB
}

const upsertApiary = `
	INSERT INTO apiaries (id, name, image_url, location_lat, location_long, notes, last_revision)
	VALUES (:id, :name, :image_url, :location_lat, :location_long, :notes, :last_revision)
	ON CONFLICT(id) DO UPDATE SET
		name = excluded.name,
		image_url = excluded.image_url,
		location_lat = excluded.location_lat,
		location_long = excluded.location_long,
		notes = excluded.notes,
		last_revision = excluded.last_revision`

// Save inserts the apiary or updates the row with the same id.
// An apiary without id gets the next value of the apiary sequence.
func (r *ApiaryRepo) Save(ctx context.Context, apiary models.Apiary) (models.Apiary, error) {
	if err := apiary.Validate(); err != nil {
		return models.Apiary{}, fmt.Errorf("invalid apiary: %w", err)
	}

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if apiary.ID == 0 {
			id, err := nextID(ctx, tx, apiarySequence)
			if err != nil {
				return err
			}
			apiary.ID = id
		} else if err := raiseSequence(ctx, tx, apiarySequence, apiary.ID); err != nil {
			return err
		}

		if _, err := tx.NamedExecContext(ctx, upsertApiary, toApiaryRow(apiary)); err != nil {
			return fmt.Errorf("failed to save apiary %d: %w", apiary.ID, err)
		}
		return nil
	})
	if err != nil {
		return models.Apiary{}, err
	}
	// Callers get the apiary as a later read returns it.
	return toApiaryModel(toApiaryRow(apiary)), nil
}

// GetByID retrieves an apiary by its ID
func (r *ApiaryRepo) GetByID(ctx context.Context, id int64) (models.Apiary, error) {
	var row apiaryRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM apiaries WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Apiary{}, fmt.Errorf("apiary %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.Apiary{}, fmt.Errorf("failed to get apiary %d: %w", id, err)
	}
	return toApiaryModel(row), nil
}

// GetAll retrieves all apiaries ordered by ID
func (r *ApiaryRepo) GetAll(ctx context.Context) ([]models.Apiary, error) {
	var rows []apiaryRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT * FROM apiaries ORDER BY id`); err != nil {
		return nil, fmt.Errorf("failed to query all apiaries: %w", err)
	}

	apiaries := make([]models.Apiary, len(rows))
	for i, row := range rows {
		apiaries[i] = toApiaryModel(row)
	}
	return apiaries, nil
}

// Delete removes an apiary with its meteo records, hives and their records
func (r *ApiaryRepo) Delete(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM records WHERE hive_id IN (SELECT id FROM hives WHERE apiary_id = ?)`, id); err != nil {
			return fmt.Errorf("failed to delete records for apiary %d: %w", id, err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM hives WHERE apiary_id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete hives for apiary %d: %w", id, err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM meteo_records WHERE apiary_id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete meteo records for apiary %d: %w", id, err)
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM apiaries WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete apiary %d: %w", id, err)
		}
		return requireAffected(result, "apiary", id)
	})
}

// DeleteAll removes every apiary and everything they own. Id sequences are kept.
func (r *ApiaryRepo) DeleteAll(ctx context.Context) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return deleteAllRows(ctx, tx)
	})
}

// NextID reserves the next apiary id
func (r *ApiaryRepo) NextID(ctx context.Context) (int64, error) {
	return nextID(ctx, r.db, apiarySequence)
}

// deleteAllRows empties every data table, children first
func deleteAllRows(ctx context.Context, tx *sqlx.Tx) error {
	for _, table := range []string{"records", "meteo_records", "hives", "apiaries"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}
