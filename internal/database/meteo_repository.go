package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/gobees/gobees/internal/models"
)

// MeteoRepo handles weather observations attached to apiaries.
type MeteoRepo struct {
	db *sqlx.DB
}

const meteoColumns = `apiary_id, timestamp, city_name, condition, condition_icon, temperature,
	pressure, humidity, wind_speed, wind_degrees, clouds, rain, snow`

const meteoValues = `:apiary_id, :timestamp, :city_name, :condition, :condition_icon, :temperature,
	:pressure, :humidity, :wind_speed, :wind_degrees, :clouds, :rain, :snow`

const (
	insertMeteo = `INSERT INTO meteo_records (` + meteoColumns + `) VALUES (` + meteoValues + `)`

	upsertMeteo = `INSERT INTO meteo_records (id, ` + meteoColumns + `) VALUES (:id, ` + meteoValues + `)
		ON CONFLICT(id) DO UPDATE SET
			apiary_id = excluded.apiary_id,
			timestamp = excluded.timestamp,
			city_name = excluded.city_name,
			condition = excluded.condition,
			condition_icon = excluded.condition_icon,
			temperature = excluded.temperature,
			pressure = excluded.pressure,
			humidity = excluded.humidity,
			wind_speed = excluded.wind_speed,
			wind_degrees = excluded.wind_degrees,
			clouds = excluded.clouds,
			rain = excluded.rain,
			snow = excluded.snow`
)

// Save inserts the meteo record or updates the row with the same id
func (r *MeteoRepo) Save(ctx context.Context, m models.MeteoRecord) (models.MeteoRecord, error) {
	if err := m.Validate(); err != nil {
		return models.MeteoRecord{}, fmt.Errorf("invalid meteo record: %w", err)
	}

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		found, err := exists(ctx, tx, "apiaries", m.ApiaryID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("apiary %d: %w", m.ApiaryID, ErrNotFound)
		}

		if m.ID != 0 {
			if _, err := tx.NamedExecContext(ctx, upsertMeteo, toMeteoRow(m)); err != nil {
				return fmt.Errorf("failed to save meteo record %d: %w", m.ID, err)
			}
			return nil
		}

		result, err := tx.NamedExecContext(ctx, insertMeteo, toMeteoRow(m))
		if err != nil {
			return fmt.Errorf("failed to insert meteo record for apiary %d: %w", m.ApiaryID, err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get meteo record ID after insert: %w", err)
		}
		m.ID = id
		return nil
	})
	if err != nil {
		return models.MeteoRecord{}, err
	}
	return m, nil
}

// GetBetween retrieves the meteo records of an apiary with from <= timestamp <= to
func (r *MeteoRepo) GetBetween(ctx context.Context, apiaryID int64, from, to time.Time) ([]models.MeteoRecord, error) {
	var rows []meteoRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM meteo_records WHERE apiary_id = ? AND timestamp BETWEEN ? AND ? ORDER BY timestamp, id`,
		apiaryID, from.UnixNano(), to.UnixNano())
	if err != nil {
		return nil, fmt.Errorf("failed to query meteo records for apiary %d: %w", apiaryID, err)
	}

	meteo := make([]models.MeteoRecord, len(rows))
	for i, row := range rows {
		meteo[i] = toMeteoModel(row)
	}
	return meteo, nil
}
