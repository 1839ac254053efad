package database

import (
	"database/sql"

	"github.com/gobees/gobees/internal/models"
)

// ============================================================================
// ROW TYPES
// Column layout of each table, scanned and bound by sqlx through db tags.
// ============================================================================

type apiaryRow struct {
	ID           int64           `db:"id"`
	Name         string          `db:"name"`
	ImageURL     string          `db:"image_url"`
	LocationLat  sql.NullFloat64 `db:"location_lat"`
	LocationLong sql.NullFloat64 `db:"location_long"`
	Notes        string          `db:"notes"`
	LastRevision sql.NullInt64   `db:"last_revision"`
}

type hiveRow struct {
	ID           int64         `db:"id"`
	ApiaryID     int64         `db:"apiary_id"`
	Name         string        `db:"name"`
	ImageURL     string        `db:"image_url"`
	Notes        string        `db:"notes"`
	LastRevision sql.NullInt64 `db:"last_revision"`
}

type recordRow struct {
	ID          int64           `db:"id"`
	HiveID      int64           `db:"hive_id"`
	Timestamp   int64           `db:"timestamp"`
	NumBees     int             `db:"num_bees"`
	Temperature sql.NullFloat64 `db:"temperature"`
}

type meteoRow struct {
	ID            int64   `db:"id"`
	ApiaryID      int64   `db:"apiary_id"`
	Timestamp     int64   `db:"timestamp"`
	CityName      string  `db:"city_name"`
	Condition     string  `db:"condition"`
	ConditionIcon string  `db:"condition_icon"`
	Temperature   float64 `db:"temperature"`
	Pressure      float64 `db:"pressure"`
	Humidity      int     `db:"humidity"`
	WindSpeed     float64 `db:"wind_speed"`
	WindDegrees   float64 `db:"wind_degrees"`
	Clouds        int     `db:"clouds"`
	Rain          float64 `db:"rain"`
	Snow          float64 `db:"snow"`
}

// ============================================================================
// MODEL CONVERSION HELPERS
// ============================================================================

func toApiaryRow(a models.Apiary) apiaryRow {
	return apiaryRow{
		ID:           a.ID,
		Name:         a.Name,
		ImageURL:     a.ImageURL,
		LocationLat:  floatToNull(a.LocationLat),
		LocationLong: floatToNull(a.LocationLong),
		Notes:        a.Notes,
		LastRevision: timeToNull(a.LastRevision),
	}
}

func toApiaryModel(row apiaryRow) models.Apiary {
	return models.Apiary{
		ID:           row.ID,
		Name:         row.Name,
		ImageURL:     row.ImageURL,
		LocationLat:  nullToFloat(row.LocationLat),
		LocationLong: nullToFloat(row.LocationLong),
		Notes:        row.Notes,
		LastRevision: nullToTime(row.LastRevision),
	}
}

func toHiveRow(h models.Hive) hiveRow {
	return hiveRow{
		ID:           h.ID,
		ApiaryID:     h.ApiaryID,
		Name:         h.Name,
		ImageURL:     h.ImageURL,
		Notes:        h.Notes,
		LastRevision: timeToNull(h.LastRevision),
	}
}

func toHiveModel(row hiveRow) models.Hive {
	return models.Hive{
		ID:           row.ID,
		ApiaryID:     row.ApiaryID,
		Name:         row.Name,
		ImageURL:     row.ImageURL,
		Notes:        row.Notes,
		LastRevision: nullToTime(row.LastRevision),
	}
}

func toRecordRow(r models.Record) recordRow {
	return recordRow{
		ID:          r.ID,
		HiveID:      r.HiveID,
		Timestamp:   r.Timestamp.UnixNano(),
		NumBees:     r.NumBees,
		Temperature: floatToNull(r.Temperature),
	}
}

func toRecordModel(row recordRow) models.Record {
	return models.Record{
		ID:          row.ID,
		HiveID:      row.HiveID,
		Timestamp:   nullToTime(sql.NullInt64{Int64: row.Timestamp, Valid: true}),
		NumBees:     row.NumBees,
		Temperature: nullToFloat(row.Temperature),
	}
}

func toMeteoRow(m models.MeteoRecord) meteoRow {
	return meteoRow{
		ID:            m.ID,
		ApiaryID:      m.ApiaryID,
		Timestamp:     m.Timestamp.UnixNano(),
		CityName:      m.CityName,
		Condition:     m.Condition,
		ConditionIcon: m.ConditionIcon,
		Temperature:   m.Temperature,
		Pressure:      m.Pressure,
		Humidity:      m.Humidity,
		WindSpeed:     m.WindSpeed,
		WindDegrees:   m.WindDegrees,
		Clouds:        m.Clouds,
		Rain:          m.Rain,
		Snow:          m.Snow,
	}
}

func toMeteoModel(row meteoRow) models.MeteoRecord {
	return models.MeteoRecord{
		ID:            row.ID,
		ApiaryID:      row.ApiaryID,
		Timestamp:     nullToTime(sql.NullInt64{Int64: row.Timestamp, Valid: true}),
		CityName:      row.CityName,
		Condition:     row.Condition,
		ConditionIcon: row.ConditionIcon,
		Temperature:   row.Temperature,
		Pressure:      row.Pressure,
		Humidity:      row.Humidity,
		WindSpeed:     row.WindSpeed,
		WindDegrees:   row.WindDegrees,
		Clouds:        row.Clouds,
		Rain:          row.Rain,
		Snow:          row.Snow,
	}
}
