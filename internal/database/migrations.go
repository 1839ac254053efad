package database

import (
	"context"
	"database/sql"
)

// Sequence names in id_sequences
const (
	apiarySequence = "apiaries"
	hiveSequence   = "hives"
)

// Timestamps are stored as Unix nanoseconds so range queries compare integers.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS apiaries (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL CHECK(length(name) > 0),
		image_url TEXT NOT NULL DEFAULT '',
		location_lat REAL,
		location_long REAL,
		notes TEXT NOT NULL DEFAULT '',
		last_revision INTEGER
	)`,

	`CREATE TABLE IF NOT EXISTS hives (
		id INTEGER PRIMARY KEY,
		apiary_id INTEGER NOT NULL,
		name TEXT NOT NULL CHECK(length(name) > 0),
		image_url TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		last_revision INTEGER,
		FOREIGN KEY (apiary_id) REFERENCES apiaries(id) ON DELETE CASCADE
	)`,

	`CREATE TABLE IF NOT EXISTS records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		hive_id INTEGER NOT NULL,
		timestamp INTEGER NOT NULL,
		num_bees INTEGER NOT NULL CHECK(num_bees >= 0),
		temperature REAL,
		FOREIGN KEY (hive_id) REFERENCES hives(id) ON DELETE CASCADE
	)`,

	`CREATE TABLE IF NOT EXISTS meteo_records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		apiary_id INTEGER NOT NULL,
		timestamp INTEGER NOT NULL,
		city_name TEXT NOT NULL DEFAULT '',
		condition TEXT NOT NULL DEFAULT '',
		condition_icon TEXT NOT NULL DEFAULT '',
		temperature REAL NOT NULL DEFAULT 0,
		pressure REAL NOT NULL DEFAULT 0,
		humidity INTEGER NOT NULL DEFAULT 0,
		wind_speed REAL NOT NULL DEFAULT 0,
		wind_degrees REAL NOT NULL DEFAULT 0,
		clouds INTEGER NOT NULL DEFAULT 0,
		rain REAL NOT NULL DEFAULT 0,
		snow REAL NOT NULL DEFAULT 0,
		FOREIGN KEY (apiary_id) REFERENCES apiaries(id) ON DELETE CASCADE
	)`,

	// Last id handed out per entity. Reservations and inserts both draw from here.
	`CREATE TABLE IF NOT EXISTS id_sequences (
		name TEXT PRIMARY KEY,
		value INTEGER NOT NULL DEFAULT 0
	)`,

	`INSERT OR IGNORE INTO id_sequences (name, value) VALUES ('apiaries', 0), ('hives', 0)`,

	`CREATE INDEX IF NOT EXISTS idx_hives_apiary ON hives(apiary_id)`,
	`CREATE INDEX IF NOT EXISTS idx_records_hive_time ON records(hive_id, timestamp)`,
	`CREATE INDEX IF NOT EXISTS idx_meteo_apiary_time ON meteo_records(apiary_id, timestamp)`,
}

// runMigrations creates the database schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
