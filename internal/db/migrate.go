package db

import (
	"database/sql"
	"fmt"
)

// Migrate creates the schema. Every statement is idempotent, so it runs on
// each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS cities (
		name       TEXT PRIMARY KEY,
		center_lat REAL NOT NULL,
		center_lon REAL NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS pois (
		city_name    TEXT NOT NULL REFERENCES cities(name) ON DELETE CASCADE,
		position     INTEGER NOT NULL,
		name         TEXT NOT NULL,
		theme        TEXT NOT NULL DEFAULT '',
		cost         REAL CHECK(cost IS NULL OR cost >= 0),
		duration_min INTEGER,
		rating       REAL CHECK(rating IS NULL OR (rating >= 0 AND rating <= 5)),
		reviews      INTEGER,
		lat          REAL NOT NULL,
		lon          REAL NOT NULL,
		PRIMARY KEY (city_name, name)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_pois_city_position ON pois(city_name, position)`,

	`CREATE TABLE IF NOT EXISTS trips (
		id              TEXT PRIMARY KEY,
		origin          TEXT NOT NULL DEFAULT '',
		destination     TEXT NOT NULL,
		start_date      TEXT NOT NULL,
		end_date        TEXT NOT NULL,
		budget          REAL NOT NULL CHECK(budget > 0),
		party_size      INTEGER NOT NULL DEFAULT 1 CHECK(party_size > 0),
		themes          TEXT NOT NULL DEFAULT '',
		mood            REAL NOT NULL DEFAULT 5,
		modes           TEXT NOT NULL DEFAULT '',
		day_start_hour  INTEGER NOT NULL DEFAULT 9,
		day_end_hour    INTEGER NOT NULL DEFAULT 21,
		base_seed       INTEGER NOT NULL,
		sequence        TEXT NOT NULL DEFAULT 'identity',
		current_variant INTEGER NOT NULL DEFAULT 0,
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_trips_created ON trips(created_at)`,

	`CREATE TABLE IF NOT EXISTS trip_variants (
		trip_id  TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		seed     INTEGER NOT NULL,
		PRIMARY KEY (trip_id, position)
	)`,

	`CREATE TABLE IF NOT EXISTS variant_days (
		trip_id   TEXT NOT NULL,
		variant   INTEGER NOT NULL,
		day_index INTEGER NOT NULL,
		date      TEXT NOT NULL,
		PRIMARY KEY (trip_id, variant, day_index),
		FOREIGN KEY (trip_id, variant) REFERENCES trip_variants(trip_id, position) ON DELETE CASCADE
	)`,

	`CREATE TABLE IF NOT EXISTS day_activities (
		trip_id      TEXT NOT NULL,
		variant      INTEGER NOT NULL,
		day_index    INTEGER NOT NULL,
		position     INTEGER NOT NULL,
		poi_name     TEXT NOT NULL,
		theme        TEXT NOT NULL DEFAULT '',
		cost         REAL,
		duration_min INTEGER,
		rating       REAL,
		reviews      INTEGER,
		lat          REAL NOT NULL DEFAULT 0,
		lon          REAL NOT NULL DEFAULT 0,
		start_time   TEXT NOT NULL,
		end_time     TEXT NOT NULL,
		PRIMARY KEY (trip_id, variant, day_index, position),
		FOREIGN KEY (trip_id, variant, day_index)
			REFERENCES variant_days(trip_id, variant, day_index) ON DELETE CASCADE
	)`,

	`CREATE TABLE IF NOT EXISTS trip_travel (
		trip_id      TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		mode         TEXT NOT NULL CHECK(mode IN ('flight','train','bus','cab')),
		provider     TEXT NOT NULL,
		price        REAL NOT NULL,
		currency     TEXT NOT NULL DEFAULT 'INR',
		depart       TEXT NOT NULL DEFAULT '',
		arrive       TEXT NOT NULL DEFAULT '',
		duration_min INTEGER NOT NULL DEFAULT 0,
		rating       REAL NOT NULL DEFAULT 0,
		reviews      INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (trip_id, mode)
	)`,
}
