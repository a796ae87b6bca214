package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies every schema statement. Statements are idempotent, so the
// whole list is replayed on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS user_profile (
		id               TEXT PRIMARY KEY,
		goal             TEXT NOT NULL CHECK (goal IN ('weight_management','diet','muscle_gain','weight_gain','stress_relief')),
		diseases_json    TEXT NOT NULL DEFAULT '[]',
		usual_bedtime    TEXT NOT NULL DEFAULT '',
		usual_wakeup     TEXT NOT NULL DEFAULT '',
		is_shift_worker  INTEGER NOT NULL DEFAULT 0,
		height_cm        REAL NOT NULL DEFAULT 0,
		weight_kg        REAL NOT NULL DEFAULT 0,
		muscle_mass_kg   REAL,
		fat_mass_kg      REAL,
		body_fat_percent REAL,
		waist_cm         REAL,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS check_ins (
		id            TEXT PRIMARY KEY,
		date          TEXT NOT NULL UNIQUE,
		mood          TEXT NOT NULL CHECK (mood IN ('great','good','neutral','low','stressed')),
		stress        TEXT NOT NULL CHECK (stress IN ('low','medium','high')),
		digestion     TEXT NOT NULL DEFAULT '',
		sleep_quality TEXT NOT NULL DEFAULT '',
		weather       TEXT NOT NULL CHECK (weather IN ('sunny','cloudy','rainy')),
		temperature   TEXT NOT NULL CHECK (temperature IN ('cold','cool','warm','hot')),
		air_quality   TEXT NOT NULL CHECK (air_quality IN ('fresh','normal','stuffy')),
		location      TEXT NOT NULL CHECK (location IN ('indoor','outdoor','both')),
		region_code   TEXT NOT NULL DEFAULT '',
		created_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS medications (
		id                TEXT PRIMARY KEY,
		name              TEXT NOT NULL,
		drug_id           TEXT NOT NULL DEFAULT '',
		tags_json         TEXT NOT NULL DEFAULT '[]',
		dosage            TEXT NOT NULL DEFAULT '',
		frequency         TEXT NOT NULL DEFAULT '',
		confirmed_by_user INTEGER NOT NULL DEFAULT 0,
		added_via         TEXT NOT NULL DEFAULT 'manual' CHECK (added_via IN ('search','manual')),
		created_at        TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS meal_logs (
		id        TEXT PRIMARY KEY,
		date      TEXT NOT NULL,
		meal_type TEXT NOT NULL CHECK (meal_type IN ('breakfast','lunch','dinner','snack')),
		tags_json TEXT NOT NULL DEFAULT '[]',
		portion   TEXT NOT NULL DEFAULT '',
		notes     TEXT NOT NULL DEFAULT '',
		logged_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_meal_logs_date ON meal_logs(date, logged_at)`,
	`ALTER TABLE meal_logs ADD COLUMN estimated_calories INTEGER`,

	// One snapshot per date. The plan body is stored whole and replaced whole.
	`CREATE TABLE IF NOT EXISTS plans (
		date           TEXT PRIMARY KEY,
		id             TEXT NOT NULL,
		check_in_id    TEXT NOT NULL DEFAULT '',
		snapshot_json  TEXT NOT NULL,
		generated_at   TEXT NOT NULL,
		invalidated_at TEXT
	)`,
}
