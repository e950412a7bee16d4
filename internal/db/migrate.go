package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER
// TABLE duplicates from re-runs are tolerated.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		id             TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		level          TEXT NOT NULL
		               CHECK(level IN ('beginner','reprise','intermediate','advanced','expert')),
		mode           TEXT NOT NULL,
		goal           TEXT NOT NULL DEFAULT '',
		target_date    TEXT,
		training_days  TEXT NOT NULL DEFAULT '',
		day_count_min  INTEGER NOT NULL DEFAULT 0,
		day_count_max  INTEGER NOT NULL DEFAULT 0,
		spacing_min    INTEGER NOT NULL DEFAULT 1,
		spacing_max    INTEGER NOT NULL DEFAULT 7,
		vdot           REAL,
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS plans (
		id          TEXT PRIMARY KEY,
		mode        TEXT NOT NULL,
		goal        TEXT NOT NULL DEFAULT '',
		level       TEXT NOT NULL,
		nb_weeks    INTEGER NOT NULL,
		start_date  TEXT NOT NULL,
		end_date    TEXT NOT NULL,
		days        TEXT NOT NULL DEFAULT '',
		active      INTEGER NOT NULL DEFAULT 1,
		created_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS plan_phases (
		plan_id     TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		name        TEXT NOT NULL CHECK(name IN ('base','build','taper')),
		week_start  INTEGER NOT NULL,
		week_end    INTEGER NOT NULL,
		PRIMARY KEY (plan_id, name)
	)`,

	// Session identity is deterministic per slot, so regenerated plans
	// carry the same session IDs; uniqueness is scoped to the plan.
	`CREATE TABLE IF NOT EXISTS sessions (
		id            TEXT NOT NULL,
		plan_id       TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		slot_id       TEXT NOT NULL,
		date          TEXT NOT NULL,
		week          INTEGER NOT NULL,
		phase         TEXT NOT NULL,
		type          TEXT NOT NULL,
		title         TEXT NOT NULL,
		description   TEXT NOT NULL DEFAULT '',
		duration_min  INTEGER NOT NULL,
		distance_km   REAL NOT NULL DEFAULT 0,
		tags          TEXT NOT NULL DEFAULT '',
		steps         TEXT NOT NULL DEFAULT '',
		risk_level    TEXT NOT NULL DEFAULT 'soft',
		risk_alerts   TEXT NOT NULL DEFAULT '',
		risk_notes    TEXT NOT NULL DEFAULT '',
		template_code TEXT NOT NULL DEFAULT '',
		created_at    TEXT NOT NULL,
		PRIMARY KEY (plan_id, id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_plan_date ON sessions(plan_id, date)`,

	`CREATE TABLE IF NOT EXISTS feedback (
		id          TEXT PRIMARY KEY,
		date        TEXT NOT NULL UNIQUE,
		state       TEXT NOT NULL,
		note        TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL
	)`,
}
