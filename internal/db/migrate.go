package db

import (
	"database/sql"
	"fmt"
)

// Migrate creates the catalog schema. Statements are idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS templates (
		id               TEXT PRIMARY KEY,
		position         INTEGER NOT NULL,
		title            TEXT NOT NULL,
		description      TEXT NOT NULL DEFAULT '',
		kind             TEXT NOT NULL DEFAULT 'template'
		                 CHECK(kind IN ('template','project')),
		icon             TEXT NOT NULL DEFAULT '',
		goal_text        TEXT NOT NULL,
		timeline_value   INTEGER NOT NULL CHECK(timeline_value >= 1),
		timeline_unit    TEXT NOT NULL
		                 CHECK(timeline_unit IN ('days','weeks','months')),
		experience_level TEXT NOT NULL
		                 CHECK(experience_level IN ('beginner','intermediate','advanced')),
		clarity          REAL NOT NULL CHECK(clarity >= 0 AND clarity <= 1),
		metadata_json    TEXT
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_templates_position ON templates(position)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id             TEXT PRIMARY KEY,
		position       INTEGER NOT NULL,
		title          TEXT NOT NULL,
		description    TEXT NOT NULL DEFAULT '',
		duration_value INTEGER NOT NULL CHECK(duration_value >= 1),
		duration_unit  TEXT NOT NULL
		               CHECK(duration_unit IN ('days','weeks','months')),
		difficulty     TEXT NOT NULL
		               CHECK(difficulty IN ('beginner','intermediate','advanced'))
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_projects_position ON projects(position)`,
	`CREATE TABLE IF NOT EXISTS tips (
		id       TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		title    TEXT NOT NULL DEFAULT '',
		content  TEXT NOT NULL,
		kind     TEXT NOT NULL CHECK(kind IN ('tip','fact','quote'))
	)`,
}
