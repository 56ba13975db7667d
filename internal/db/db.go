package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// MemoryPath is the only supported location: the catalog is rebuilt from
// catalog documents on every start and never written to disk.
const MemoryPath = ":memory:"

// OpenMemoryDB opens a private in-memory SQLite database with foreign keys
// enabled and the catalog schema applied.
//
// Each connection to ":memory:" sees its own empty database, so the pool is
// pinned to a single connection that is never recycled.
func OpenMemoryDB() (*sql.DB, error) {
	db, err := sql.Open("sqlite", MemoryPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}
