package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store owns the SQLite database handle with an explicit lifecycle: it is
// created unopened, opened once, shared by every repository, and closed on
// shutdown.
//
// An unopened store is a degenerate but defined state: every read returns
// empty-equivalent values and every write is a no-op, mirroring a client
// that queries before initialization.
type Store struct {
	db *sql.DB
}

// NewStore creates an unopened store.
func NewStore() *Store {
	return &Store{}
}

// Open opens (creating if necessary) the database file and ensures the
// schema exists. Opening an already open store is a no-op.
func (s *Store) Open(ctx context.Context, path string) error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open database %s: %w", path, err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping database %s: %w", path, err)
	}

	if err := createTables(ctx, db); err != nil {
		db.Close()
		return err
	}

	s.db = db
	return nil
}

// Close releases the database handle. The store degrades back to its
// unopened state.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func createTables(ctx context.Context, db *sql.DB) error {
	// hydration_events.container_type_id is a soft reference on purpose:
	// no foreign key, so deleting a container type leaves history intact.
	schema := []string{
		`CREATE TABLE IF NOT EXISTS user_profile (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			age INTEGER NOT NULL,
			daily_goal INTEGER NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS container_types (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			volume INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS hydration_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			container_type_id TEXT NOT NULL,
			volume INTEGER NOT NULL,
			timestamp TEXT NOT NULL,
			date TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_hydration_events_date ON hydration_events(date)`,
	}

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}
