// Package testutil opens throwaway SQLite databases carrying the application
// schema, so repository and handler tests share one fixture instead of each
// copying the DDL.
package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/gyver-dev/wedding-planner/internal/db"
)

// tableStatements mirrors the tables the schema manager creates on Postgres,
// translated to SQLite's dialect.
var tableStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL UNIQUE,
		full_name TEXT NOT NULL,
		contact_number TEXT,
		address TEXT,
		password TEXT NOT NULL,
		role TEXT DEFAULT 'client'
	)`,
	`CREATE TABLE IF NOT EXISTS services (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		user_id INTEGER NOT NULL,
		user_email TEXT NOT NULL,
		created_at TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS subcategories (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		service_id INTEGER REFERENCES services(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		price DECIMAL(10, 2) NOT NULL,
		short_description TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		service_id INTEGER REFERENCES services(id) ON DELETE CASCADE,
		subcategory_name TEXT NOT NULL,
		user_id INTEGER REFERENCES users(id) ON DELETE CASCADE,
		created_at TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS requests (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		message TEXT NOT NULL,
		user_id INTEGER REFERENCES users(id) ON DELETE SET NULL,
		created_at TIMESTAMP
	)`,
}

// OpenMemoryGateway opens an in-memory database with the application schema.
// A single connection, since each :memory: connection is its own database.
func OpenMemoryGateway(t *testing.T) *db.DB {
	t.Helper()
	return open(t, ":memory:?_foreign_keys=on", 1)
}

// OpenFileGateway opens a file-backed database with the application schema.
// WAL mode lets readers run concurrently with a writer, so this is the
// fixture for tests that exercise the pool from several goroutines.
func OpenFileGateway(t *testing.T) *db.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "app.db") + "?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000"
	return open(t, dsn, 4)
}

func open(t *testing.T, dsn string, maxConns int) *db.DB {
	t.Helper()

	gw, err := db.Open(db.Config{
		DSN:          dsn,
		DriverName:   "sqlite3",
		MaxOpenConns: maxConns,
		QueryTimeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = gw.Close() })

	ctx := context.Background()
	for _, stmt := range tableStatements {
		if _, err := gw.Exec(ctx, stmt); err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}
	return gw
}
