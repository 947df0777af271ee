// Package schema creates the application database and its tables at startup.
// Every statement is create-if-absent, so repeated boots are safe; any
// failure is returned so the caller can refuse to serve traffic.
package schema

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/gyver-dev/wedding-planner/internal/db"
)

// sqlstateDuplicateDatabase is returned when CREATE DATABASE hits an
// existing database; that outcome is success here.
const sqlstateDuplicateDatabase = "42P04"

var identPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// EnsureDatabase creates dbName through a dedicated short-lived connection to
// the maintenance database. The connection is closed before this returns, so
// the serving pool is the only database handle left alive afterwards.
func EnsureDatabase(ctx context.Context, driverName, adminDSN, dbName string) error {
	// CREATE DATABASE cannot take a bind parameter; the name is operator
	// config, but reject anything that is not a plain identifier anyway.
	if !identPattern.MatchString(dbName) {
		return fmt.Errorf("schema: invalid database name %q", dbName)
	}

	conn, err := sql.Open(driverName, adminDSN)
	if err != nil {
		return fmt.Errorf("schema: open admin connection: %w", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if _, err := conn.ExecContext(ctx, fmt.Sprintf(`CREATE DATABASE %s`, dbName)); err != nil {
		type sqlStater interface{ SQLState() string }
		var pg sqlStater
		if errors.As(err, &pg) && pg.SQLState() == sqlstateDuplicateDatabase {
			return nil
		}
		return fmt.Errorf("schema: create database %s: %w", dbName, err)
	}
	return nil
}

var tableStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		full_name VARCHAR(255) NOT NULL,
		contact_number VARCHAR(20),
		address TEXT,
		password TEXT NOT NULL,
		role VARCHAR(50) DEFAULT 'client'
	)`,
	`CREATE TABLE IF NOT EXISTS services (
		id SERIAL PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		user_id INTEGER NOT NULL,
		user_email VARCHAR(255) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS subcategories (
		id SERIAL PRIMARY KEY,
		service_id INTEGER REFERENCES services(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		price DECIMAL(10, 2) NOT NULL,
		short_description TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id SERIAL PRIMARY KEY,
		service_id INTEGER REFERENCES services(id) ON DELETE CASCADE,
		subcategory_name VARCHAR(255) NOT NULL,
		user_id INTEGER REFERENCES users(id) ON DELETE CASCADE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS requests (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(20) NOT NULL,
		message TEXT NOT NULL,
		user_id INTEGER REFERENCES users(id) ON DELETE SET NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

// EnsureTables creates the five tables in dependency order. The first
// failure aborts: serving with a partial schema is worse than not starting.
func EnsureTables(ctx context.Context, gw *db.DB) error {
	for _, stmt := range tableStatements {
		if _, err := gw.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema: create table: %w", err)
		}
	}
	return nil
}
