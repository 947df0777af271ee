// Package db is the persistence gateway: a pooled, context-aware wrapper
// around database/sql. All SQL in the application goes through it with
// parameter placeholders; no query text ever embeds a value.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type Config struct {
	DSN        string
	DriverName string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration

	// QueryTimeout is applied to every statement whose context carries no
	// deadline of its own. Zero disables the default.
	QueryTimeout time.Duration
}

// DB wraps *sql.DB with a default per-query timeout and unified error
// mapping. Safe for concurrent use.
type DB struct {
	sqldb *sql.DB
	cfg   Config
}

// Open opens the pool described by cfg and verifies connectivity.
func Open(cfg Config) (*DB, error) {
	if cfg.DSN == "" || cfg.DriverName == "" {
		return nil, fmt.Errorf("db: DSN and DriverName are required")
	}

	sqldb, err := sql.Open(cfg.DriverName, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("db: open: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		sqldb.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqldb.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqldb.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	if cfg.ConnMaxIdleTime > 0 {
		sqldb.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqldb.PingContext(ctx); err != nil {
		_ = sqldb.Close()
		return nil, fmt.Errorf("db: ping: %w", err)
	}

	return &DB{sqldb: sqldb, cfg: cfg}, nil
}

func (d *DB) Close() error { return d.sqldb.Close() }

func (d *DB) Ping(ctx context.Context) error {
	ctx, cancel := d.applyTimeout(ctx)
	defer cancel()
	return d.sqldb.PingContext(ctx)
}

// Exec executes a statement that returns no rows (INSERT, UPDATE, DELETE,
// DDL).
func (d *DB) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	ctx, cancel := d.applyTimeout(ctx)
	defer cancel()
	res, err := d.sqldb.ExecContext(ctx, query, args...)
	return res, mapError(err)
}

// Query executes a query returning rows. The caller must close the result;
// Close also releases the query deadline.
func (d *DB) Query(ctx context.Context, query string, args ...any) (*Rows, error) {
	ctx, cancel := d.applyTimeout(ctx)
	rows, err := d.sqldb.QueryContext(ctx, query, args...)
	if err != nil {
		cancel()
		return nil, mapError(err)
	}
	return &Rows{Rows: rows, cancel: cancel}, nil
}

// QueryRow executes a query expected to return at most one row. Scan on the
// returned Row yields ErrNotFound when nothing matched.
func (d *DB) QueryRow(ctx context.Context, query string, args ...any) *Row {
	ctx, cancel := d.applyTimeout(ctx)
	return &Row{raw: d.sqldb.QueryRowContext(ctx, query, args...), cancel: cancel}
}

// applyTimeout deadlines ctx when the caller has not. The returned cancel is
// a no-op when no deadline was added.
func (d *DB) applyTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if d.cfg.QueryTimeout == 0 {
		return ctx, func() {}
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d.cfg.QueryTimeout)
}

// Rows wraps *sql.Rows; the query deadline stays alive while the caller is
// still streaming and is released by Close.
type Rows struct {
	*sql.Rows
	cancel context.CancelFunc
}

func (r *Rows) Close() error {
	err := r.Rows.Close()
	if r.cancel != nil {
		r.cancel()
	}
	return err
}

// Row wraps *sql.Row so errors pass through the unified mapper. The row is
// materialized at Scan, which also releases the query deadline.
type Row struct {
	raw    *sql.Row
	cancel context.CancelFunc
}

func (r *Row) Scan(dest ...any) error {
	err := r.raw.Scan(dest...)
	if r.cancel != nil {
		r.cancel()
	}
	return mapError(err)
}
