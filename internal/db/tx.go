package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Querier is the query surface shared by *DB and *Tx, so repository code can
// run against either.
type Querier interface {
	Exec(ctx context.Context, query string, args ...any) (sql.Result, error)
	Query(ctx context.Context, query string, args ...any) (*Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) *Row
}

// Tx mirrors the DB query surface inside a transaction.
type Tx struct {
	sqltx *sql.Tx
}

func (t *Tx) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	res, err := t.sqltx.ExecContext(ctx, query, args...)
	return res, mapError(err)
}

func (t *Tx) Query(ctx context.Context, query string, args ...any) (*Rows, error) {
	rows, err := t.sqltx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	return &Rows{Rows: rows}, nil
}

func (t *Tx) QueryRow(ctx context.Context, query string, args ...any) *Row {
	return &Row{raw: t.sqltx.QueryRowContext(ctx, query, args...)}
}

// ExecTx runs fn inside a transaction, committing on nil and rolling back on
// error or panic. Multi-statement mutations (service create/update/delete)
// go through here so readers never see a half-applied state.
func (d *DB) ExecTx(ctx context.Context, fn func(*Tx) error) (err error) {
	ctx, cancel := d.applyTimeout(ctx)
	defer cancel()

	sqltx, err := d.sqldb.BeginTx(ctx, nil)
	if err != nil {
		return mapError(err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = sqltx.Rollback()
			panic(p)
		}
	}()

	if err := fn(&Tx{sqltx: sqltx}); err != nil {
		if rbErr := sqltx.Rollback(); rbErr != nil {
			return fmt.Errorf("db: rollback failed: %v (original: %w)", rbErr, err)
		}
		return err
	}

	if err := sqltx.Commit(); err != nil {
		return mapError(err)
	}
	return nil
}

var (
	_ Querier = (*DB)(nil)
	_ Querier = (*Tx)(nil)
)
