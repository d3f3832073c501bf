// Package repository holds the SQL for every table and maps rows onto the
// model types with pgx.
//
// Lookups that find nothing return sqlerr.NoRows(table) so the error handler
// can answer with "<Entity> not found".
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/grampanchayat/internal/server"
	"github.com/deppfellow/grampanchayat/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier is implemented by *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// dbtx is a querier that can open transactions, like *pgxpool.Pool.
type dbtx interface {
	querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

// poolOf returns the server's connection pool. Commands that never reach
// PostgreSQL build repositories without one.
func poolOf(s *server.Server) dbtx {
	if s.DB == nil || s.DB.Pool == nil {
		return nil
	}
	return s.DB.Pool
}

// inTx runs fn in a transaction, committing when it returns nil and rolling
// back otherwise.
func inTx(ctx context.Context, db dbtx, fn func(tx pgx.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return errors.Join(err, fmt.Errorf("failed to roll back: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func collectAll[T any](ctx context.Context, q querier, table, sql string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("failed to collect %s rows: %w", table, err)
	}
	return items, nil
}

func collectOne[T any](ctx context.Context, q querier, table, sql string, args ...any) (*T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}

	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sqlerr.NoRows(table)
		}
		return nil, fmt.Errorf("failed to collect %s row: %w", table, err)
	}
	return item, nil
}

// collectOptional is collectOne that reports a missing row as nil, nil.
func collectOptional[T any](ctx context.Context, q querier, table, sql string, args ...any) (*T, error) {
	item, err := collectOne[T](ctx, q, table, sql, args...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return item, err
}

func deleteByID[T any](ctx context.Context, q querier, table string, id any) (*T, error) {
	return collectOne[T](ctx, q, table, `DELETE FROM `+table+` WHERE id = $1 RETURNING *`, id)
}

// maxOrder returns the highest "order" in table, or -1 when it is empty.
func maxOrder(ctx context.Context, q querier, table string) (int, error) {
	var n int
	err := q.QueryRow(ctx, `SELECT COALESCE(MAX("order"), -1) FROM `+table).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to read max order of %s: %w", table, err)
	}
	return n, nil
}
