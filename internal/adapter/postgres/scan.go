package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Get builds query and scans exactly one row into dst.
// A missing row is reported as pgx.ErrNoRows so MapError sees one sentinel.
func Get(ctx context.Context, q Querier, dst any, query sq.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	if err := pgxscan.Get(ctx, q, dst, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return pgx.ErrNoRows
		}
		return err
	}
	return nil
}

// Select builds query and scans all rows into dst, which must be a pointer
// to a slice.
func Select(ctx context.Context, q Querier, dst any, query sq.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Select(ctx, q, dst, sql, args...)
}

// Exec builds and executes a statement that returns no rows.
func Exec(ctx context.Context, q Querier, query sq.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("build query: %w", err)
	}
	return q.Exec(ctx, sql, args...)
}

// Count builds a single-column count query and returns its value.
func Count(ctx context.Context, q Querier, query sq.Sqlizer) (int, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}
	var n int
	if err := q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
