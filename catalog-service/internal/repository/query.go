package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// Scanner is the part of *sql.Rows a ScanFunc needs.
type Scanner interface {
	Scan(dest ...any) error
}

// ScanFunc copies the current row into a typed record.
type ScanFunc func(row Scanner) error

// QueryHelper runs one statement per call on a dedicated connection.
// The connection is acquired at the start of the call and released on
// every return path, so no connection state is shared between calls.
type QueryHelper struct {
	db *sql.DB
}

// NewQueryHelper creates a new instance of QueryHelper
func NewQueryHelper(db *sql.DB) *QueryHelper {
	return &QueryHelper{db: db}
}

// Query executes query with positional args and calls scan once per row,
// in result order.
func (q *QueryHelper) Query(ctx context.Context, query string, args []any, scan ScanFunc) error {
	conn, err := q.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}

	return rows.Err()
}

// QueryOne is Query for statements expected to match at most one row.
// Only the first row is scanned; found is false when nothing matched.
func (q *QueryHelper) QueryOne(ctx context.Context, query string, args []any, scan ScanFunc) (found bool, err error) {
	err = q.Query(ctx, query, args, func(row Scanner) error {
		if found {
			return nil
		}
		found = true
		return scan(row)
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// Exec runs a write statement and reports the generated id (when the
// driver provides one) and the number of affected rows.
func (q *QueryHelper) Exec(ctx context.Context, query string, args []any) (lastInsertID int64, rowsAffected int64, err error) {
	conn, err := q.db.Conn(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	res, err := conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, 0, err
	}

	lastInsertID, err = res.LastInsertId()
	if err != nil {
		return 0, 0, err
	}

	rowsAffected, err = res.RowsAffected()
	if err != nil {
		return 0, 0, err
	}

	return lastInsertID, rowsAffected, nil
}
