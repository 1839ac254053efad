package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
)

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
// fn must only use tx: the pool holds a single connection.
func withTx(ctx context.Context, db *sqlx.DB, fn func(*sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// nextID increments the named sequence and returns the new value.
// A single UPDATE ... RETURNING statement, so concurrent callers never share a value.
func nextID(ctx context.Context, q sqlx.QueryerContext, sequence string) (int64, error) {
	var id int64
	err := q.QueryRowxContext(ctx,
		`UPDATE id_sequences SET value = value + 1 WHERE name = ? RETURNING value`,
		sequence,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to advance %s sequence: %w", sequence, err)
	}
	return id, nil
}

// raiseSequence makes sure the named sequence never hands out id again
func raiseSequence(ctx context.Context, e sqlx.ExecerContext, sequence string, id int64) error {
	_, err := e.ExecContext(ctx,
		`UPDATE id_sequences SET value = MAX(value, ?) WHERE name = ?`,
		id, sequence,
	)
	if err != nil {
		return fmt.Errorf("failed to raise %s sequence to %d: %w", sequence, id, err)
	}
	return nil
}

// exists reports whether table has a row with the given id
func exists(ctx context.Context, q sqlx.QueryerContext, table string, id int64) (bool, error) {
	var found bool
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE id = ?)", table)
	if err := q.QueryRowxContext(ctx, query, id).Scan(&found); err != nil {
		return false, fmt.Errorf("failed to check %s %d: %w", table, id, err)
	}
	return found, nil
}

// requireAffected turns a zero-row write into ErrNotFound
func requireAffected(result sql.Result, what string, id int64) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return nil
}

// timeToNull converts a time to Unix nanoseconds, NULL for the zero time
func timeToNull(t time.Time) sql.NullInt64 {
	if t.IsZero() {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.UnixNano(), Valid: true}
}

// StoreLocation is the zone every time read from the database is in
var StoreLocation = time.Local

// nullToTime converts Unix nanoseconds back to a time in StoreLocation, zero for NULL
func nullToTime(n sql.NullInt64) time.Time {
	if !n.Valid {
		return time.Time{}
	}
	return time.Unix(0, n.Int64).In(StoreLocation)
}

func floatToNull(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func nullToFloat(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}
