// Package local implements the record store against a SQLite file. It serves
// development and testing against the same collection shapes as the remote
// store; the dashboard reads it through the identical interface.
package local

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/vitadash/vitadash/internal/records"
	"github.com/vitadash/vitadash/internal/store"

	_ "modernc.org/sqlite" // register sqlite driver
)

// DB is a SQLite-backed record store.
type DB struct {
	db *sql.DB
}

var _ store.Store = (*DB)(nil)

// Open opens or creates the record database at the given path.
func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating store dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening store db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Profile implements store.Store.
func (d *DB) Profile(ctx context.Context, id string) (records.Row, error) {
	rows, err := d.query(ctx, "SELECT * FROM profiles WHERE identifier = ? LIMIT 1", id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, store.ErrUserNotFound
	}
	return rows[0], nil
}

// LatestWeight implements store.Store.
func (d *DB) LatestWeight(ctx context.Context, id string) (records.Row, error) {
	rows, err := d.query(ctx,
		"SELECT weight, created_at FROM weights WHERE identifier = ? ORDER BY created_at DESC LIMIT 1", id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// Meals implements store.Store.
func (d *DB) Meals(ctx context.Context, id string, start, end time.Time) ([]records.Row, error) {
	return d.rangeRead(ctx, "meals", id, start, end)
}

// Workouts implements store.Store.
func (d *DB) Workouts(ctx context.Context, id string, start, end time.Time) ([]records.Row, error) {
	return d.rangeRead(ctx, "workouts", id, start, end)
}

// Hydration implements store.Store.
func (d *DB) Hydration(ctx context.Context, id string, start, end time.Time) ([]records.Row, error) {
	return d.rangeRead(ctx, "hydration", id, start, end)
}

// Sleep implements store.Store.
func (d *DB) Sleep(ctx context.Context, id string, start, end time.Time) ([]records.Row, error) {
	return d.rangeRead(ctx, "sleep", id, start, end)
}

// Steps implements store.Store.
func (d *DB) Steps(ctx context.Context, id string, start, end time.Time) ([]records.Row, error) {
	return d.rangeRead(ctx, "steps", id, start, end)
}

func (d *DB) rangeRead(ctx context.Context, table, id string, start, end time.Time) ([]records.Row, error) {
	q := fmt.Sprintf(
		"SELECT * FROM %s WHERE identifier = ? AND created_at >= ? AND created_at < ? ORDER BY created_at", table)
	return d.query(ctx, q,
		id, start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339))
}

// query runs a read and converts each result row into a loosely-typed Row,
// preserving whatever dynamic types the driver hands back.
func (d *DB) query(ctx context.Context, q string, args ...any) ([]records.Row, error) {
	rows, err := d.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var result []records.Row
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(records.Row, len(cols))
		for i, col := range cols {
			if b, ok := vals[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = vals[i]
			}
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// Insert adds one row to a collection. Used for seeding a local store; the
// dashboard itself never writes.
func (d *DB) Insert(ctx context.Context, table string, row records.Row) error {
	if len(row) == 0 {
		return fmt.Errorf("empty row for %s", table)
	}

	cols := make([]string, 0, len(row))
	for col := range row {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	args := make([]any, 0, len(cols))
	for _, col := range cols {
		args = append(args, row[col])
	}

	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table,
		strings.Join(cols, ", "),
		strings.TrimRight(strings.Repeat("?, ", len(cols)), ", "),
	)
	if _, err := d.db.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("inserting into %s: %w", table, err)
	}
	return nil
}
