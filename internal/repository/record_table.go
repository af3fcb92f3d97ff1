package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// recordQueries holds the statements for a table shaped (id, name, <detail>).
// Doctors and patients share that shape and differ only in the detail column.
type recordQueries struct {
	entity    string // used in error messages
	insert    string
	selectAll string
	selectOne string
	update    string
	remove    string
	count     string
}

type recordRow struct {
	id     int
	name   string
	detail string
}

// nullable maps an unset patch field to NULL so COALESCE keeps the stored value.
func nullable(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func insertRecord(ctx context.Context, db *sql.DB, q recordQueries, r recordRow) error {
	res, err := db.ExecContext(ctx, q.insert, r.id, r.name, r.detail)
	if err != nil {
		return fmt.Errorf("insert %s %d: %w", q.entity, r.id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for insert %s %d: %w", q.entity, r.id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", q.entity, r.id, ErrConflict)
	}
	return nil
}

func listRecords(ctx context.Context, db *sql.DB, q recordQueries) ([]recordRow, error) {
	rows, err := db.QueryContext(ctx, q.selectAll)
	if err != nil {
		return nil, fmt.Errorf("select %ss: %w", q.entity, err)
	}
	defer rows.Close()

	out := make([]recordRow, 0, 16)
	for rows.Next() {
		var r recordRow
		if err := rows.Scan(&r.id, &r.name, &r.detail); err != nil {
			return nil, fmt.Errorf("scan %s: %w", q.entity, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %ss: %w", q.entity, err)
	}
	return out, nil
}

func getRecord(ctx context.Context, db *sql.DB, q recordQueries, id int) (recordRow, error) {
	var r recordRow
	err := db.QueryRowContext(ctx, q.selectOne, id).Scan(&r.id, &r.name, &r.detail)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return recordRow{}, fmt.Errorf("%s %d: %w", q.entity, id, ErrNotFound)
		}
		return recordRow{}, fmt.Errorf("select %s %d: %w", q.entity, id, err)
	}
	return r, nil
}

// updateRecord overwrites only the non-nil fields in a single statement.
// A patch with both fields nil still reports ErrNotFound for unknown ids.
func updateRecord(ctx context.Context, db *sql.DB, q recordQueries, id int, name, detail *string) error {
	res, err := db.ExecContext(ctx, q.update, nullable(name), nullable(detail), id)
	if err != nil {
		return fmt.Errorf("update %s %d: %w", q.entity, id, err)
	}
	return expectOneRow(res, q.entity, id)
}

func deleteRecord(ctx context.Context, db *sql.DB, q recordQueries, id int) error {
	res, err := db.ExecContext(ctx, q.remove, id)
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", q.entity, id, err)
	}
	return expectOneRow(res, q.entity, id)
}

func countRecords(ctx context.Context, db *sql.DB, q recordQueries) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, q.count).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %ss: %w", q.entity, err)
	}
	return n, nil
}

func expectOneRow(res sql.Result, entity string, id int) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for %s %d: %w", entity, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, ErrNotFound)
	}
	return nil
}
