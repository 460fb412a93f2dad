package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// =============================================================================
// Helper Functions
// =============================================================================

// parseTimestamp parses a timestamp from SQLite TEXT format.
// Returns the zero time if parsing fails.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05.999999",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

const festivalColumns = `
	id, name, lunar_month, lunar_day, is_leap, description,
	created_at, updated_at
`

func scanFestival(row rowScanner) (*Festival, error) {
	var f Festival
	var description sql.NullString
	var createdAt, updatedAt string

	if err := row.Scan(
		&f.ID,
		&f.Name,
		&f.LunarMonth,
		&f.LunarDay,
		&f.IsLeap,
		&description,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	if description.Valid {
		f.Description = &description.String
	}
	f.CreatedAt = parseTimestamp(createdAt)
	f.UpdatedAt = parseTimestamp(updatedAt)
	return &f, nil
}

// execer is the subset of *sql.DB and *sql.Tx used for inserts.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertFestival(ctx context.Context, ex execer, f *Festival) error {
	query := `
		INSERT INTO festivals (name, lunar_month, lunar_day, is_leap, description)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := ex.ExecContext(ctx, query,
		f.Name,
		f.LunarMonth,
		f.LunarDay,
		f.IsLeap,
		nullableString(f.Description),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("festival %q: %w", f.Name, ErrDuplicate)
		}
		return fmt.Errorf("insert festival: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	f.ID = id
	return nil
}

// =============================================================================
// Festival Queries
// =============================================================================

// CreateFestival inserts a new festival and sets its ID.
// Returns ErrDuplicate if a festival with the same name exists.
func (db *DB) CreateFestival(ctx context.Context, f *Festival) error {
	if err := insertFestival(ctx, db, f); err != nil {
		return err
	}

	db.logger.Debug("festival created",
		"id", f.ID,
		"name", f.Name,
	)
	return nil
}

// GetFestival retrieves a festival by ID.
// Returns ErrNotFound if it doesn't exist.
func (db *DB) GetFestival(ctx context.Context, id int64) (*Festival, error) {
	query := `SELECT ` + festivalColumns + ` FROM festivals WHERE id = ?`

	f, err := scanFestival(db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query festival: %w", err)
	}
	return f, nil
}

// ListFestivals returns every festival in lunar calendar order. Leap
// occurrences sort after the ordinary month, and a LastDay festival sorts
// after every numbered day of its month.
func (db *DB) ListFestivals(ctx context.Context) ([]Festival, error) {
	query := `SELECT ` + festivalColumns + `
		FROM festivals
		ORDER BY lunar_month, is_leap,
			CASE lunar_day WHEN 0 THEN 31 ELSE lunar_day END,
			name
	`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query festivals: %w", err)
	}
	defer rows.Close()

	var festivals []Festival
	for rows.Next() {
		f, err := scanFestival(rows)
		if err != nil {
			return nil, fmt.Errorf("scan festival: %w", err)
		}
		festivals = append(festivals, *f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate festivals: %w", err)
	}

	return festivals, nil
}

// DeleteFestival removes a festival by ID.
// Returns ErrNotFound if it doesn't exist.
func (db *DB) DeleteFestival(ctx context.Context, id int64) error {
	result, err := db.ExecContext(ctx, "DELETE FROM festivals WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete festival: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if rows == 0 {
		return ErrNotFound
	}

	db.logger.Debug("festival deleted", "id", id)
	return nil
}

// ImportFestivals inserts festivals in a single transaction. Existing
// festivals with the same name are replaced when replace is true; otherwise
// a name clash aborts the whole import with ErrDuplicate.
//
// Returns the number of festivals written.
func (db *DB) ImportFestivals(ctx context.Context, festivals []Festival, replace bool) (int, error) {
	count := 0
	err := db.WithTx(ctx, func(tx *Tx) error {
		for i := range festivals {
			f := &festivals[i]
			if replace {
				if _, err := tx.ExecContext(ctx,
					"DELETE FROM festivals WHERE name = ?", f.Name); err != nil {
					return fmt.Errorf("replace festival %q: %w", f.Name, err)
				}
			}
			if err := insertFestival(ctx, tx, f); err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	db.logger.Info("festivals imported", "count", count, "replace", replace)
	return count, nil
}
