package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// NewSQLiteDB opens the question database. A single connection with a
// busy timeout keeps SQLite's writer locking out of the application's
// way under concurrent requests.
func NewSQLiteDB(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA busy_timeout = 5000;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy_timeout: %w", err)
	}

	return db, nil
}

// InitSchema creates the questions table if missing and applies the
// additive column checks. It is idempotent and runs once per process
// start.
func InitSchema(ctx context.Context, db *sqlx.DB) error {
	const create = `
	CREATE TABLE IF NOT EXISTS questions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		question TEXT NOT NULL,
		option_a TEXT NOT NULL,
		option_b TEXT NOT NULL,
		option_c TEXT NOT NULL,
		option_d TEXT NOT NULL,
		correct_option TEXT NOT NULL,
		tags TEXT,
		section TEXT
	);`

	if _, err := db.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("failed to create questions table: %w", err)
	}

	// Tables created by earlier releases predate the section column;
	// add it in place without touching existing rows.
	if err := ensureColumn(ctx, db, "questions", "section", "TEXT"); err != nil {
		return err
	}

	return nil
}

func ensureColumn(ctx context.Context, db *sqlx.DB, table, column, columnType string) error {
	rows, err := db.QueryxContext(ctx, fmt.Sprintf(`PRAGMA table_info(%s)`, table))
	if err != nil {
		return fmt.Errorf("failed to inspect %s schema: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid        int
			name       string
			ctype      string
			notNull    int
			defaultVal interface{}
			pk         int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &defaultVal, &pk); err != nil {
			return fmt.Errorf("failed to scan %s column info: %w", table, err)
		}
		if name == column {
			return nil
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read %s schema: %w", table, err)
	}

	alter := fmt.Sprintf(`ALTER TABLE %s ADD COLUMN %s %s`, table, column, columnType)
	if _, err := db.ExecContext(ctx, alter); err != nil {
		return fmt.Errorf("failed to add %s.%s: %w", table, column, err)
	}
	return nil
}
