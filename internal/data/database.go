package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

var (
	ErrMissingTable        = errors.New("missing table")
	ErrForeignKeysDisabled = errors.New("foreign key enforcement is not enabled")
)

// Querier is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TxBeginner is satisfied by *sql.DB and *sql.Conn.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// Open connects to an existing database file. A missing file is an error,
// it is never created here.
func Open(path string) (*sql.DB, error) {
	return open(path, "rw")
}

// Create opens the database file, creating it if needed, and switches it
// to WAL mode the way the blog application runs it.
func Create(ctx context.Context, path string) (*sql.DB, error) {
	db, err := open(path, "rwc")
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	return db, nil
}

func open(path, mode string) (*sql.DB, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve database path %q: %w", path, err)
	}

	dsn := (&url.URL{
		Scheme:   "file",
		Path:     filepath.ToSlash(abs),
		RawQuery: "mode=" + mode,
	}).String()

	// Note: The driver name is "sqlite", not "sqlite3" for modernc
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", abs, err)
	}

	// PRAGMA foreign_keys is per connection, so keep exactly one.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database %s: %w", abs, err)
	}

	if _, err := db.Exec("PRAGMA busy_timeout=5000;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	return db, nil
}

// EnableForeignKeys turns on referential integrity for the connection and
// reads it back. Must run outside a transaction, where SQLite ignores it.
func EnableForeignKeys(ctx context.Context, q Querier) error {
	if _, err := q.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	var enabled int
	if err := q.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&enabled); err != nil {
		return fmt.Errorf("failed to read foreign_keys pragma: %w", err)
	}
	if enabled != 1 {
		return ErrForeignKeysDisabled
	}

	return nil
}

// CheckTables fails with ErrMissingTable for the first counted table that
// the database does not have.
func CheckTables(ctx context.Context, q Querier) error {
	for _, table := range CountedTables {
		var exists bool
		err := q.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM sqlite_master WHERE type = 'table' AND name = ?)",
			table,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to look up table %s: %w", table, err)
		}
		if !exists {
			return fmt.Errorf("%w: %s", ErrMissingTable, table)
		}
	}

	return nil
}

// DeleteAllArticles removes every article row in one committed transaction.
// Comments and likes go with them through ON DELETE CASCADE, provided
// foreign keys are enabled on db.
func DeleteAllArticles(ctx context.Context, db TxBeginner) (int64, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, "DELETE FROM articles")
	if err != nil {
		return 0, fmt.Errorf("failed to delete articles: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit article deletion: %w", err)
	}

	deleted, _ := res.RowsAffected()
	return deleted, nil
}
