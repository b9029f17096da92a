// Package db opens the SQLite databases clipnotes keeps its state in.
package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver
)

// Memory is the path of a private in-memory database.
const Memory = ":memory:"

var pragmas = []string{
	"PRAGMA foreign_keys = ON",
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 2000",
}

// Open opens the SQLite database at path and applies the connection pragmas.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// each connection to :memory: is a separate database
	if path == Memory {
		db.SetMaxOpenConns(1)
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}
	return db, nil
}

// Migrate applies schema when the recorded schema version is below version.
// The schema and the version bump run in one transaction.
func Migrate(db *sql.DB, version int, schema string) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY)`); err != nil {
		return err
	}

	var current int
	if err := db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_version`).Scan(&current); err != nil {
		return err
	}
	if current >= version {
		return nil
	}

	return WithTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(schema); err != nil {
			return fmt.Errorf("schema v%d: %w", version, err)
		}
		_, err := tx.Exec(`INSERT INTO schema_version (version) VALUES (?)`, version)
		return err
	})
}

// WithTx runs fn in a transaction, committing only when fn succeeds.
func WithTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// ValueOr returns the value held by n, or def when it is NULL.
func ValueOr[T any](n sql.Null[T], def T) T {
	if !n.Valid {
		return def
	}
	return n.V
}

// NullIf wraps v as a nullable value that is NULL when null is true.
func NullIf[T any](v T, null bool) sql.Null[T] {
	return sql.Null[T]{V: v, Valid: !null}
}
