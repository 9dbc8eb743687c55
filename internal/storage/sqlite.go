package storage

import (
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

func init() {
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

type sqliteDialect struct{}

func (sqliteDialect) driverName() string {
	return "sqlite"
}

// dataSource accepts file:path, sqlite://path and sqlite:path. Timestamps
// are written in the sortable sqlite layout.
func (sqliteDialect) dataSource(opts Options) (string, error) {
	uri := opts.DatabaseURI

	for _, prefix := range []string{"sqlite://", "sqlite:"} {
		if strings.HasPrefix(strings.ToLower(uri), prefix) {
			uri = "file:" + uri[len(prefix):]
			break
		}
	}

	if strings.Contains(uri, "_time_format=") {
		return uri, nil
	}

	separator := "?"
	if strings.Contains(uri, "?") {
		separator = "&"
	}

	return uri + separator + "_time_format=sqlite", nil
}

// The embedded database serializes writers, one connection avoids SQLITE_BUSY.
func (sqliteDialect) configure(db *sqlx.DB) {
	db.SetMaxOpenConns(1)
}

func (sqliteDialect) createSchema() []string {
	return []string{
		`
		CREATE TABLE IF NOT EXISTS users(
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			surname TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			phone TEXT NOT NULL,
			address TEXT NOT NULL,
			postal_code TEXT NOT NULL,
			city TEXT NOT NULL,
			country TEXT NOT NULL,
			birth_date TEXT NOT NULL,
			password TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS orders(
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			items TEXT NOT NULL,
			total REAL NOT NULL,
			pickup_date TEXT NOT NULL,
			pickup_time TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'received',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		`,
	}
}

func (sqliteDialect) dropSchema() []string {
	return dropTables
}

func (sqliteDialect) isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}

	switch sqliteErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return true
	case sqlite3.SQLITE_CONSTRAINT:
		// primary result code when extended codes are off
		return strings.Contains(sqliteErr.Error(), "UNIQUE constraint failed")
	}

	return false
}
