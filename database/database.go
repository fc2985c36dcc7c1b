// Package database opens the relational store the tracker runs on and owns
// driver-specific knowledge (schema dialect, constraint error codes).
package database

import (
	"ExpenseTracker/database/postgres"
	"ExpenseTracker/database/sqlite"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	sqlitePkg "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Driver string
	Path   string
	URL    string
}

// New opens the database named by cfg and makes sure the schema exists.
func New(cfg Config) (*sqlx.DB, error) {
	switch cfg.Driver {
	case DriverSQLite, "":
		return sqlite.New(cfg.Path)
	case DriverPostgres:
		return postgres.New(cfg.URL)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// IsUniqueViolation reports whether err is a unique-constraint failure from
// either supported driver.
func IsUniqueViolation(err error) bool {
	if isSQLiteConstraint(err, sqlite3.SQLITE_CONSTRAINT_UNIQUE, "UNIQUE") {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}

	return false
}

// IsCheckViolation reports whether err is a CHECK-constraint failure, which is
// how the store rejects a transaction type outside income/expense.
func IsCheckViolation(err error) bool {
	if isSQLiteConstraint(err, sqlite3.SQLITE_CONSTRAINT_CHECK, "CHECK") {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23514"
	}

	return false
}

// isSQLiteConstraint matches the extended result code, falling back to the
// primary constraint code plus message when extended codes are off.
func isSQLiteConstraint(err error, extended int, keyword string) bool {
	var sqliteErr *sqlitePkg.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	if sqliteErr.Code() == extended {
		return true
	}
	return sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(sqliteErr.Error(), keyword)
}
