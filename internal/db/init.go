// Package db opens the SQL databases that can hold a client session and
// creates their schema.
package db

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Dialect selects placeholder syntax for queries.
type Dialect int

const (
	// Postgres uses $1, $2, ... placeholders.
	Postgres Dialect = iota
	// SQLite uses ? placeholders.
	SQLite
)

func (d Dialect) String() string {
	switch d {
	case Postgres:
		return "postgres"
	case SQLite:
		return "sqlite"
	}
	return fmt.Sprintf("Dialect(%d)", int(d))
}

// schema is valid for both dialects.
const schema = `
CREATE TABLE IF NOT EXISTS client_session (
    name TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at BIGINT NOT NULL
);
`

// InitPostgres opens a PostgreSQL database through lib/pq.
func InitPostgres(dsn string) (*sql.DB, error) {
	return open("postgres", dsn)
}

// InitPGX opens a PostgreSQL database through the pgx stdlib driver.
func InitPGX(dsn string) (*sql.DB, error) {
	return open("pgx", dsn)
}

// InitSQLite opens (creating if needed) a SQLite database file.
func InitSQLite(path string) (*sql.DB, error) {
	db, err := open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// SQLite serialises writers; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	return db, nil
}

func open(driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return db, nil
}
