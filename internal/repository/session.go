// Package repository provides the SQL-backed session storage.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gramudyogai/gramudyog-go/internal/db"
	"github.com/gramudyogai/gramudyog-go/internal/session"
)

// SessionRepository implements session.Storage on the client_session table.
type SessionRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
	// Dialect decides the placeholder syntax.
	Dialect db.Dialect

	now func() time.Time
}

// NewSessionRepository creates a SessionRepository. sqlDB must already carry
// the schema created by the db package.
func NewSessionRepository(sqlDB *sql.DB, dialect db.Dialect) *SessionRepository {
	return &SessionRepository{DB: sqlDB, Dialect: dialect, now: time.Now}
}

// rebind rewrites $n placeholders for dialects that use ?.
func (r *SessionRepository) rebind(query string) string {
	if r.Dialect != db.SQLite {
		return query
	}
	var b strings.Builder
	for i := 0; i < len(query); i++ {
		if query[i] != '$' {
			b.WriteByte(query[i])
			continue
		}
		j := i + 1
		for j < len(query) && query[j] >= '0' && query[j] <= '9' {
			j++
		}
		if _, err := strconv.Atoi(query[i+1 : j]); err != nil {
			b.WriteByte(query[i])
			continue
		}
		b.WriteByte('?')
		i = j - 1
	}
	return b.String()
}

// Get returns the value stored under key or session.ErrNotFound.
func (r *SessionRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.DB.QueryRowContext(
		ctx,
		r.rebind(`SELECT value FROM client_session WHERE name = $1`),
		key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", session.ErrNotFound
	}
	return value, err
}

// Set upserts key.
func (r *SessionRepository) Set(ctx context.Context, key, value string) error {
	_, err := r.DB.ExecContext(
		ctx,
		r.rebind(`INSERT INTO client_session (name, value, updated_at) VALUES ($1, $2, $3)
ON CONFLICT (name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`),
		key, value, r.now().Unix(),
	)
	return err
}

// Remove deletes key.
func (r *SessionRepository) Remove(ctx context.Context, key string) error {
	_, err := r.DB.ExecContext(
		ctx,
		r.rebind(`DELETE FROM client_session WHERE name = $1`),
		key,
	)
	return err
}
