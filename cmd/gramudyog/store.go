package main

import (
	"bytes"
	"database/sql"
	"fmt"
	"os"

	"github.com/gramudyogai/gramudyog-go/internal/config"
	"github.com/gramudyogai/gramudyog-go/internal/db"
	"github.com/gramudyogai/gramudyog-go/internal/repository"
	"github.com/gramudyogai/gramudyog-go/internal/session"
)

// sessionStore is the configured session storage. db is nil unless the
// backend is SQL.
type sessionStore struct {
	session.Storage
	db      *sql.DB
	dialect db.Dialect
}

func (s *sessionStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// openStore builds the session storage selected by o.
func openStore(o config.SessionOptions) (*sessionStore, error) {
	switch o.Backend {
	case "", config.BackendMemory:
		return &sessionStore{Storage: session.NewMemoryStore()}, nil

	case config.BackendFile:
		var opts []session.FileOption
		switch {
		case o.KeyFile != "":
			key, err := os.ReadFile(o.KeyFile)
			if err != nil {
				return nil, fmt.Errorf("read session key: %w", err)
			}
			opts = append(opts, session.WithKey(bytes.TrimSpace(key)))
		case o.Passphrase != "":
			opts = append(opts, session.WithPassphrase(o.Passphrase))
		}
		fs, err := session.OpenFileStore(o.Path, opts...)
		if err != nil {
			return nil, err
		}
		return &sessionStore{Storage: fs}, nil

	case config.BackendSQLite, config.BackendPostgres, config.BackendPGX:
	default:
		return nil, fmt.Errorf("unknown session backend %q", o.Backend)
	}

	var (
		sqlDB   *sql.DB
		err     error
		dialect = db.Postgres
	)
	switch o.Backend {
	case config.BackendSQLite:
		sqlDB, err = db.InitSQLite(o.DSN)
		dialect = db.SQLite
	case config.BackendPostgres:
		sqlDB, err = db.InitPostgres(o.DSN)
	case config.BackendPGX:
		sqlDB, err = db.InitPGX(o.DSN)
	}
	if err != nil {
		return nil, fmt.Errorf("open session database: %w", err)
	}
	return &sessionStore{
		Storage: repository.NewSessionRepository(sqlDB, dialect),
		db:      sqlDB,
		dialect: dialect,
	}, nil
}
