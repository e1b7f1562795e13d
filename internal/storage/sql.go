package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type dialect struct {
	name   string
	create string
	get    string
	upsert string
}

var (
	sqliteDialect = dialect{
		name:   "sqlite",
		create: `CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value BLOB NOT NULL)`,
		get:    `SELECT value FROM kv WHERE key = ?`,
		upsert: `INSERT INTO kv(key, value) VALUES(?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
	}
	postgresDialect = dialect{
		name:   "postgres",
		create: `CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value BYTEA NOT NULL)`,
		get:    `SELECT value FROM kv WHERE key = $1`,
		upsert: `INSERT INTO kv (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
	}
)

// SQLStore keeps every key as one row of a kv table.
type SQLStore struct {
	db      *sql.DB
	dialect dialect
}

// NewSQLiteStore prepares the kv table in a SQLite database.
func NewSQLiteStore(ctx context.Context, db *sql.DB) (*SQLStore, error) {
	return newSQLStore(ctx, db, sqliteDialect)
}

// NewPostgresStore prepares the kv table in a Postgres database.
func NewPostgresStore(ctx context.Context, db *sql.DB) (*SQLStore, error) {
	return newSQLStore(ctx, db, postgresDialect)
}

func newSQLStore(ctx context.Context, db *sql.DB, d dialect) (*SQLStore, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, d.create); err != nil {
		return nil, fmt.Errorf("create %s kv table: %w", d.name, err)
	}
	return &SQLStore{db: db, dialect: d}, nil
}

func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var value []byte
	err := s.db.QueryRowContext(ctx, s.dialect.get, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	return value, err
}

func (s *SQLStore) Set(ctx context.Context, key string, value []byte) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, s.dialect.upsert, key, value); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Close() error { return s.db.Close() }
