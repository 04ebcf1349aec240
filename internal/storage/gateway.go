package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Gateway is the durable key-value store behind the entity store: three
// named record collections persisted as JSON payloads in a local SQLite
// file. It knows nothing about the records themselves.
type Gateway struct {
	db *sql.DB
}

func NewGateway(dbPath string) (*Gateway, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Gateway{db: db}, nil
}

func (g *Gateway) Close() error {
	if g.db != nil {
		return g.db.Close()
	}
	return nil
}

// Get returns the raw payload stored under name. A missing collection is
// not an error: callers fall back to that collection's default.
func (g *Gateway) Get(ctx context.Context, name string) ([]byte, bool, error) {
	var payload []byte
	err := g.db.QueryRowContext(ctx,
		`SELECT payload FROM collections WHERE name = ?`, name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read collection %q: %w", name, err)
	}
	return payload, true, nil
}

// Put replaces the payload stored under name.
func (g *Gateway) Put(ctx context.Context, name string, payload []byte) error {
	_, err := g.db.ExecContext(ctx,
		`INSERT INTO collections (name, payload, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP`,
		name, payload)
	if err != nil {
		return fmt.Errorf("write collection %q: %w", name, err)
	}
	return nil
}
