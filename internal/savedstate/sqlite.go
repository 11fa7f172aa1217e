package savedstate

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/akyairhashvil/coursecards/internal/models"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const createSavedStateTable = `CREATE TABLE IF NOT EXISTS saved_state (
	session TEXT NOT NULL,
	item_key TEXT NOT NULL,
	expanded INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (session, item_key)
);`

// SQLiteStore keeps bundles in a SQLite database. Opened on ":memory:" it
// lives exactly as long as the process.
type SQLiteStore struct {
	mu     sync.Mutex
	db     *sql.DB
	closed bool
}

// OpenSQLite opens dsn and creates the schema.
func OpenSQLite(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, wrapErr("open", uuid.Nil, err)
	}
	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, wrapErr("ping", uuid.Nil, err)
	}
	if _, err := db.ExecContext(ctx, createSavedStateTable); err != nil {
		_ = db.Close()
		return nil, wrapErr("create schema", uuid.Nil, err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Save(ctx context.Context, session uuid.UUID, flags map[models.ItemKey]bool) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return wrapErr("save", session, ErrClosed)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return wrapErr("save", session, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	if _, err = tx.ExecContext(ctx, "DELETE FROM saved_state WHERE session = ?", session.String()); err != nil {
		return wrapErr("save", session, err)
	}
	for key, expanded := range flags {
		if !expanded {
			continue
		}
		if _, err = tx.ExecContext(ctx,
			"INSERT INTO saved_state (session, item_key, expanded) VALUES (?, ?, 1)",
			session.String(), string(key)); err != nil {
			return wrapErr("save", session, fmt.Errorf("item %s: %w", key, err))
		}
	}
	if err = tx.Commit(); err != nil {
		return wrapErr("save", session, err)
	}
	return nil
}

func (s *SQLiteStore) Restore(ctx context.Context, session uuid.UUID) (map[models.ItemKey]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, wrapErr("restore", session, ErrClosed)
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT item_key, expanded FROM saved_state WHERE session = ?", session.String())
	if err != nil {
		return nil, wrapErr("restore", session, err)
	}
	defer rows.Close()

	flags := make(map[models.ItemKey]bool)
	for rows.Next() {
		var key string
		var expanded bool
		if err := rows.Scan(&key, &expanded); err != nil {
			return nil, wrapErr("restore", session, err)
		}
		if expanded {
			flags[models.ItemKey(key)] = true
		}
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("restore", session, err)
	}
	return flags, nil
}

func (s *SQLiteStore) Discard(ctx context.Context, session uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return wrapErr("discard", session, ErrClosed)
	}
	_, err := s.db.ExecContext(ctx, "DELETE FROM saved_state WHERE session = ?", session.String())
	return wrapErr("discard", session, err)
}

// Close releases the database. Later calls fail with ErrClosed.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

var _ Store = (*SQLiteStore)(nil)
