// Package persistence provides SQLite-backed session storage: the command
// journal, player state and world metadata. Generated terrain is never
// stored; worlds are rebuilt from their seed.
package persistence

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Store wraps a SQLite connection.
type Store struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path. Use ":memory:"
// for a throwaway store.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		started_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS commands (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL REFERENCES sessions(id),
		at_seconds REAL NOT NULL,
		command TEXT NOT NULL,
		mode TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS player_state (
		session_id TEXT PRIMARY KEY REFERENCES sessions(id),
		macro_x INTEGER NOT NULL,
		macro_y INTEGER NOT NULL,
		local_x INTEGER NOT NULL,
		local_y INTEGER NOT NULL,
		mode TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS world_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_commands_session ON commands(session_id);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// SetMeta stores a key-value pair in world metadata.
func (s *Store) SetMeta(key, value string) error {
	_, err := s.conn.Exec(
		"INSERT OR REPLACE INTO world_meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value. Missing keys return "" with no error.
func (s *Store) GetMeta(key string) (string, error) {
	var value string
	err := s.conn.Get(&value, "SELECT value FROM world_meta WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return value, err
}

// PlayerState is the saved player location and view mode for a session.
type PlayerState struct {
	SessionID string `db:"session_id"`
	MacroX    int    `db:"macro_x"`
	MacroY    int    `db:"macro_y"`
	LocalX    int    `db:"local_x"`
	LocalY    int    `db:"local_y"`
	Mode      string `db:"mode"`
}

// SavePlayerState inserts or replaces the saved state for a session.
func (s *Store) SavePlayerState(ps PlayerState) error {
	_, err := s.conn.NamedExec(`INSERT OR REPLACE INTO player_state
		(session_id, macro_x, macro_y, local_x, local_y, mode)
		VALUES (:session_id, :macro_x, :macro_y, :local_x, :local_y, :mode)`, ps)
	if err != nil {
		return fmt.Errorf("save player state: %w", err)
	}
	return nil
}

// PlayerStateFor loads the saved state for a session, or nil when none was
// saved.
func (s *Store) PlayerStateFor(sessionID string) (*PlayerState, error) {
	var ps PlayerState
	err := s.conn.Get(&ps, "SELECT * FROM player_state WHERE session_id = ?", sessionID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load player state: %w", err)
	}
	return &ps, nil
}
