package persistence

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session is one play session with its command journal. Command timestamps
// are seconds relative to the session start.
type Session struct {
	ID    string
	Seed  int64
	store *Store
	start time.Time
}

// StartSession creates a new session row and returns a handle for recording.
func (s *Store) StartSession(seed int64) (*Session, error) {
	sess := &Session{
		ID:    uuid.NewString(),
		Seed:  seed,
		store: s,
		start: time.Now(),
	}
	_, err := s.conn.Exec(
		"INSERT INTO sessions (id, seed, started_at) VALUES (?, ?, ?)",
		sess.ID, sess.Seed, sess.start.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	return sess, nil
}

// RecordCommand appends one command to the session journal.
func (sess *Session) RecordCommand(command, mode string) error {
	_, err := sess.store.conn.Exec(
		"INSERT INTO commands (session_id, at_seconds, command, mode) VALUES (?, ?, ?, ?)",
		sess.ID, time.Since(sess.start).Seconds(), command, mode,
	)
	if err != nil {
		return fmt.Errorf("record command: %w", err)
	}
	return nil
}

// SavePlayerState persists the player location for this session.
func (sess *Session) SavePlayerState(ps PlayerState) error {
	ps.SessionID = sess.ID
	return sess.store.SavePlayerState(ps)
}

// LoggedCommand is one journal entry.
type LoggedCommand struct {
	AtSeconds float64 `db:"at_seconds" json:"at_seconds"`
	Command   string  `db:"command" json:"command"`
	Mode      string  `db:"mode" json:"mode"`
}

// Commands returns the session journal in recorded order.
func (s *Store) Commands(sessionID string) ([]LoggedCommand, error) {
	var cmds []LoggedCommand
	err := s.conn.Select(&cmds,
		"SELECT at_seconds, command, mode FROM commands WHERE session_id = ? ORDER BY id",
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("load commands: %w", err)
	}
	return cmds, nil
}

// SessionStats summarizes a session journal.
type SessionStats struct {
	TotalCommands int
	Duration      time.Duration
	ByCommand     map[string]int
}

// Stats computes journal statistics for this session.
func (sess *Session) Stats() (SessionStats, error) {
	cmds, err := sess.store.Commands(sess.ID)
	if err != nil {
		return SessionStats{}, err
	}
	stats := SessionStats{
		TotalCommands: len(cmds),
		Duration:      time.Since(sess.start),
		ByCommand:     make(map[string]int),
	}
	for _, c := range cmds {
		stats.ByCommand[c.Command]++
	}
	return stats, nil
}
