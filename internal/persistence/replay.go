package persistence

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// Replay is an exported session journal, sufficient to regenerate the world
// and replay the inputs.
type Replay struct {
	SessionID string          `json:"session_id"`
	Seed      int64           `json:"seed"`
	Commands  []LoggedCommand `json:"commands"`
}

// ExportReplay writes the session journal to w as zstd-compressed JSON.
func (s *Store) ExportReplay(w io.Writer, sessionID string) error {
	var seed int64
	if err := s.conn.Get(&seed, "SELECT seed FROM sessions WHERE id = ?", sessionID); err != nil {
		return fmt.Errorf("load session %s: %w", sessionID, err)
	}
	cmds, err := s.Commands(sessionID)
	if err != nil {
		return err
	}

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("zstd writer: %w", err)
	}
	if err := json.NewEncoder(zw).Encode(Replay{
		SessionID: sessionID,
		Seed:      seed,
		Commands:  cmds,
	}); err != nil {
		zw.Close()
		return fmt.Errorf("encode replay: %w", err)
	}
	return zw.Close()
}

// ImportReplay reads a replay previously written by ExportReplay.
func ImportReplay(r io.Reader) (Replay, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return Replay{}, fmt.Errorf("zstd reader: %w", err)
	}
	defer zr.Close()

	var replay Replay
	if err := json.NewDecoder(zr).Decode(&replay); err != nil {
		return Replay{}, fmt.Errorf("decode replay: %w", err)
	}
	return replay, nil
}
