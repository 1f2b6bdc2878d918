package store

import (
	"database/sql"
	"fmt"
	"strings"
)

// Slot keys. Each slot is an independent JSON text blob: read once at
// startup, written after every relevant state change.
const (
	SlotLogs  = "logs"
	SlotGoals = "goals"
)

// SlotStore reads and writes the persistent key-value slots.
type SlotStore struct {
	db *sql.DB
}

func NewSlotStore(db *sql.DB) *SlotStore {
	return &SlotStore{db: db}
}

// Load returns the slot contents, or ok=false when the slot has never been
// written. Absence is not an error.
func (s *SlotStore) Load(key string) ([]byte, bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, false, fmt.Errorf("slot key is required")
	}
	var value string
	err := s.db.QueryRow(`SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load slot %q: %w", key, err)
	}
	return []byte(value), true, nil
}

// Save overwrites the slot outright.
func (s *SlotStore) Save(key string, value []byte) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("slot key is required")
	}
	_, err := s.db.Exec(`
INSERT INTO slots(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, string(value))
	if err != nil {
		return fmt.Errorf("save slot %q: %w", key, err)
	}
	return nil
}
