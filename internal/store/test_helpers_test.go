package store_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/ton48099/CaloriTons/internal/db"
	"github.com/ton48099/CaloriTons/internal/store"
	"github.com/ton48099/CaloriTons/pkg/logger"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "caloritons.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { sqldb.Close() })
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

func newTestSlots(t *testing.T) *store.SlotStore {
	t.Helper()
	return store.NewSlotStore(newTestDB(t))
}

func newTestDayLogs(t *testing.T, slots *store.SlotStore) *store.DayLogStore {
	t.Helper()
	logs, err := store.LoadDayLogs(slots, logger.NewNop())
	if err != nil {
		t.Fatalf("load day logs: %v", err)
	}
	return logs
}

func newTestGoals(t *testing.T, slots *store.SlotStore) *store.GoalsStore {
	t.Helper()
	goals, err := store.LoadGoals(slots, logger.NewNop())
	if err != nil {
		t.Fatalf("load goals: %v", err)
	}
	return goals
}
