package app

import (
	"database/sql"

	"github.com/ton48099/CaloriTons/internal/db"
	"github.com/ton48099/CaloriTons/internal/store"
	"github.com/ton48099/CaloriTons/pkg/logger"
)

// App owns the state containers for one session. The slots are read once
// here; afterwards every store mutation writes its own slot back.
type App struct {
	DB    *sql.DB
	Slots *store.SlotStore
	Logs  *store.DayLogStore
	Goals *store.GoalsStore
	Log   *logger.Logger
}

// Open opens (creating if needed) the database at path, applies migrations,
// and loads both stores from their slots.
func Open(path string, lg *logger.Logger) (*App, error) {
	if err := EnsureDBDir(path); err != nil {
		return nil, err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return nil, err
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		sqldb.Close()
		return nil, err
	}

	slots := store.NewSlotStore(sqldb)
	logs, err := store.LoadDayLogs(slots, lg)
	if err != nil {
		sqldb.Close()
		return nil, err
	}
	goals, err := store.LoadGoals(slots, lg)
	if err != nil {
		sqldb.Close()
		return nil, err
	}

	return &App{
		DB:    sqldb,
		Slots: slots,
		Logs:  logs,
		Goals: goals,
		Log:   lg,
	}, nil
}

func (a *App) Close() error {
	return a.DB.Close()
}
