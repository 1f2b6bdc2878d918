package store

import (
	"fmt"

	"github.com/ton48099/CaloriTons/internal/model"
)

// Snapshot is the portable JSON form of everything the app persists.
type Snapshot struct {
	Logs  map[string]model.DayLog `json:"logs"`
	Goals model.DailyGoals        `json:"goals"`
}

// Export captures the current state of both stores.
func Export(logs *DayLogStore, goals *GoalsStore) Snapshot {
	out := Snapshot{
		Logs:  make(map[string]model.DayLog, len(logs.Snapshot())),
		Goals: goals.Get(),
	}
	for date, day := range logs.Snapshot() {
		out.Logs[date] = day.Clone()
	}
	return out
}

// Import applies a snapshot. Mode "replace" discards existing logs; mode
// "merge" overlays the snapshot's dates over existing ones, imported dates
// winning. Goals are applied when the snapshot carries a non-zero record
// and must pass the usual validation.
func Import(logs *DayLogStore, goals *GoalsStore, snap Snapshot, mode string) error {
	var next map[string]model.DayLog
	switch mode {
	case "replace":
		next = make(map[string]model.DayLog, len(snap.Logs))
	case "merge":
		next = make(map[string]model.DayLog, len(logs.Snapshot())+len(snap.Logs))
		for date, day := range logs.Snapshot() {
			next[date] = day
		}
	default:
		return fmt.Errorf("unsupported import mode %q (use merge or replace)", mode)
	}
	for date, day := range snap.Logs {
		clone := day.Clone()
		for i := range clone.Food {
			clone.Food[i].Recalculate()
		}
		if clone.Water < 0 {
			clone.Water = 0
		}
		next[date] = clone
	}
	logs.Replace(next)

	if snap.Goals != (model.DailyGoals{}) {
		if err := goals.ReplaceAll(snap.Goals); err != nil {
			return fmt.Errorf("import goals: %w", err)
		}
	}
	return nil
}
