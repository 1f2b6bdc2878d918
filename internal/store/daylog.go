package store

import (
	"encoding/json"

	"github.com/ton48099/CaloriTons/internal/model"
	"github.com/ton48099/CaloriTons/pkg/logger"
)

// Slots is the persistence boundary the state containers write through.
type Slots interface {
	Load(key string) ([]byte, bool, error)
	Save(key string, value []byte) error
}

// DayLogStore owns the date -> DayLog mapping. Mutations never modify a
// previously returned snapshot: each one builds a fresh mapping with the
// touched day cloned, swaps it in, and persists it to the logs slot.
// Persistence is best-effort; a failed write is logged and the in-memory
// state stands.
type DayLogStore struct {
	logs  map[string]model.DayLog
	slots Slots
	log   *logger.Logger
}

// LoadDayLogs reads the logs slot and builds the store. An absent slot is
// normal; an unreadable one is logged and replaced by the empty default in
// memory only, so the persisted value survives until the next mutation.
func LoadDayLogs(slots Slots, lg *logger.Logger) (*DayLogStore, error) {
	logs := map[string]model.DayLog{}
	if slots != nil {
		raw, ok, err := slots.Load(SlotLogs)
		if err != nil {
			return nil, err
		}
		if ok {
			if err := json.Unmarshal(raw, &logs); err != nil {
				lg.Warnw("ignoring unreadable logs slot", "error", err)
				logs = map[string]model.DayLog{}
			}
		}
	}
	return &DayLogStore{logs: logs, slots: slots, log: lg}, nil
}

// Snapshot returns the current date -> DayLog mapping. Snapshots are
// read-only views; mutations replace the mapping instead of editing it.
func (s *DayLogStore) Snapshot() map[string]model.DayLog {
	return s.logs
}

// GetLog returns the log for a date, or the zero-value default for a date
// with no record. The returned log is a copy safe to edit.
func (s *DayLogStore) GetLog(date string) model.DayLog {
	return s.logs[date].Clone()
}

// UpsertFood is the sole add/edit path. An entry whose id matches an
// existing one replaces it in place, preserving position; otherwise the
// entry is appended. Derived nutrition fields are refreshed either way.
func (s *DayLogStore) UpsertFood(date string, entry model.FoodEntry) map[string]model.DayLog {
	entry.Recalculate()

	day := s.logs[date].Clone()
	replaced := false
	for i, existing := range day.Food {
		if existing.ID == entry.ID {
			day.Food[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		day.Food = append(day.Food, entry)
	}
	return s.commit(date, day)
}

// RemoveFood deletes the entry with the given id. A missing id is a no-op
// and returns the current snapshot untouched.
func (s *DayLogStore) RemoveFood(date, id string) map[string]model.DayLog {
	current := s.logs[date]
	idx := -1
	for i, e := range current.Food {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s.logs
	}

	day := current.Clone()
	day.Food = append(day.Food[:idx], day.Food[idx+1:]...)
	return s.commit(date, day)
}

// SetWater replaces the stored water volume outright, floored at zero.
func (s *DayLogStore) SetWater(date string, ml int) map[string]model.DayLog {
	if ml < 0 {
		ml = 0
	}
	day := s.logs[date].Clone()
	day.Water = ml
	return s.commit(date, day)
}

// AddWater is the additive convenience over SetWater: read, add the delta,
// clamp at zero.
func (s *DayLogStore) AddWater(date string, deltaML int) map[string]model.DayLog {
	return s.SetWater(date, s.logs[date].Water+deltaML)
}

// Replace swaps in a whole new mapping at once. Used by import.
func (s *DayLogStore) Replace(logs map[string]model.DayLog) map[string]model.DayLog {
	if logs == nil {
		logs = map[string]model.DayLog{}
	}
	s.logs = logs
	s.persist()
	return s.logs
}

func (s *DayLogStore) commit(date string, day model.DayLog) map[string]model.DayLog {
	next := make(map[string]model.DayLog, len(s.logs)+1)
	for k, v := range s.logs {
		next[k] = v
	}
	next[date] = day
	s.logs = next
	s.persist()
	return next
}

func (s *DayLogStore) persist() {
	if s.slots == nil {
		return
	}
	raw, err := json.Marshal(s.logs)
	if err != nil {
		s.log.Warnw("encode day logs", "error", err)
		return
	}
	if err := s.slots.Save(SlotLogs, raw); err != nil {
		s.log.Warnw("persist day logs", "error", err)
	}
}

// DayTotals is the on-demand aggregation over one day's food list.
type DayTotals struct {
	Calories int
	Protein  int
	Carbs    int
	Fat      int
}

func Totals(l model.DayLog) DayTotals {
	var t DayTotals
	for _, e := range l.Food {
		t.Calories += e.Calories
		t.Protein += e.Protein
		t.Carbs += e.Carbs
		t.Fat += e.Fat
	}
	return t
}

// Progress reports goal attainment for one value. Ratio is the raw
// unclamped quotient (may exceed 1); Display is clamped at 1 for bars.
// A zero or negative goal yields zero rather than dividing.
type Progress struct {
	Ratio   float64
	Display float64
}

func GoalProgress(total, goal int) Progress {
	if goal <= 0 {
		return Progress{}
	}
	ratio := float64(total) / float64(goal)
	display := ratio
	if display > 1 {
		display = 1
	}
	return Progress{Ratio: ratio, Display: display}
}
