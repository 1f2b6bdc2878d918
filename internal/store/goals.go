package store

import (
	"encoding/json"
	"fmt"

	"github.com/ton48099/CaloriTons/internal/model"
	"github.com/ton48099/CaloriTons/pkg/logger"
)

// DefaultGoals is the target set used until the user applies their own.
var DefaultGoals = model.DailyGoals{
	Calories: 2000,
	Carbs:    250,
	Protein:  100,
	Fat:      66,
	Water:    2500,
}

// GoalsStore holds the single active DailyGoals record. There is no partial
// update: applying new targets always replaces all five fields at once.
type GoalsStore struct {
	goals model.DailyGoals
	slots Slots
	log   *logger.Logger
}

// LoadGoals reads the goals slot, falling back to DefaultGoals when the
// slot is absent or unreadable.
func LoadGoals(slots Slots, lg *logger.Logger) (*GoalsStore, error) {
	goals := DefaultGoals
	if slots != nil {
		raw, ok, err := slots.Load(SlotGoals)
		if err != nil {
			return nil, err
		}
		if ok {
			if err := json.Unmarshal(raw, &goals); err != nil {
				lg.Warnw("ignoring unreadable goals slot", "error", err)
				goals = DefaultGoals
			}
		}
	}
	return &GoalsStore{goals: goals, slots: slots, log: lg}, nil
}

func (s *GoalsStore) Get() model.DailyGoals {
	return s.goals
}

// ReplaceAll validates and then overwrites the whole record. Validation
// runs before any assignment, so a rejected set leaves the previous goals
// fully intact.
func (s *GoalsStore) ReplaceAll(goals model.DailyGoals) error {
	if err := validateGoals(goals); err != nil {
		return err
	}
	s.goals = goals
	s.persist()
	return nil
}

func validateGoals(g model.DailyGoals) error {
	if err := validatePositive("calories", g.Calories); err != nil {
		return err
	}
	if err := validatePositive("carbs", g.Carbs); err != nil {
		return err
	}
	if err := validatePositive("protein", g.Protein); err != nil {
		return err
	}
	if err := validatePositive("fat", g.Fat); err != nil {
		return err
	}
	return validatePositive("water", g.Water)
}

func validatePositive(name string, value int) error {
	if value <= 0 {
		return fmt.Errorf("%s goal must be > 0", name)
	}
	return nil
}

func (s *GoalsStore) persist() {
	if s.slots == nil {
		return
	}
	raw, err := json.Marshal(s.goals)
	if err != nil {
		s.log.Warnw("encode goals", "error", err)
		return
	}
	if err := s.slots.Save(SlotGoals, raw); err != nil {
		s.log.Warnw("persist goals", "error", err)
	}
}
