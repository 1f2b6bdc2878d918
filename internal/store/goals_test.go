package store_test

import (
	"testing"

	"github.com/ton48099/CaloriTons/internal/model"
	"github.com/ton48099/CaloriTons/internal/store"
	"github.com/ton48099/CaloriTons/pkg/logger"
)

func TestGoalsDefaultWhenSlotAbsent(t *testing.T) {
	t.Parallel()
	goals := newTestGoals(t, newTestSlots(t))

	if got := goals.Get(); got != store.DefaultGoals {
		t.Fatalf("expected default goals, got %+v", got)
	}
}

func TestGoalsReplaceAllPersistsAndReloads(t *testing.T) {
	t.Parallel()
	slots := newTestSlots(t)

	goals := newTestGoals(t, slots)
	next := model.DailyGoals{Calories: 1742, Carbs: 218, Protein: 87, Fat: 58, Water: 2450}
	if err := goals.ReplaceAll(next); err != nil {
		t.Fatalf("replace goals: %v", err)
	}

	reloaded := newTestGoals(t, slots)
	if got := reloaded.Get(); got != next {
		t.Fatalf("expected reloaded goals %+v, got %+v", next, got)
	}
}

func TestGoalsReplaceAllIsAtomic(t *testing.T) {
	t.Parallel()
	goals := newTestGoals(t, newTestSlots(t))

	bad := model.DailyGoals{Calories: 1800, Carbs: 225, Protein: 90, Fat: 0, Water: 2400}
	if err := goals.ReplaceAll(bad); err == nil {
		t.Fatalf("expected validation error for zero fat goal")
	}
	if got := goals.Get(); got != store.DefaultGoals {
		t.Fatalf("expected rejected replace to leave goals untouched, got %+v", got)
	}
}

func TestGoalsUnreadableSlotFallsBackToDefault(t *testing.T) {
	t.Parallel()
	slots := newTestSlots(t)

	if err := slots.Save(store.SlotGoals, []byte(`[]oops`)); err != nil {
		t.Fatalf("seed corrupt slot: %v", err)
	}
	goals, err := store.LoadGoals(slots, logger.NewNop())
	if err != nil {
		t.Fatalf("load with corrupt slot: %v", err)
	}
	if got := goals.Get(); got != store.DefaultGoals {
		t.Fatalf("expected defaults after corrupt slot, got %+v", got)
	}
}
