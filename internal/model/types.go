package model

import "math"

// NutritionPer100g holds nutrition facts normalized to 100 grams. It is the
// authoritative source for the absolute values cached on a FoodEntry.
type NutritionPer100g struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// FoodEntry is one logged food occurrence. Calories/Protein/Carbs/Fat are
// cached absolutes derived from Per100g and WeightG and must always stay
// recomputable from them.
type FoodEntry struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	WeightG     float64          `json:"weight"`
	PortionName string           `json:"portionName,omitempty"`
	Calories    int              `json:"calories"`
	Protein     int              `json:"protein"`
	Carbs       int              `json:"carbs"`
	Fat         int              `json:"fat"`
	Per100g     NutritionPer100g `json:"nutritionPer100g"`
}

// NewFoodEntry builds an entry with the derived absolute values filled in.
func NewFoodEntry(id, name string, weightG float64, portionName string, per100g NutritionPer100g) FoodEntry {
	e := FoodEntry{
		ID:          id,
		Name:        name,
		WeightG:     weightG,
		PortionName: portionName,
		Per100g:     per100g,
	}
	e.Recalculate()
	return e
}

// Recalculate refreshes the cached absolute values from Per100g and WeightG.
func (e *FoodEntry) Recalculate() {
	ratio := e.WeightG / 100
	e.Calories = int(math.Round(e.Per100g.Calories * ratio))
	e.Protein = int(math.Round(e.Per100g.Protein * ratio))
	e.Carbs = int(math.Round(e.Per100g.Carbs * ratio))
	e.Fat = int(math.Round(e.Per100g.Fat * ratio))
}

// DayLog is the food list and water volume for one calendar date. The zero
// value stands in for a date with no record.
type DayLog struct {
	Food  []FoodEntry `json:"food"`
	Water int         `json:"water"`
}

// Clone returns a copy whose food slice does not alias the receiver's.
func (l DayLog) Clone() DayLog {
	out := DayLog{Water: l.Water}
	if len(l.Food) > 0 {
		out.Food = make([]FoodEntry, len(l.Food))
		copy(out.Food, l.Food)
	}
	return out
}

// DailyGoals is the single active target record. One goal set applies to all
// dates; it is replaced wholesale, never partially updated.
type DailyGoals struct {
	Calories int `json:"calories"`
	Carbs    int `json:"carbs"`
	Protein  int `json:"protein"`
	Fat      int `json:"fat"`
	Water    int `json:"water"`
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// UserStats is the calculator input. Ephemeral, never persisted.
type UserStats struct {
	WeightKg      float64
	HeightCm      float64
	Age           int
	Gender        Gender
	ActivityLevel ActivityLevel
}
