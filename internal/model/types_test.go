package model

import "testing"

func TestNewFoodEntryDerivesAbsolutes(t *testing.T) {
	t.Parallel()

	per := NutritionPer100g{Calories: 265, Protein: 9, Carbs: 49, Fat: 3.2}
	e := NewFoodEntry("id-1", "Sourdough", 75, "slice", per)

	if e.Calories != 199 {
		t.Fatalf("calories = %d, want 199", e.Calories)
	}
	if e.Protein != 7 || e.Carbs != 37 || e.Fat != 2 {
		t.Fatalf("macros = %d/%d/%d, want 7/37/2", e.Protein, e.Carbs, e.Fat)
	}
}

func TestRecalculateAfterWeightChange(t *testing.T) {
	t.Parallel()

	e := NewFoodEntry("id-1", "Sourdough", 100, "slice", NutritionPer100g{Calories: 265, Protein: 9, Carbs: 49, Fat: 3.2})
	e.WeightG = 50
	e.Recalculate()

	if e.Calories != 133 {
		t.Fatalf("calories = %d, want 133", e.Calories)
	}
	if e.Fat != 2 {
		t.Fatalf("fat = %d, want 2", e.Fat)
	}
}

func TestDayLogCloneDoesNotAliasFood(t *testing.T) {
	t.Parallel()

	orig := DayLog{
		Food:  []FoodEntry{NewFoodEntry("id-1", "Apple", 182, "medium", NutritionPer100g{Calories: 52, Carbs: 14})},
		Water: 500,
	}
	clone := orig.Clone()
	clone.Food[0].Name = "Pear"
	clone.Water = 900

	if orig.Food[0].Name != "Apple" {
		t.Fatalf("clone mutation leaked into original food slice")
	}
	if orig.Water != 500 {
		t.Fatalf("clone mutation leaked into original water")
	}
}
