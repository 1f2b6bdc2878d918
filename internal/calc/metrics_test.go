package calc_test

import (
	"testing"

	"github.com/ton48099/CaloriTons/internal/calc"
	"github.com/ton48099/CaloriTons/internal/model"
)

func TestBMICategories(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		weightKg float64
		heightCm float64
		wantBMI  float64
		wantCat  string
	}{
		{"normal", 55.5, 170, 19.2, calc.BMICategoryNormal},
		{"underweight", 45, 170, 15.6, calc.BMICategoryUnderweight},
		// 74 kg at 200 cm is exactly 18.5; the boundary belongs to normal.
		{"boundary is normal", 74, 200, 18.5, calc.BMICategoryNormal},
		{"overweight", 80, 170, 27.7, calc.BMICategoryOverweight},
		{"obese", 95, 170, 32.9, calc.BMICategoryObese},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := calc.ComputeMetrics(model.UserStats{
				WeightKg:      tc.weightKg,
				HeightCm:      tc.heightCm,
				Age:           30,
				Gender:        model.GenderFemale,
				ActivityLevel: model.ActivitySedentary,
			})
			if m.BMI != tc.wantBMI {
				t.Fatalf("expected BMI %v, got %v", tc.wantBMI, m.BMI)
			}
			if m.BMICategory != tc.wantCat {
				t.Fatalf("expected category %q, got %q", tc.wantCat, m.BMICategory)
			}
		})
	}
}

func TestTDEEAndWaterTarget(t *testing.T) {
	t.Parallel()

	// BMR = 700 + 1062.5 - 150 - 161 = 1451.5; TDEE = round(1451.5 * 1.2) = 1742.
	m := calc.ComputeMetrics(model.UserStats{
		WeightKg:      70,
		HeightCm:      170,
		Age:           30,
		Gender:        model.GenderFemale,
		ActivityLevel: model.ActivitySedentary,
	})
	if m.TDEE != 1742 {
		t.Fatalf("expected TDEE 1742, got %d", m.TDEE)
	}
	if m.WaterTargetML != 2450 {
		t.Fatalf("expected water target 2450, got %d", m.WaterTargetML)
	}

	male := calc.ComputeMetrics(model.UserStats{
		WeightKg:      70,
		HeightCm:      170,
		Age:           30,
		Gender:        model.GenderMale,
		ActivityLevel: model.ActivityVeryActive,
	})
	// BMR = 1451.5 + 166 = 1617.5; TDEE = round(1617.5 * 1.9) = 3073.
	if male.TDEE != 3073 {
		t.Fatalf("expected TDEE 3073, got %d", male.TDEE)
	}
}

func TestSplitMacrosAtAppliedCalories(t *testing.T) {
	t.Parallel()

	carbs, protein, fat := calc.SplitMacros(1742)
	if carbs != 218 || protein != 87 || fat != 58 {
		t.Fatalf("expected 218/87/58, got %d/%d/%d", carbs, protein, fat)
	}
}

func TestGoalsForFillsAllFiveFields(t *testing.T) {
	t.Parallel()

	m := calc.ComputeMetrics(model.UserStats{
		WeightKg:      70,
		HeightCm:      170,
		Age:           30,
		Gender:        model.GenderFemale,
		ActivityLevel: model.ActivitySedentary,
	})
	goals := calc.GoalsFor(m)
	want := model.DailyGoals{Calories: 1742, Carbs: 218, Protein: 87, Fat: 58, Water: 2450}
	if goals != want {
		t.Fatalf("expected goals %+v, got %+v", want, goals)
	}
}

func TestValidateStats(t *testing.T) {
	t.Parallel()

	valid := model.UserStats{WeightKg: 70, HeightCm: 170, Age: 30, Gender: model.GenderMale, ActivityLevel: model.ActivityModerate}
	if err := calc.ValidateStats(valid); err != nil {
		t.Fatalf("expected valid stats, got %v", err)
	}

	bad := []model.UserStats{
		{WeightKg: 0, HeightCm: 170, Age: 30, Gender: model.GenderMale, ActivityLevel: model.ActivityModerate},
		{WeightKg: 70, HeightCm: 0, Age: 30, Gender: model.GenderMale, ActivityLevel: model.ActivityModerate},
		{WeightKg: 70, HeightCm: 170, Age: 0, Gender: model.GenderMale, ActivityLevel: model.ActivityModerate},
		{WeightKg: 70, HeightCm: 170, Age: 30, Gender: "other", ActivityLevel: model.ActivityModerate},
		{WeightKg: 70, HeightCm: 170, Age: 30, Gender: model.GenderMale, ActivityLevel: "extreme"},
	}
	for i, stats := range bad {
		if err := calc.ValidateStats(stats); err == nil {
			t.Fatalf("case %d: expected validation error for %+v", i, stats)
		}
	}
}
