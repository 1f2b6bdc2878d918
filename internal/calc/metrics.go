package calc

import (
	"fmt"
	"math"

	"github.com/ton48099/CaloriTons/internal/model"
)

// ActivityMultipliers maps activity levels to their TDEE multiplier. Single
// source of truth, also used to validate input.
var ActivityMultipliers = map[model.ActivityLevel]float64{
	model.ActivitySedentary:  1.2,
	model.ActivityLight:      1.375,
	model.ActivityModerate:   1.55,
	model.ActivityActive:     1.725,
	model.ActivityVeryActive: 1.9,
}

const (
	BMICategoryUnderweight = "underweight"
	BMICategoryNormal      = "normal weight"
	BMICategoryOverweight  = "overweight"
	BMICategoryObese       = "obese"
)

// Metrics is the calculator output: BMI rounded to one decimal, TDEE and
// water target rounded to the nearest integer.
type Metrics struct {
	BMI           float64
	BMICategory   string
	TDEE          int
	WaterTargetML int
}

// ComputeMetrics derives body metrics from user stats. Pure: no side
// effects, no errors. Callers are responsible for validating the stats
// first (see ValidateStats); a zero height produces an undefined BMI.
func ComputeMetrics(stats model.UserStats) Metrics {
	heightM := stats.HeightCm / 100
	bmi := stats.WeightKg / (heightM * heightM)

	// Boundaries are strict: exactly 18.5 is normal weight, not underweight.
	category := BMICategoryObese
	switch {
	case bmi < 18.5:
		category = BMICategoryUnderweight
	case bmi < 24.9:
		category = BMICategoryNormal
	case bmi < 29.9:
		category = BMICategoryOverweight
	}

	// Mifflin-St Jeor
	bmr := 10*stats.WeightKg + 6.25*stats.HeightCm - 5*float64(stats.Age)
	if stats.Gender == model.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	return Metrics{
		BMI:           math.Round(bmi*10) / 10,
		BMICategory:   category,
		TDEE:          int(math.Round(bmr * ActivityMultipliers[stats.ActivityLevel])),
		WaterTargetML: int(math.Round(stats.WeightKg * 35)),
	}
}

// SplitMacros derives gram targets from a calorie target using the fixed
// 50/20/30 split by calorie contribution (carbs and protein 4 kcal/g,
// fat 9 kcal/g).
func SplitMacros(calories int) (carbsG, proteinG, fatG int) {
	c := float64(calories)
	carbsG = int(math.Round(c * 0.5 / 4))
	proteinG = int(math.Round(c * 0.2 / 4))
	fatG = int(math.Round(c * 0.3 / 9))
	return carbsG, proteinG, fatG
}

// GoalsFor turns computed metrics into a full goal set ready for
// GoalsStore.ReplaceAll.
func GoalsFor(m Metrics) model.DailyGoals {
	carbs, protein, fat := SplitMacros(m.TDEE)
	return model.DailyGoals{
		Calories: m.TDEE,
		Carbs:    carbs,
		Protein:  protein,
		Fat:      fat,
		Water:    m.WaterTargetML,
	}
}

// ValidateStats guards the calculator's preconditions at the input
// boundary, in particular the height used as a divisor.
func ValidateStats(stats model.UserStats) error {
	if stats.WeightKg <= 0 {
		return fmt.Errorf("weight must be > 0")
	}
	if stats.HeightCm <= 0 {
		return fmt.Errorf("height must be > 0")
	}
	if stats.Age <= 0 {
		return fmt.Errorf("age must be > 0")
	}
	if stats.Gender != model.GenderMale && stats.Gender != model.GenderFemale {
		return fmt.Errorf("invalid gender %q (use male or female)", stats.Gender)
	}
	if _, ok := ActivityMultipliers[stats.ActivityLevel]; !ok {
		return fmt.Errorf("invalid activity level %q (use sedentary, light, moderate, active, or very_active)", stats.ActivityLevel)
	}
	return nil
}
