package caloritons

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ton48099/CaloriTons/internal/app"
	"github.com/ton48099/CaloriTons/internal/calc"
	"github.com/ton48099/CaloriTons/internal/model"
)

var (
	calcWeight   float64
	calcHeight   float64
	calcAge      int
	calcGender   string
	calcActivity string
	calcApply    bool
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute BMI, maintenance calories, and water need",
	Long:  "calc derives BMI, TDEE (Mifflin-St Jeor), a water target, and a 50/20/30 macro suggestion from your body stats. With --apply the results replace the active goals.",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats := model.UserStats{
			WeightKg:      calcWeight,
			HeightCm:      calcHeight,
			Age:           calcAge,
			Gender:        model.Gender(calcGender),
			ActivityLevel: model.ActivityLevel(calcActivity),
		}
		if err := calc.ValidateStats(stats); err != nil {
			return err
		}

		m := calc.ComputeMetrics(stats)
		carbs, protein, fat := calc.SplitMacros(m.TDEE)

		fmt.Fprintf(cmd.OutOrStdout(), "BMI: %.1f (%s)\n", m.BMI, m.BMICategory)
		fmt.Fprintf(cmd.OutOrStdout(), "Maintenance: %d kcal/day\n", m.TDEE)
		fmt.Fprintf(cmd.OutOrStdout(), "Water: %d ml/day\n", m.WaterTargetML)
		fmt.Fprintf(cmd.OutOrStdout(), "Suggested macros: C %dg | P %dg | F %dg\n", carbs, protein, fat)

		if !calcApply {
			fmt.Fprintln(cmd.OutOrStdout(), "Run again with --apply to make these your goals")
			return nil
		}
		return withApp(func(a *app.App) error {
			if err := a.Goals.ReplaceAll(calc.GoalsFor(m)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Goals updated from calculator results")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(calcCmd)

	calcCmd.Flags().Float64Var(&calcWeight, "weight", 0, "Body weight in kg")
	calcCmd.Flags().Float64Var(&calcHeight, "height", 0, "Height in cm")
	calcCmd.Flags().IntVar(&calcAge, "age", 0, "Age in years")
	calcCmd.Flags().StringVar(&calcGender, "gender", "", "male or female")
	calcCmd.Flags().StringVar(&calcActivity, "activity", "sedentary", "sedentary, light, moderate, active, or very_active")
	calcCmd.Flags().BoolVar(&calcApply, "apply", false, "Replace the active goals with the results")
	_ = calcCmd.MarkFlagRequired("weight")
	_ = calcCmd.MarkFlagRequired("height")
	_ = calcCmd.MarkFlagRequired("age")
	_ = calcCmd.MarkFlagRequired("gender")
}
