package caloritons

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ton48099/CaloriTons/internal/app"
	"github.com/ton48099/CaloriTons/internal/model"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage the active daily targets",
}

var (
	goalCalories int
	goalCarbs    int
	goalProtein  int
	goalFat      int
	goalWater    int
)

var goalShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app.App) error {
			g := a.Goals.Get()
			fmt.Fprintf(cmd.OutOrStdout(), "Calories: %d kcal\nCarbs: %dg\nProtein: %dg\nFat: %dg\nWater: %d ml\n",
				g.Calories, g.Carbs, g.Protein, g.Fat, g.Water)
			return nil
		})
	},
}

var goalSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Replace all five daily targets at once",
	RunE: func(cmd *cobra.Command, args []string) error {
		next := model.DailyGoals{
			Calories: goalCalories,
			Carbs:    goalCarbs,
			Protein:  goalProtein,
			Fat:      goalFat,
			Water:    goalWater,
		}
		return withApp(func(a *app.App) error {
			if err := a.Goals.ReplaceAll(next); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Goals updated")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(goalShowCmd, goalSetCmd)

	goalSetCmd.Flags().IntVar(&goalCalories, "calories", 0, "Daily calorie target (kcal)")
	goalSetCmd.Flags().IntVar(&goalCarbs, "carbs", 0, "Daily carbs target (g)")
	goalSetCmd.Flags().IntVar(&goalProtein, "protein", 0, "Daily protein target (g)")
	goalSetCmd.Flags().IntVar(&goalFat, "fat", 0, "Daily fat target (g)")
	goalSetCmd.Flags().IntVar(&goalWater, "water", 0, "Daily water target (ml)")
	_ = goalSetCmd.MarkFlagRequired("calories")
	_ = goalSetCmd.MarkFlagRequired("carbs")
	_ = goalSetCmd.MarkFlagRequired("protein")
	_ = goalSetCmd.MarkFlagRequired("fat")
	_ = goalSetCmd.MarkFlagRequired("water")
}
