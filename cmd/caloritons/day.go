package caloritons

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ton48099/CaloriTons/internal/app"
	"github.com/ton48099/CaloriTons/internal/store"
)

var dayDate string

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Show the day's totals and goal progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(dayDate)
		if err != nil {
			return err
		}
		return withApp(func(a *app.App) error {
			day := a.Logs.GetLog(date)
			totals := store.Totals(day)
			goals := a.Goals.Get()

			fmt.Fprintf(cmd.OutOrStdout(), "Date: %s (%d entries)\n", date, len(day.Food))
			printProgress(cmd, "Calories", totals.Calories, goals.Calories, "kcal")
			printProgress(cmd, "Carbs", totals.Carbs, goals.Carbs, "g")
			printProgress(cmd, "Protein", totals.Protein, goals.Protein, "g")
			printProgress(cmd, "Fat", totals.Fat, goals.Fat, "g")
			printProgress(cmd, "Water", day.Water, goals.Water, "ml")
			return nil
		})
	},
}

// printProgress renders one goal line: a bar driven by the clamped display
// value and a percentage label driven by the raw ratio, which may exceed
// 100.
func printProgress(cmd *cobra.Command, label string, total, goal int, unit string) {
	p := store.GoalProgress(total, goal)

	const width = 20
	filled := int(p.Display * width)
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "#"
		} else {
			bar += "-"
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%-8s [%s] %d / %d %s (%.0f%%)\n", label, bar, total, goal, unit, p.Ratio*100)
}

func init() {
	rootCmd.AddCommand(dayCmd)
	dayCmd.Flags().StringVar(&dayDate, "date", "", "Date YYYY-MM-DD (default today)")
}
