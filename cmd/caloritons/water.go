package caloritons

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ton48099/CaloriTons/internal/app"
	"github.com/ton48099/CaloriTons/internal/store"
)

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Track water intake for a day",
}

var waterDate string

var waterAddCmd = &cobra.Command{
	Use:   "add <ml>",
	Short: "Add milliliters to the day's water (negative to undo)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(waterDate)
		if err != nil {
			return err
		}
		delta, err := parseMilliliters(args[0])
		if err != nil {
			return err
		}
		return withApp(func(a *app.App) error {
			snapshot := a.Logs.AddWater(date, delta)
			fmt.Fprintf(cmd.OutOrStdout(), "Water on %s: %d ml\n", date, snapshot[date].Water)
			return nil
		})
	},
}

var waterSetCmd = &cobra.Command{
	Use:   "set <ml>",
	Short: "Set the day's water outright",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(waterDate)
		if err != nil {
			return err
		}
		ml, err := parseMilliliters(args[0])
		if err != nil {
			return err
		}
		if ml < 0 {
			return fmt.Errorf("water must be >= 0 ml")
		}
		return withApp(func(a *app.App) error {
			a.Logs.SetWater(date, ml)
			fmt.Fprintf(cmd.OutOrStdout(), "Water on %s: %d ml\n", date, ml)
			return nil
		})
	},
}

var waterShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the day's water against the goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(waterDate)
		if err != nil {
			return err
		}
		return withApp(func(a *app.App) error {
			water := a.Logs.GetLog(date).Water
			goal := a.Goals.Get().Water
			p := store.GoalProgress(water, goal)
			fmt.Fprintf(cmd.OutOrStdout(), "Water on %s: %d / %d ml (%.0f%%)\n", date, water, goal, p.Ratio*100)
			return nil
		})
	},
}

func parseMilliliters(value string) (int, error) {
	ml, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q (expected whole milliliters)", value)
	}
	return ml, nil
}

func init() {
	rootCmd.AddCommand(waterCmd)
	waterCmd.AddCommand(waterAddCmd, waterSetCmd, waterShowCmd)
	waterCmd.PersistentFlags().StringVar(&waterDate, "date", "", "Date YYYY-MM-DD (default today)")
}
