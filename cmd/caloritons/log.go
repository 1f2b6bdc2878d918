package caloritons

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ton48099/CaloriTons/internal/app"
	"github.com/ton48099/CaloriTons/internal/model"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Manage the food diary for a day",
}

var (
	logDate       string
	logName       string
	logWeight     float64
	logPortion    string
	logCal100     float64
	logProtein100 float64
	logCarbs100   float64
	logFat100     float64
	logYes        bool
)

var logAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a food entry from per-100g facts",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(logDate)
		if err != nil {
			return err
		}
		if logName == "" {
			return fmt.Errorf("--name is required")
		}
		if logWeight <= 0 {
			return fmt.Errorf("--weight must be > 0 grams")
		}
		entry := model.NewFoodEntry(uuid.NewString(), logName, logWeight, logPortion, model.NutritionPer100g{
			Calories: logCal100,
			Protein:  logProtein100,
			Carbs:    logCarbs100,
			Fat:      logFat100,
		})
		return withApp(func(a *app.App) error {
			a.Logs.UpsertFood(date, entry)
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s, %.0fg, %d kcal) to %s\n", entry.Name, entry.ID, entry.WeightG, entry.Calories, date)
			return nil
		})
	},
}

var logEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an existing food entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(logDate)
		if err != nil {
			return err
		}
		id := args[0]
		return withApp(func(a *app.App) error {
			day := a.Logs.GetLog(date)
			var entry *model.FoodEntry
			for i := range day.Food {
				if day.Food[i].ID == id {
					entry = &day.Food[i]
					break
				}
			}
			if entry == nil {
				return fmt.Errorf("no entry %q on %s", id, date)
			}

			if cmd.Flags().Changed("name") {
				entry.Name = logName
			}
			if cmd.Flags().Changed("weight") {
				if logWeight <= 0 {
					return fmt.Errorf("--weight must be > 0 grams")
				}
				entry.WeightG = logWeight
			}
			if cmd.Flags().Changed("portion") {
				entry.PortionName = logPortion
			}
			if cmd.Flags().Changed("cal100") {
				entry.Per100g.Calories = logCal100
			}
			if cmd.Flags().Changed("protein100") {
				entry.Per100g.Protein = logProtein100
			}
			if cmd.Flags().Changed("carbs100") {
				entry.Per100g.Carbs = logCarbs100
			}
			if cmd.Flags().Changed("fat100") {
				entry.Per100g.Fat = logFat100
			}

			a.Logs.UpsertFood(date, *entry)
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s on %s\n", id, date)
			return nil
		})
	},
}

var logRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a food entry (asks for confirmation)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(logDate)
		if err != nil {
			return err
		}
		id := args[0]
		return withApp(func(a *app.App) error {
			day := a.Logs.GetLog(date)
			found := false
			name := ""
			for _, e := range day.Food {
				if e.ID == id {
					found = true
					name = e.Name
					break
				}
			}
			if !found {
				return fmt.Errorf("no entry %q on %s", id, date)
			}
			if !logYes && !confirm(cmd, fmt.Sprintf("Remove %q from %s?", name, date)) {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
				return nil
			}
			a.Logs.RemoveFood(date, id)
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from %s\n", name, date)
			return nil
		})
	},
}

var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the day's food entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(logDate)
		if err != nil {
			return err
		}
		return withApp(func(a *app.App) error {
			day := a.Logs.GetLog(date)
			if len(day.Food) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No food logged on %s\n", date)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tWEIGHT\tPORTION\tKCAL\tP\tC\tF")
			for _, e := range day.Food {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.0fg\t%s\t%d\t%d\t%d\t%d\n",
					e.ID, e.Name, e.WeightG, e.PortionName, e.Calories, e.Protein, e.Carbs, e.Fat)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.AddCommand(logAddCmd, logEditCmd, logRemoveCmd, logListCmd)

	logCmd.PersistentFlags().StringVar(&logDate, "date", "", "Date YYYY-MM-DD (default today)")

	for _, c := range []*cobra.Command{logAddCmd, logEditCmd} {
		c.Flags().StringVar(&logName, "name", "", "Food name")
		c.Flags().Float64Var(&logWeight, "weight", 0, "Portion weight in grams")
		c.Flags().StringVar(&logPortion, "portion", "", "Portion description (e.g. \"1 slice\")")
		c.Flags().Float64Var(&logCal100, "cal100", 0, "Calories per 100g")
		c.Flags().Float64Var(&logProtein100, "protein100", 0, "Protein grams per 100g")
		c.Flags().Float64Var(&logCarbs100, "carbs100", 0, "Carbs grams per 100g")
		c.Flags().Float64Var(&logFat100, "fat100", 0, "Fat grams per 100g")
	}
	_ = logAddCmd.MarkFlagRequired("name")
	_ = logAddCmd.MarkFlagRequired("weight")

	logRemoveCmd.Flags().BoolVar(&logYes, "yes", false, "Skip the confirmation prompt")
}
