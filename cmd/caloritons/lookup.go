package caloritons

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ton48099/CaloriTons/config"
	"github.com/ton48099/CaloriTons/internal/app"
	"github.com/ton48099/CaloriTons/internal/model"
	"github.com/ton48099/CaloriTons/internal/provider/foodai"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Look up nutrition data with the AI provider",
}

var (
	lookupDate   string
	lookupAdd    bool
	lookupWeight float64
	lookupJSON   bool
)

var lookupFoodCmd = &cobra.Command{
	Use:   "food <description>...",
	Short: "Look up per-100g facts for a free-text food description",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		description := strings.Join(args, " ")
		date, err := resolveDate(lookupDate)
		if err != nil {
			return err
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if strings.TrimSpace(cfg.AI.APIKey) == "" {
			return fmt.Errorf("missing AI API key (set CALORITONS_AI_API_KEY or ai.api_key in caloritons.yaml)")
		}
		client := newLookupClient(cfg)

		result, err := client.AnalyzeFood(cmd.Context(), description)
		if errors.Is(err, foodai.ErrNotFound) {
			return fmt.Errorf("no match for %q, try a more specific description", description)
		}
		if err != nil {
			return err
		}

		if lookupJSON {
			b, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal lookup json: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Food: %s\n", result.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Per 100g: %.0f kcal | P %.1fg | C %.1fg | F %.1fg\n",
				result.Calories100g, result.Protein100g, result.Carbs100g, result.Fat100g)
			fmt.Fprintf(cmd.OutOrStdout(), "Standard portion: %s (%.0fg)\n", result.StandardPortionName, result.StandardPortionGrams)
		}

		if !lookupAdd {
			return nil
		}

		weight := result.StandardPortionGrams
		if cmd.Flags().Changed("weight") {
			weight = lookupWeight
		}
		if weight <= 0 {
			return fmt.Errorf("--weight must be > 0 grams")
		}
		entry := model.NewFoodEntry(uuid.NewString(), result.Name, weight, result.StandardPortionName, result.Per100g())
		return withApp(func(a *app.App) error {
			a.Logs.UpsertFood(date, entry)
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%.0fg, %d kcal) to %s\n", entry.Name, entry.WeightG, entry.Calories, date)
			return nil
		})
	},
}

func newLookupClient(cfg *config.Config) *foodai.Client {
	var client *foodai.Client
	if strings.TrimSpace(cfg.AI.BaseURL) != "" {
		client = foodai.NewClientWithBaseURL(cfg.AI.APIKey, cfg.AI.BaseURL)
	} else {
		client = foodai.NewClient(cfg.AI.APIKey)
	}
	return client.WithModel(cfg.AI.Model).WithLanguage(cfg.AI.Language)
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.AddCommand(lookupFoodCmd)

	lookupFoodCmd.Flags().StringVar(&lookupDate, "date", "", "Date YYYY-MM-DD for --add (default today)")
	lookupFoodCmd.Flags().BoolVar(&lookupAdd, "add", false, "Add the result to the day's log")
	lookupFoodCmd.Flags().Float64Var(&lookupWeight, "weight", 0, "Override the portion weight in grams for --add")
	lookupFoodCmd.Flags().BoolVar(&lookupJSON, "json", false, "Print the raw lookup result as JSON")
}
