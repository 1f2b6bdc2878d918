package caloritons

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ton48099/CaloriTons/internal/app"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the local caloritons database",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveDBPath()
		if err != nil {
			return err
		}
		return withApp(func(a *app.App) error {
			// Writing the defaults back materializes both slots so a fresh
			// database is fully seeded.
			if err := a.Goals.ReplaceAll(a.Goals.Get()); err != nil {
				return err
			}
			a.Logs.Replace(a.Logs.Snapshot())
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized caloritons database at %s\n", path)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
