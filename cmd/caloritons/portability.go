package caloritons

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ton48099/CaloriTons/internal/app"
	"github.com/ton48099/CaloriTons/internal/store"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all logs and goals as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app.App) error {
			snap := store.Export(a.Logs, a.Goals)
			b, err := json.MarshalIndent(snap, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal snapshot: %w", err)
			}
			b = append(b, '\n')
			if exportOut == "" || exportOut == "-" {
				_, err := cmd.OutOrStdout().Write(b)
				return err
			}
			if err := os.WriteFile(exportOut, b, 0o644); err != nil {
				return fmt.Errorf("write snapshot: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", exportOut)
			return nil
		})
	},
}

var (
	importIn   string
	importMode string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a previously exported JSON snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := os.ReadFile(importIn)
		if err != nil {
			return fmt.Errorf("read snapshot: %w", err)
		}
		var snap store.Snapshot
		if err := json.Unmarshal(b, &snap); err != nil {
			return fmt.Errorf("parse snapshot: %w", err)
		}
		return withApp(func(a *app.App) error {
			if err := store.Import(a.Logs, a.Goals, snap, importMode); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d day(s) (%s)\n", len(snap.Logs), importMode)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)

	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (default stdout)")

	importCmd.Flags().StringVar(&importIn, "in", "", "Snapshot file to import")
	importCmd.Flags().StringVar(&importMode, "mode", "merge", "Import mode: merge or replace")
	_ = importCmd.MarkFlagRequired("in")
}
