package caloritons

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ton48099/CaloriTons/internal/app"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Create or restore database backups",
}

var backupOut string

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Copy the database to a timestamped backup file with a checksum",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveDBPath()
		if err != nil {
			return err
		}
		out := backupOut
		if out == "" {
			stamp := time.Now().Format("20060102-150405")
			out = filepath.Join(filepath.Dir(path), fmt.Sprintf("caloritons-%s.db.bak", stamp))
		}
		info, err := app.CreateBackup(path, out)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Backup written to %s\nSHA-256: %s\n", info.Path, info.Checksum)
		return nil
	},
}

var restoreForce bool

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <backup-file>",
	Short: "Restore the database from a backup file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveDBPath()
		if err != nil {
			return err
		}
		if !restoreForce && !confirm(cmd, fmt.Sprintf("Overwrite %s with %s?", path, args[0])) {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
			return nil
		}
		if err := app.RestoreBackup(args[0], path, true); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Restored %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupCreateCmd)
	backupCmd.AddCommand(backupRestoreCmd)

	backupCreateCmd.Flags().StringVar(&backupOut, "out", "", "Backup file path (default alongside the database)")
	backupRestoreCmd.Flags().BoolVar(&restoreForce, "force", false, "Skip the confirmation prompt")
}
