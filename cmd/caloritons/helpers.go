package caloritons

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ton48099/CaloriTons/config"
	"github.com/ton48099/CaloriTons/internal/app"
	"github.com/ton48099/CaloriTons/pkg/logger"
)

func appLogger() *logger.Logger {
	if verbose {
		return logger.NewVerbose()
	}
	return logger.New()
}

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, nil
	}
	return app.DefaultDBPath()
}

func withApp(run func(*app.App) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	a, err := app.Open(path, appLogger())
	if err != nil {
		return err
	}
	defer a.Close()
	return run(a)
}

// resolveDate validates a --date value, defaulting to today.
func resolveDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Now().Format("2006-01-02"), nil
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", date)
	}
	return date, nil
}

// confirm asks on stdin before a destructive action. Anything but y/yes
// declines.
func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
