package cmd

import (
	"fmt"

	"github.com/vitadash/vitadash/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	if cfg.General.User != "" {
		fmt.Printf("    User:       %s\n", cfg.General.User)
	} else {
		fmt.Println("    User:       not configured")
	}
	fmt.Printf("    Day window: %d before, %d after today\n",
		cfg.General.DaysBefore, cfg.General.DaysAfter)
	fmt.Println()

	fmt.Println("  [Store]")
	fmt.Printf("    Backend: %s\n", cfg.Store.Backend)
	if cfg.Store.BaseURL != "" {
		fmt.Printf("    URL:     %s\n", cfg.Store.BaseURL)
	}
	if key := config.GetAPIKey(cfg); key != "" {
		fmt.Printf("    API key: %s\n", maskAPIKey(key))
	} else {
		fmt.Println("    API key: not configured")
	}
	if cfg.Store.DBPath != "" {
		fmt.Printf("    DB path: %s\n", cfg.Store.DBPath)
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  The TUI's first-run form can write this file for you: `vitadash tui`.")

	return nil
}

func maskAPIKey(key string) string {
	if len(key) > 16 {
		return key[:8] + "..." + key[len(key)-4:]
	}
	if len(key) > 4 {
		return key[:4] + "..."
	}
	return "****"
}
