// Package cmd implements the vitadash CLI commands.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/vitadash/vitadash/internal/cli"
	"github.com/vitadash/vitadash/internal/config"
	"github.com/vitadash/vitadash/internal/model"
	"github.com/vitadash/vitadash/internal/pipeline"
	"github.com/vitadash/vitadash/internal/store"
	"github.com/vitadash/vitadash/internal/store/local"
	"github.com/vitadash/vitadash/internal/store/rest"

	"github.com/spf13/cobra"
)

var (
	flagUser     string
	flagOffset   int
	flagBackend  string
	flagStoreURL string
	flagDBPath   string
)

var rootCmd = &cobra.Command{
	Use:   "vitadash",
	Short: "Personal daily health dashboard",
	Long:  "View a day's nutrition, hydration, workouts, sleep, and steps against your goals.",
	RunE:  runDay,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagUser, "user", "u", "", "User identifier (phone number)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Record store backend: rest or local")
	rootCmd.PersistentFlags().StringVar(&flagStoreURL, "store-url", "", "Remote record store base URL")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Local record store SQLite path")
	rootCmd.Flags().IntVarP(&flagOffset, "offset", "o", 0, "Day offset from today within the picker window")
}

// openStore builds the configured record store backend, with flags taking
// precedence over the config file.
func openStore(cfg config.Config) (store.Store, error) {
	backend := cfg.Store.Backend
	if flagBackend != "" {
		backend = flagBackend
	}
	baseURL := cfg.Store.BaseURL
	if flagStoreURL != "" {
		baseURL = flagStoreURL
	}
	dbPath := cfg.Store.DBPath
	if flagDBPath != "" {
		dbPath = flagDBPath
	}

	switch backend {
	case "", "rest":
		if baseURL == "" {
			return nil, fmt.Errorf("no record store URL configured; set store.base_url or pass --store-url")
		}
		return rest.New(baseURL, config.GetAPIKey(cfg)), nil
	case "local":
		if dbPath == "" {
			return nil, fmt.Errorf("no local store path configured; set store.db_path or pass --db")
		}
		return local.Open(dbPath)
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}

func resolveUser(cfg config.Config) (string, error) {
	if flagUser != "" {
		return flagUser, nil
	}
	if cfg.General.User != "" {
		return cfg.General.User, nil
	}
	return "", fmt.Errorf("no user identifier; pass --user or set general.user in %s", config.Path())
}

// dayLabel renders a cell the way the picker shows the selected day.
func dayLabel(cell model.DayCell) string {
	if cell.IsToday {
		return fmt.Sprintf("Today, %s %s", cell.Day, cell.Month)
	}
	return fmt.Sprintf("%s %s", cell.Day, cell.Month)
}

func runDay(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	user, err := resolveUser(cfg)
	if err != nil {
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	ctrl := pipeline.NewController(st, cfg.General.DaysBefore, cfg.General.DaysAfter, time.Now())
	idx := ctrl.TodayIndex() + flagOffset
	if idx < 0 || idx >= len(ctrl.Window()) {
		return fmt.Errorf("offset %d is outside the %d-day window", flagOffset, len(ctrl.Window()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sum, err := ctrl.Recompute(ctx, user, idx)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return fmt.Errorf("no user found for identifier %q", user)
		}
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderDaySummary(sum, dayLabel(ctrl.Window()[idx])))
	return nil
}
