package cmd

import (
	"fmt"

	"github.com/vitadash/vitadash/internal/config"
	"github.com/vitadash/vitadash/internal/source"
	"github.com/vitadash/vitadash/internal/store/local"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed <export-file-or-dir>",
	Short: "Load a JSONL record export into the local store",
	Long: `Reads one or more JSONL export files and inserts their records into
the local SQLite record store. Each line is a JSON object with a "table"
field naming the destination (profiles, weights, meals, workouts,
hydration, sleep, steps) plus that table's columns.`,
	Args: cobra.ExactArgs(1),
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, _ := config.Load()

	dbPath := cfg.Store.DBPath
	if flagDBPath != "" {
		dbPath = flagDBPath
	}
	if dbPath == "" {
		return fmt.Errorf("no local store path configured; set store.db_path or pass --db")
	}

	files, err := source.Discover(args[0])
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .jsonl export files under %s", args[0])
	}

	db, err := local.Open(dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	inserted, skipped := 0, 0
	for _, file := range files {
		res := source.ParseFile(file)
		if res.Err != nil {
			return fmt.Errorf("parse %s: %w", file, res.Err)
		}
		skipped += res.ParseErrors

		for _, rec := range res.Records {
			if err := db.Insert(cmd.Context(), rec.Table, rec.Row); err != nil {
				return fmt.Errorf("insert into %s: %w", rec.Table, err)
			}
			inserted++
		}
	}

	fmt.Printf("Seeded %d records into %s", inserted, dbPath)
	if skipped > 0 {
		fmt.Printf(" (%d lines skipped)", skipped)
	}
	fmt.Println()
	return nil
}
