package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jtoivan/statnews/internal/data"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <dataset> <tsv-file>",
	Short: "Import a TSV dataset export into the database",
	Long: `Import parses a tab-separated dataset export and replaces the stored
rows for the dataset.

The header row names the meta columns (location, location_type, timestamp,
timestamp_type; where/when aliases are accepted). Every other column is a
numeric value column, and "<column>:outlierness" siblings carry the
precomputed interestingness scores.

Example:
  statnews import cphi cphi.tsv
  statnews import health_cost health.tsv --db ./statnews.db`,
	Args: cobra.ExactArgs(2),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	dataset, path := args[0], args[1]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rows, err := data.ReadTSV(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("no usable rows in %s", path)
	}

	store, err := data.OpenSQLite(ctx, cfg.Data.Path)
	if err != nil {
		return fmt.Errorf("open database %s: %w", cfg.Data.Path, err)
	}
	defer func() { _ = store.Close() }()

	if err := store.Put(ctx, dataset, rows); err != nil {
		return fmt.Errorf("store dataset %s: %w", dataset, err)
	}

	fmt.Fprintf(os.Stderr, "Imported %d rows into dataset %q (%s)\n", len(rows), dataset, cfg.Data.Path)
	return nil
}
