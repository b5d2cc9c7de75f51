package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jtoivan/statnews/internal/cache"
	"github.com/jtoivan/statnews/internal/worker"
)

var (
	bulkDataset       string
	bulkLanguages     []string
	bulkLocations     []string
	bulkLocationsFile string
	bulkConcurrency   int
	bulkOutputDir     string
	bulkCacheDir      string
	bulkTimeout       time.Duration
)

// bulkCmd represents the bulk command
var bulkCmd = &cobra.Command{
	Use:   "bulk",
	Short: "Generate articles for many language-location combinations",
	Long: `Bulk renders one article per language-location combination in parallel
and writes each as an HTML file to the output directory.

Locations default to every location present in the dataset; languages
default to every supported language.

Example:
  statnews bulk --dataset cphi
  statnews bulk --dataset cphi --languages en,fi --locations FI,SE,DE
  statnews bulk --dataset cphi --locations-file locations.txt --concurrency 8`,
	Args: cobra.NoArgs,
	RunE: runBulk,
}

func init() {
	rootCmd.AddCommand(bulkCmd)

	bulkCmd.Flags().StringVarP(&bulkDataset, "dataset", "d", "cphi", "dataset to report on")
	bulkCmd.Flags().StringSliceVar(&bulkLanguages, "languages", nil, "languages to render (default: all)")
	bulkCmd.Flags().StringSliceVar(&bulkLocations, "locations", nil, "locations to render (default: all in dataset)")
	bulkCmd.Flags().StringVar(&bulkLocationsFile, "locations-file", "", "file with location codes, one per line")
	bulkCmd.Flags().IntVar(&bulkConcurrency, "concurrency", 0, "number of concurrent workers (default: from config)")
	bulkCmd.Flags().StringVar(&bulkOutputDir, "output-dir", "./articles", "output directory")
	bulkCmd.Flags().StringVar(&bulkCacheDir, "cache-dir", "", "persist rendered articles here and reuse them on reruns")
	bulkCmd.Flags().DurationVar(&bulkTimeout, "timeout", 10*time.Minute, "total timeout for the batch")
}

func runBulk(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), bulkTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	concurrency := bulkConcurrency
	if concurrency <= 0 {
		concurrency = cfg.Concurrency.BulkWorkers
	}
	if bulkCacheDir != "" {
		// A rerun then only renders what is missing or expired.
		cfg.Cache.Enabled = true
		cfg.Cache.Backend = cache.BackendLayered
		cfg.Cache.Dir = bulkCacheDir
	}

	service, closeStore, err := openService(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeStore() }()

	languages := bulkLanguages
	if len(languages) == 0 {
		languages = service.Languages()
	}

	locations := bulkLocations
	if bulkLocationsFile != "" {
		locations, err = worker.ReadLocationsFromFile(bulkLocationsFile)
		if err != nil {
			return err
		}
	}
	if len(locations) == 0 {
		locations, err = service.Locations(bulkDataset)
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(bulkOutputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	requests := worker.Requests(bulkDataset, languages, locations)
	fmt.Fprintf(os.Stderr, "Rendering %d articles (%d languages x %d locations) with %d workers\n",
		len(requests), len(languages), len(locations), concurrency)

	generator := worker.NewBulkGenerator(service, concurrency)
	if cfg.LLM.Provider != "" {
		// Stay inside the inflection API quota.
		generator = generator.WithLimiter(worker.NewLimiter(cfg.Server.RequestsPerSecond, cfg.Server.Burst))
	}
	results := generator.Generate(ctx, requests)

	written := 0
	failed := 0
	degraded := 0
	for _, result := range results {
		if result.Err() != nil {
			failed++
			fmt.Fprintf(os.Stderr, "FAIL %s/%s: %v\n", result.Request.Language, result.Request.Location, result.Error)
			continue
		}
		if result.Article.Degraded {
			degraded++
		}

		name := fmt.Sprintf("%s-%s.html", result.Request.Language, result.Request.Location)
		path := filepath.Join(bulkOutputDir, name)
		content := fmt.Sprintf("<h1>%s</h1>\n%s\n", result.Article.Headline, result.Article.Body)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", name, err)
			continue
		}
		written++
		if verbose {
			fmt.Fprintf(os.Stderr, "ok %s: %s\n", name, result.Article.Headline)
		}
	}

	fmt.Fprintf(os.Stderr, "\nDone: %d written, %d degraded, %d failed -> %s\n",
		written, degraded, failed, bulkOutputDir)
	if failed > 0 {
		return fmt.Errorf("%d of %d articles failed", failed, len(results))
	}
	return nil
}
