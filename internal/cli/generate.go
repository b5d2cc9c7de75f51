package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jtoivan/statnews/internal/pipeline"
)

var (
	genLanguage     string
	genDataset      string
	genLocationType string
	genPrevious     string
	genSeed         int64
	genJSON         bool
	genNoCache      bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <location>",
	Short: "Generate one article for a location",
	Long: `Generate writes a news article about the given location from a loaded
dataset.

Example:
  statnews generate FI
  statnews generate SE --language fi --dataset cphi
  statnews generate DE --previous-location FI
  statnews generate FI --json`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&genLanguage, "language", "l", "en", "output language (en, fi, de)")
	generateCmd.Flags().StringVarP(&genDataset, "dataset", "d", "cphi", "dataset to report on")
	generateCmd.Flags().StringVar(&genLocationType, "location-type", "country", "location type of the query")
	generateCmd.Flags().StringVar(&genPrevious, "previous-location", "", "boost facts cohering with an earlier article about this location")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "random seed (0 = random per run)")
	generateCmd.Flags().BoolVar(&genJSON, "json", false, "emit the article as JSON")
	generateCmd.Flags().BoolVar(&genNoCache, "no-cache", false, "bypass the article cache")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	location := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if genSeed != 0 {
		cfg.Seed = genSeed
	}
	if genNoCache {
		cfg.Cache.Enabled = false
	}

	service, closeStore, err := openService(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeStore() }()

	if verbose {
		fmt.Fprintf(os.Stderr, "Generating: %s/%s about %s\n\n", genLanguage, genDataset, location)
	}

	article, err := service.Generate(ctx, pipeline.Request{
		Language:         genLanguage,
		Dataset:          genDataset,
		Location:         location,
		LocationType:     genLocationType,
		PreviousLocation: genPrevious,
	})
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	if genJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(article)
	}

	fmt.Println(article.Headline)
	fmt.Println()
	fmt.Println(article.Body)
	if article.Degraded && verbose {
		fmt.Fprintln(os.Stderr, "\nNote: generation degraded to canned text")
	}
	return nil
}
