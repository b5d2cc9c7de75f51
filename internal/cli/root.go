// Package cli wires the cobra command tree for the statnews binary.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jtoivan/statnews/internal/data"
	"github.com/jtoivan/statnews/internal/model"
	"github.com/jtoivan/statnews/internal/pipeline"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "statnews",
	Short: "Statnews - automated news generation from statistical data",
	Long: `Statnews turns statistical open data into short news articles.

It extracts newsworthy facts from loaded datasets, plans a document around
the most interesting ones, and writes the article in English, Finnish or
German using handwritten templates and realization rules.

No neural text generation is involved: every sentence is traceable to the
data points it reports.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number and build information for statnews.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("statnews v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.statnews/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("db", "", "SQLite database path (default: statnews.db)")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("data.path", rootCmd.PersistentFlags().Lookup("db"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}
		viper.AddConfigPath(home + "/.statnews")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match STATNEWS_*
	viper.SetEnvPrefix("STATNEWS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig layers the config file and environment over the defaults and
// resolves LLM credentials from the environment.
func loadConfig() (*model.Config, error) {
	defaults := model.DefaultConfig()
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.Output.Verbose = verbose

	// Bound flags default to empty strings; empty never overrides.
	if cfg.Data.Path == "" {
		cfg.Data.Path = defaults.Data.Path
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = defaults.Server.Addr
	}

	// API keys never live in the config file.
	switch cfg.LLM.Provider {
	case "":
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}
	return cfg, nil
}

// openService opens the dataset store and assembles the generation service.
// The returned closer releases the database.
func openService(ctx context.Context, cfg *model.Config) (*pipeline.Service, func() error, error) {
	store, err := data.OpenSQLite(ctx, cfg.Data.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open database %s: %w", cfg.Data.Path, err)
	}

	service, err := pipeline.NewService(ctx, cfg, store)
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	return service, store.Close, nil
}
