package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jtoivan/statnews/internal/resource"
)

// languagesCmd represents the languages command
var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported output languages",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, language := range resource.New().Languages() {
			fmt.Println(language)
		}
	},
}

// datasetsCmd represents the datasets command
var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List datasets in the database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		service, closeStore, err := openService(ctx, cfg)
		if err != nil {
			return err
		}
		defer func() { _ = closeStore() }()

		for _, dataset := range service.Datasets() {
			fmt.Println(dataset)
		}
		return nil
	},
}

// locationsCmd represents the locations command
var locationsCmd = &cobra.Command{
	Use:   "locations <dataset>",
	Short: "List locations present in a dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		service, closeStore, err := openService(ctx, cfg)
		if err != nil {
			return err
		}
		defer func() { _ = closeStore() }()

		locations, err := service.Locations(args[0])
		if err != nil {
			return err
		}
		for _, location := range locations {
			fmt.Println(location)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(datasetsCmd)
	rootCmd.AddCommand(locationsCmd)
}
