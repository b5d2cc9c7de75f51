package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jtoivan/statnews/internal/resource"
	"github.com/jtoivan/statnews/internal/validate"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Lint the built-in generation resources",
	Long: `Validate checks the template and realization resources for authoring
mistakes: templates without selection rules, slot indices pointing outside
the component list, languages missing headline template sets.

Exits non-zero when any error-severity issue is found.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		issues := validate.NewValidator(resource.New()).Validate()
		for _, issue := range issues {
			fmt.Fprintln(os.Stderr, issue)
		}
		if validate.HasErrors(issues) {
			return fmt.Errorf("%d issues found", len(issues))
		}
		if len(issues) == 0 {
			fmt.Fprintln(os.Stderr, "Resources are sound")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
