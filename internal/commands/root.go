package commands

import (
	"fmt"

	"github.com/calvinmclean/survey"
	"github.com/calvinmclean/survey/output"
	"github.com/spf13/cobra"
)

var (
	verbose bool
)

// RootCmd is the root command for the survey CLI
var RootCmd = &cobra.Command{
	Use:   "survey",
	Short: "Survey - ask questions, collect typed answers",
	Long: `Survey presents sequential terminal prompts and converts replies into
typed, validated answers. Questionnaires are plain YAML files.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		output.SetVerbose(verbose)
	},
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed output")

	// Add version command
	RootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Survey v%s\n", survey.Version)
		},
	})
}
