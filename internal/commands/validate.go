package commands

import (
	"fmt"

	"github.com/calvinmclean/survey/output"
	"github.com/calvinmclean/survey/questionnaire"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <questionnaire>",
	Short: "Validate a questionnaire file without asking anything",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := questionnaire.Parse(args[0])
		if err != nil {
			return err
		}

		if err := questionnaire.Validate(def); err != nil {
			output.Error("Questionnaire is invalid")
			return err
		}

		output.Success(fmt.Sprintf("%s is valid (%d questions)", args[0], len(def.Spec.Questions)))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
