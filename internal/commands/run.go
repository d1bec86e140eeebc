package commands

import (
	"fmt"

	"github.com/calvinmclean/survey/ask"
	"github.com/calvinmclean/survey/output"
	"github.com/calvinmclean/survey/questionnaire"
	"github.com/calvinmclean/survey/tui"
	"github.com/spf13/cobra"
)

var (
	reportPath  string
	useTUI      bool
	answerLines []string
)

var runCmd = &cobra.Command{
	Use:   "run <questionnaire>",
	Short: "Ask every question in a questionnaire file",
	Long: `Parses and validates a YAML questionnaire, asks each question in order,
and prints the collected answers.

Example:
  survey run onboarding.yml
  survey run onboarding.yml --answers Calvin --answers y
  survey run onboarding.yml --tui --out answers.yml`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&reportPath, "out", "o", "", "Write a YAML answer report to this path")
	runCmd.Flags().BoolVar(&useTUI, "tui", false, "Prompt with the interactive text-input backend")
	runCmd.Flags().StringArrayVar(&answerLines, "answers", nil, "Scripted replies, one per question; remaining questions prompt normally")

	RootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	if reportPath == "" {
		reportPath = cfg.Report
	}
	if !cmd.Flags().Changed("tui") && cfg.TUI {
		useTUI = true
	}

	if useTUI {
		ask.SetDefault(tui.LineSource())
		defer ask.SetDefault(nil)
	}

	def, err := questionnaire.Parse(args[0])
	if err != nil {
		return err
	}
	questions, err := questionnaire.Build(def)
	if err != nil {
		return fmt.Errorf("invalid questionnaire: %w", err)
	}

	output.Info(fmt.Sprintf("📋 %s: %d questions", def.Name, len(questions)))
	output.Verbose("loaded " + args[0])

	var answers []ask.KeyedAnswer
	if len(answerLines) > 0 {
		sources := make([]ask.LineSource, len(answerLines))
		for i, line := range answerLines {
			sources[i] = ask.Static(line)
		}
		answers = ask.AskMany(questions, sources)
	} else {
		answers = ask.AskManyWithHelp(questions)
	}

	fmt.Println()
	failed := 0
	for _, ka := range answers {
		switch a := ka.Answer.(type) {
		case ask.StringAnswer:
			output.Step(fmt.Sprintf("%s: %s", ka.Key, a.Value))
		case ask.BoolAnswer:
			output.Step(fmt.Sprintf("%s: %t", ka.Key, a.Value))
		case ask.ErrorAnswer:
			failed++
			output.Step(fmt.Sprintf("%s: error (%s)", ka.Key, a.Kind))
		case ask.NoAnswer:
			failed++
			output.Step(ka.Key + ": unanswered")
		}
	}
	fmt.Println()

	if reportPath != "" {
		if err := questionnaire.WriteReport(reportPath, answers); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		output.Info("📁 Report: " + reportPath)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d questions failed", failed, len(answers))
	}

	output.Success(fmt.Sprintf("All %d questions answered", len(answers)))
	return nil
}
