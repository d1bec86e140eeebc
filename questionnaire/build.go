package questionnaire

import (
	"regexp"
	"strings"

	"github.com/calvinmclean/survey/ask"
)

// Build validates a definition and compiles it into resolver questions,
// preserving file order. Patterns become validators and case settings
// become transforms.
func Build(def *Definition) ([]ask.KeyedQuestion, error) {
	if err := Validate(def); err != nil {
		return nil, err
	}

	questions := make([]ask.KeyedQuestion, 0, len(def.Spec.Questions))
	for _, q := range def.Spec.Questions {
		questions = append(questions, ask.KeyedQuestion{
			Key:      q.Key,
			Question: buildQuestion(q),
		})
	}
	return questions, nil
}

func buildQuestion(q QuestionDef) ask.Question {
	if q.Type == TypeConfirm {
		return ask.Confirm{
			Prompt:  q.Prompt,
			Help:    q.Help,
			Default: q.DefaultYes,
		}
	}

	in := ask.Input{
		Prompt:  q.Prompt,
		Help:    q.Help,
		Default: q.Default,
	}
	if q.Pattern != "" {
		// Compile already succeeded during validation.
		in.Validate = regexp.MustCompile(q.Pattern).MatchString
	}
	switch q.Case {
	case CaseUpper:
		in.Transform = strings.ToUpper
	case CaseLower:
		in.Transform = strings.ToLower
	}
	return in
}
