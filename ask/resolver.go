package ask

import (
	"strings"

	"github.com/calvinmclean/survey/output"
)

// KeyedQuestion pairs a question with the key its answer is reported under.
// Keys are opaque to the resolver and need not be unique.
type KeyedQuestion struct {
	Key      string
	Question Question
}

// KeyedAnswer pairs a resolved answer with its question's key.
type KeyedAnswer struct {
	Key    string
	Answer Answer
}

// ConfirmDecoration renders the yes/no suffix for a confirmation default.
// The capitalized letter marks the answer an empty reply resolves to.
func ConfirmDecoration(def *bool) string {
	switch {
	case def == nil:
		return " [y/n] "
	case *def:
		return " [Y/n] "
	default:
		return " [y/N] "
	}
}

// Ask resolves a single question against src and returns exactly one
// Answer. A nil src uses the default line source (the terminal, unless
// SetDefault changed it).
//
// Validation failures are returned, not re-asked; callers wanting a retry
// call Ask again or use AskWithHelp. Empty replies on questions without a
// default, and confirmation replies other than "y"/"n", re-enter the help
// path with the same source.
func Ask(q Question, src LineSource) Answer {
	if src == nil {
		src = defaultSource
	}

	switch q := q.(type) {
	case Input:
		return askInput(q, src)
	case Confirm:
		return askConfirm(q, src)
	default:
		// The Question set is sealed, so this arm is unreachable; surface
		// it as a contract fault rather than guessing.
		return ErrorAnswer{Kind: KindInvalidType}
	}
}

// AskWithHelp emits the question's help text, when present, then resolves
// the question exactly as Ask does.
func AskWithHelp(q Question, src LineSource) Answer {
	switch q := q.(type) {
	case Input:
		if q.Help != "" {
			output.Help(q.Help)
		}
	case Confirm:
		if q.Help != "" {
			output.Help(q.Help)
		}
	}
	return Ask(q, src)
}

// AskMany resolves questions in order, producing one keyed answer per
// question with keys passed through verbatim. Sources are consumed left to
// right, one per question; questions beyond the last source fall back to
// the default line source.
func AskMany(questions []KeyedQuestion, sources []LineSource) []KeyedAnswer {
	answers := make([]KeyedAnswer, 0, len(questions))
	for i, kq := range questions {
		var src LineSource
		if i < len(sources) {
			src = sources[i]
		}
		answers = append(answers, KeyedAnswer{Key: kq.Key, Answer: Ask(kq.Question, src)})
	}
	return answers
}

// AskManyWithHelp resolves questions in order with help emission, always
// using the default line source.
func AskManyWithHelp(questions []KeyedQuestion) []KeyedAnswer {
	answers := make([]KeyedAnswer, 0, len(questions))
	for _, kq := range questions {
		answers = append(answers, KeyedAnswer{Key: kq.Key, Answer: AskWithHelp(kq.Question, nil)})
	}
	return answers
}

func askInput(q Input, src LineSource) Answer {
	line, err := src(q.Prompt + " ")
	if err != nil {
		return ErrorAnswer{Kind: KindInput}
	}

	line = strings.TrimSpace(line)
	if line == "" {
		if q.Default == nil {
			return AskWithHelp(q, src)
		}
		return transformInput(q, StringAnswer{Value: *q.Default})
	}

	if q.Validate != nil && !q.Validate(line) {
		return ErrorAnswer{Kind: KindValidation}
	}
	return transformInput(q, StringAnswer{Value: line})
}

func askConfirm(q Confirm, src LineSource) Answer {
	line, err := src(q.Prompt + ConfirmDecoration(q.Default))
	if err != nil {
		return ErrorAnswer{Kind: KindInput}
	}

	line = strings.TrimSpace(line)
	if line == "" {
		if q.Default == nil {
			return AskWithHelp(q, src)
		}
		return transformConfirm(q, BoolAnswer{Value: *q.Default})
	}

	switch strings.ToLower(line) {
	case "y":
		return transformConfirm(q, BoolAnswer{Value: true})
	case "n":
		return transformConfirm(q, BoolAnswer{Value: false})
	default:
		return AskWithHelp(q, src)
	}
}

// transformInput applies the question's transform to an accepted answer.
// Transforms are typed over the payload, not the Answer, so a variant
// mismatch is surfaced as KindInvalidType instead of being applied.
func transformInput(q Input, ans Answer) Answer {
	if q.Transform == nil {
		return ans
	}
	switch a := ans.(type) {
	case StringAnswer:
		return StringAnswer{Value: q.Transform(a.Value)}
	case BoolAnswer:
		return ErrorAnswer{Kind: KindInvalidType}
	default:
		return ans
	}
}

func transformConfirm(q Confirm, ans Answer) Answer {
	if q.Transform == nil {
		return ans
	}
	switch a := ans.(type) {
	case BoolAnswer:
		return BoolAnswer{Value: q.Transform(a.Value)}
	case StringAnswer:
		return ErrorAnswer{Kind: KindInvalidType}
	default:
		return ans
	}
}
