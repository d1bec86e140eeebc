package questionnaire

import (
	"fmt"
	"regexp"
)

// ValidationError represents a questionnaire validation error with context
type ValidationError struct {
	Field      string // Field path (e.g., "spec.questions[0].type")
	Message    string // Error message
	Suggestion string // Helpful suggestion (optional)
}

// Error returns a formatted error message
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("validation error at %s: %s", e.Field, e.Message)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(". Suggestion: %s", e.Suggestion)
	}
	return msg
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error returns all validation errors formatted with clear separation
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	result := fmt.Sprintf("found %d validation errors:\n", len(e))
	for i, err := range e {
		result += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return result
}

// Validate checks a parsed questionnaire for structural problems. It
// returns ValidationErrors listing every problem found, or nil when the
// definition is usable.
func Validate(def *Definition) error {
	var errs ValidationErrors

	if def.APIVersion == "" {
		errs = append(errs, ValidationError{
			Field:   "apiVersion",
			Message: "apiVersion is required",
		})
	}

	switch def.Kind {
	case "":
		errs = append(errs, ValidationError{
			Field:   "kind",
			Message: "kind is required",
		})
	case KindQuestionnaire:
	default:
		errs = append(errs, ValidationError{
			Field:      "kind",
			Message:    fmt.Sprintf("unsupported kind %q", def.Kind),
			Suggestion: fmt.Sprintf("use %q", KindQuestionnaire),
		})
	}

	if def.Name == "" {
		errs = append(errs, ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(def.Spec.Questions) == 0 {
		errs = append(errs, ValidationError{
			Field:   "spec.questions",
			Message: "at least one question is required",
		})
	}

	for i, q := range def.Spec.Questions {
		errs = append(errs, validateQuestion(i, q)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateQuestion(i int, q QuestionDef) ValidationErrors {
	var errs ValidationErrors
	field := func(name string) string {
		return fmt.Sprintf("spec.questions[%d].%s", i, name)
	}

	if q.Key == "" {
		errs = append(errs, ValidationError{
			Field:   field("key"),
			Message: "key is required",
		})
	}
	if q.Prompt == "" {
		errs = append(errs, ValidationError{
			Field:   field("prompt"),
			Message: "prompt is required",
		})
	}

	switch q.Type {
	case TypeInput:
		if q.DefaultYes != nil {
			errs = append(errs, ValidationError{
				Field:      field("defaultYes"),
				Message:    "defaultYes is only valid for confirm questions",
				Suggestion: "use default for input questions",
			})
		}
		if q.Pattern != "" {
			if _, err := regexp.Compile(q.Pattern); err != nil {
				errs = append(errs, ValidationError{
					Field:   field("pattern"),
					Message: fmt.Sprintf("invalid pattern: %v", err),
				})
			}
		}
		switch q.Case {
		case "", CaseUpper, CaseLower:
		default:
			errs = append(errs, ValidationError{
				Field:      field("case"),
				Message:    fmt.Sprintf("unknown case %q", q.Case),
				Suggestion: fmt.Sprintf("use %q or %q", CaseUpper, CaseLower),
			})
		}
	case TypeConfirm:
		if q.Default != nil {
			errs = append(errs, ValidationError{
				Field:      field("default"),
				Message:    "default is only valid for input questions",
				Suggestion: "use defaultYes for confirm questions",
			})
		}
		if q.Pattern != "" {
			errs = append(errs, ValidationError{
				Field:   field("pattern"),
				Message: "pattern is only valid for input questions",
			})
		}
		if q.Case != "" {
			errs = append(errs, ValidationError{
				Field:   field("case"),
				Message: "case is only valid for input questions",
			})
		}
	case "":
		errs = append(errs, ValidationError{
			Field:   field("type"),
			Message: "type is required",
		})
	default:
		errs = append(errs, ValidationError{
			Field:      field("type"),
			Message:    fmt.Sprintf("unknown type %q", q.Type),
			Suggestion: fmt.Sprintf("use %q or %q", TypeInput, TypeConfirm),
		})
	}

	return errs
}
