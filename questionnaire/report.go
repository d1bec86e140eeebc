package questionnaire

import (
	"fmt"
	"os"

	"github.com/calvinmclean/survey/ask"
	"gopkg.in/yaml.v3"
)

// Entry is one resolved answer in a report. Value holds the accepted
// string or bool; failed resolutions carry the error kind instead.
type Entry struct {
	Key   string `yaml:"key"`
	Value any    `yaml:"value"`
	Error string `yaml:"error,omitempty"`
}

type report struct {
	Answers []Entry `yaml:"answers"`
}

// Report converts resolved answers into report entries, preserving order
// and duplicate keys.
func Report(answers []ask.KeyedAnswer) []Entry {
	entries := make([]Entry, 0, len(answers))
	for _, ka := range answers {
		entry := Entry{Key: ka.Key}
		switch a := ka.Answer.(type) {
		case ask.StringAnswer:
			entry.Value = a.Value
		case ask.BoolAnswer:
			entry.Value = a.Value
		case ask.ErrorAnswer:
			entry.Error = a.Kind.String()
		case ask.NoAnswer:
			entry.Error = "unanswered"
		}
		entries = append(entries, entry)
	}
	return entries
}

// MarshalReport renders answers as a YAML report.
func MarshalReport(answers []ask.KeyedAnswer) ([]byte, error) {
	data, err := yaml.Marshal(report{Answers: Report(answers)})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	return data, nil
}

// WriteReport writes a YAML answer report to path.
func WriteReport(path string, answers []ask.KeyedAnswer) error {
	data, err := MarshalReport(answers)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
