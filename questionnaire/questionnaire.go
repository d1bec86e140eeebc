package questionnaire

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// KindQuestionnaire is the only kind accepted in questionnaire files.
const KindQuestionnaire = "Questionnaire"

// Question types.
const (
	TypeInput   = "input"
	TypeConfirm = "confirm"
)

// Case transforms for input questions.
const (
	CaseUpper = "upper"
	CaseLower = "lower"
)

// Definition is the top-level structure of a questionnaire file.
type Definition struct {
	APIVersion string `yaml:"apiVersion"`
	Kind       string `yaml:"kind"`
	Name       string `yaml:"name"`
	Spec       Spec   `yaml:"spec"`
}

// Spec holds the ordered questions of a questionnaire.
type Spec struct {
	Questions []QuestionDef `yaml:"questions"`
}

// QuestionDef describes one question in a questionnaire file.
//
// Default, Pattern, and Case apply to input questions; DefaultYes applies
// to confirm questions. Validate rejects mismatched combinations.
type QuestionDef struct {
	Key        string  `yaml:"key"`
	Type       string  `yaml:"type"`
	Prompt     string  `yaml:"prompt"`
	Help       string  `yaml:"help,omitempty"`
	Default    *string `yaml:"default,omitempty"`
	DefaultYes *bool   `yaml:"defaultYes,omitempty"`
	Pattern    string  `yaml:"pattern,omitempty"`
	Case       string  `yaml:"case,omitempty"`
}

// Parse reads and parses a questionnaire file.
func Parse(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read questionnaire file: %w", err)
	}
	return ParseBytes(data)
}

// ParseBytes parses a questionnaire from bytes.
func ParseBytes(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &def, nil
}

// Write writes a questionnaire to a file.
func Write(path string, def *Definition) error {
	data, err := yaml.Marshal(def)
	if err != nil {
		return fmt.Errorf("failed to marshal questionnaire: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
