package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds CLI defaults loaded from an optional survey.yml in the
// working directory. Flags always override it.
type Config struct {
	Report string // default path for the answer report
	TUI    bool   // use the text-input backend by default
}

// LoadConfig reads survey.yml when present. A missing file is not an
// error; environment variables with the SURVEY prefix override values.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("survey")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Enable environment variable overrides
	v.AutomaticEnv()
	v.SetEnvPrefix("SURVEY")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read survey.yml: %w", err)
		}
	}

	return &Config{
		Report: v.GetString("report"),
		TUI:    v.GetBool("tui"),
	}, nil
}
