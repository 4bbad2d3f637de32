package config

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Roster defaults
	v.SetDefault("roster.path", "config/roster.yaml")
	v.SetDefault("roster.max_number", DefaultMaxNumber)

	// Survey table defaults
	v.SetDefault("survey.path", "survey_responses.csv")
	v.SetDefault("survey.id_column", "Student ID")
	v.SetDefault("survey.name_column", "Name")
	v.SetDefault("survey.number_column", "Respondent No.")
	v.SetDefault("survey.answer_columns", []string{
		"E1: What worked well",
		"E2: What was confusing or unclear",
		"E3: Suggested improvements",
	})

	// Output defaults
	v.SetDefault("output.path", "output/survey_responses_numbered.csv")
}

// Defaults returns a Config populated with default values only
func Defaults() (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	return LoadWithViper(v)
}
