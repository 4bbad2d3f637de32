// Package config loads and validates surveyid configuration.
//
// Configuration sources, in order of precedence:
//  1. Environment variables (SURVEYID_* prefix)
//  2. Project config (./surveyid.toml, searched upward)
//  3. User config (~/.surveyid/surveyid.toml)
//  4. System config (/etc/surveyid/surveyid.toml)
//  5. Default values
//
// Paths, column headers, and the respondent-number bound all live here so
// the core packages stay free of embedded constants.
package config

import "os"

// Config is the root surveyid configuration
type Config struct {
	Roster RosterConfig `mapstructure:"roster" toml:"roster"`
	Survey SurveyConfig `mapstructure:"survey" toml:"survey"`
	Output OutputConfig `mapstructure:"output" toml:"output"`
}

// RosterConfig describes the hand-edited roster document
type RosterConfig struct {
	// Path to the roster YAML file
	Path string `mapstructure:"path" toml:"path"`

	// MaxNumber is the upper bound N of the respondent-number range [1, N]
	MaxNumber int `mapstructure:"max_number" toml:"max_number"`
}

// SurveyConfig describes the survey response table
type SurveyConfig struct {
	// Path to the raw survey CSV
	Path string `mapstructure:"path" toml:"path"`

	// IDColumn is the exact header of the student-ID column
	IDColumn string `mapstructure:"id_column" toml:"id_column"`

	// NameColumn is the exact header of the respondent-name column
	NameColumn string `mapstructure:"name_column" toml:"name_column"`

	// NumberColumn is the header used for the respondent-number column
	// added by assign
	NumberColumn string `mapstructure:"number_column" toml:"number_column"`

	// AnswerColumns are the exact headers of the free-text answer columns
	AnswerColumns []string `mapstructure:"answer_columns" toml:"answer_columns"`
}

// OutputConfig describes the numbered output table
type OutputConfig struct {
	// Path the numbered CSV is written to
	Path string `mapstructure:"path" toml:"path"`
}

// Default file locations and permissions
const (
	// DefaultDirPermissions for created config/output directories
	DefaultDirPermissions os.FileMode = 0755

	// DefaultFilePermissions for written config files
	DefaultFilePermissions os.FileMode = 0644

	// DefaultMaxNumber is the deployment's respondent count bound
	DefaultMaxNumber = 18
)
