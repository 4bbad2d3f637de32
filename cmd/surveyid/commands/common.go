package commands

import (
	"surveyid/config"
	"surveyid/errors"
	"surveyid/survey"
)

// loadConfig loads and validates the effective configuration for a command run.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

// surveyColumns builds the column set the survey package operates on.
func surveyColumns(cfg *config.Config) survey.Columns {
	return survey.Columns{
		Number:  cfg.Survey.NumberColumn,
		ID:      cfg.Survey.IDColumn,
		Name:    cfg.Survey.NameColumn,
		Answers: cfg.Survey.AnswerColumns,
	}
}
