package config

import "surveyid/errors"

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Roster.Path == "" {
		return errors.New("roster.path cannot be empty")
	}
	if c.Roster.MaxNumber < 1 {
		return errors.Newf("roster.max_number must be >= 1, got %d", c.Roster.MaxNumber)
	}

	if c.Survey.Path == "" {
		return errors.New("survey.path cannot be empty")
	}
	if c.Survey.IDColumn == "" {
		return errors.New("survey.id_column cannot be empty")
	}
	if c.Survey.NameColumn == "" {
		return errors.New("survey.name_column cannot be empty")
	}
	if c.Survey.NumberColumn == "" {
		return errors.New("survey.number_column cannot be empty")
	}
	if len(c.Survey.AnswerColumns) == 0 {
		return errors.New("survey.answer_columns cannot be empty")
	}

	// Answer columns are matched by exact header text, so repeats would
	// silently read the same cell twice
	seen := make(map[string]bool, len(c.Survey.AnswerColumns))
	for _, col := range c.Survey.AnswerColumns {
		if col == "" {
			return errors.New("survey.answer_columns cannot contain empty headers")
		}
		if seen[col] {
			return errors.Newf("survey.answer_columns contains duplicate header %q", col)
		}
		seen[col] = true
	}

	if c.Output.Path == "" {
		return errors.New("output.path cannot be empty")
	}

	return nil
}
