package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	// Create isolated viper instance without loading user/system config
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	if err != nil {
		t.Fatalf("LoadWithViper() failed: %v", err)
	}

	if cfg.Roster.Path != "config/roster.yaml" {
		t.Errorf("expected default roster path 'config/roster.yaml', got %q", cfg.Roster.Path)
	}

	if cfg.Roster.MaxNumber != DefaultMaxNumber {
		t.Errorf("expected default max number %d, got %d", DefaultMaxNumber, cfg.Roster.MaxNumber)
	}

	if cfg.Survey.IDColumn != "Student ID" {
		t.Errorf("expected default id column 'Student ID', got %q", cfg.Survey.IDColumn)
	}

	if len(cfg.Survey.AnswerColumns) != 3 {
		t.Errorf("expected 3 default answer columns, got %d", len(cfg.Survey.AnswerColumns))
	}

	if cfg.Output.Path != "output/survey_responses_numbered.csv" {
		t.Errorf("expected default output path, got %q", cfg.Output.Path)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := Defaults()
		if err != nil {
			t.Fatalf("Defaults() failed: %v", err)
		}
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "max number of 1 is valid",
			mutate:  func(c *Config) { c.Roster.MaxNumber = 1 },
			wantErr: false,
		},
		{
			name:    "zero max number is invalid",
			mutate:  func(c *Config) { c.Roster.MaxNumber = 0 },
			wantErr: true,
		},
		{
			name:    "negative max number is invalid",
			mutate:  func(c *Config) { c.Roster.MaxNumber = -5 },
			wantErr: true,
		},
		{
			name:    "empty roster path is invalid",
			mutate:  func(c *Config) { c.Roster.Path = "" },
			wantErr: true,
		},
		{
			name:    "empty id column is invalid",
			mutate:  func(c *Config) { c.Survey.IDColumn = "" },
			wantErr: true,
		},
		{
			name:    "empty number column is invalid",
			mutate:  func(c *Config) { c.Survey.NumberColumn = "" },
			wantErr: true,
		},
		{
			name:    "no answer columns is invalid",
			mutate:  func(c *Config) { c.Survey.AnswerColumns = nil },
			wantErr: true,
		},
		{
			name:    "duplicate answer columns are invalid",
			mutate:  func(c *Config) { c.Survey.AnswerColumns = []string{"E1", "E1"} },
			wantErr: true,
		},
		{
			name:    "empty answer column header is invalid",
			mutate:  func(c *Config) { c.Survey.AnswerColumns = []string{"E1", ""} },
			wantErr: true,
		},
		{
			name:    "empty output path is invalid",
			mutate:  func(c *Config) { c.Output.Path = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveAndLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "surveyid.toml")

	cfg, err := Defaults()
	if err != nil {
		t.Fatalf("Defaults() failed: %v", err)
	}
	cfg.Roster.MaxNumber = 24
	cfg.Survey.IDColumn = "Learner ID"

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() failed: %v", err)
	}

	if loaded.Roster.MaxNumber != 24 {
		t.Errorf("expected max number 24 after round trip, got %d", loaded.Roster.MaxNumber)
	}
	if loaded.Survey.IDColumn != "Learner ID" {
		t.Errorf("expected id column 'Learner ID' after round trip, got %q", loaded.Survey.IDColumn)
	}
	// Defaults survive for untouched sections
	if loaded.Output.Path != "output/survey_responses_numbered.csv" {
		t.Errorf("expected default output path after round trip, got %q", loaded.Output.Path)
	}
}

func TestSave_RotatesBackups(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "surveyid.toml")

	cfg, err := Defaults()
	if err != nil {
		t.Fatalf("Defaults() failed: %v", err)
	}

	// First save: no backup yet
	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if _, err := os.Stat(path + ".back1"); !os.IsNotExist(err) {
		t.Error("expected no .back1 after first save")
	}

	// Second save: previous file rotated to .back1
	cfg.Roster.MaxNumber = 20
	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if _, err := os.Stat(path + ".back1"); err != nil {
		t.Errorf("expected .back1 after second save: %v", err)
	}
}

func TestSave_RejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "surveyid.toml")

	cfg, err := Defaults()
	if err != nil {
		t.Fatalf("Defaults() failed: %v", err)
	}
	cfg.Roster.MaxNumber = 0

	if err := Save(cfg, path); err == nil {
		t.Error("expected Save() to reject invalid config")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected no file written for invalid config")
	}
}
