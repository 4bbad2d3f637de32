package commands

import (
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"surveyid/config"
	"surveyid/errors"
	"surveyid/logger"
	"surveyid/mapping"
	"surveyid/survey"
	"surveyid/sym"
)

var templateForce bool

// TemplateCmd represents the template command
var TemplateCmd = &cobra.Command{
	Use:   "template",
	Short: sym.Template + " Generate a draft roster from the survey table",
	Long: sym.Template + ` template — Generate a draft roster from the survey table

Extracts every distinct student ID (with its name as reference metadata)
from the survey table and writes a draft roster with sequential respondent
numbers assigned in sorted ID order.

The draft is a starting point only: edit the numbers by hand, then run
'surveyid assign' which validates the result. An existing roster is never
overwritten without --force.

Examples:
  surveyid template           # Write the draft roster
  surveyid template --force   # Replace an existing roster`,

	RunE: runTemplateCommand,
}

func init() {
	TemplateCmd.Flags().BoolVar(&templateForce, "force", false, "Overwrite an existing roster file")
}

func runTemplateCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if _, statErr := os.Stat(cfg.Roster.Path); statErr == nil && !templateForce {
		err := errors.Newf("roster %s already exists", cfg.Roster.Path)
		return errors.WithHint(err, "pass --force to overwrite it, discarding hand edits")
	}

	logger.Logger.Infow("Reading survey table", "path", cfg.Survey.Path)
	table, err := survey.ReadTable(cfg.Survey.Path)
	if err != nil {
		return err
	}

	idIdx, err := table.Column(cfg.Survey.IDColumn)
	if err != nil {
		return err
	}
	nameIdx, err := table.Column(cfg.Survey.NameColumn)
	if err != nil {
		return err
	}

	seeds := make([]mapping.Seed, 0, len(table.Rows))
	for _, row := range table.Rows {
		seeds = append(seeds, mapping.Seed{ID: row[idIdx], Name: row[nameIdx]})
	}

	draft, err := mapping.GenerateTemplate(seeds, cfg.Roster.MaxNumber)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(cfg.Roster.Path); dir != "." {
		if err := os.MkdirAll(dir, config.DefaultDirPermissions); err != nil {
			return errors.Wrapf(err, "failed to create roster directory %s", dir)
		}
	}
	if err := os.WriteFile(cfg.Roster.Path, draft, config.DefaultFilePermissions); err != nil {
		return errors.Wrapf(err, "failed to write roster template %s", cfg.Roster.Path)
	}

	pterm.Success.Printf("Draft roster written: %s\n", cfg.Roster.Path)
	pterm.Info.Println("Next steps:")
	pterm.Printf("  1. Edit %s to adjust the assigned numbers\n", cfg.Roster.Path)
	pterm.Printf("  2. Run 'surveyid assign' to produce the numbered table\n")

	return nil
}
