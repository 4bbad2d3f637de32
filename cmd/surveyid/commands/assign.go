package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"surveyid/errors"
	"surveyid/logger"
	"surveyid/mapping"
	"surveyid/survey"
	"surveyid/sym"
)

var (
	assignSurveyPath string
	assignRosterPath string
	assignOutputPath string
)

// AssignCmd represents the assign command
var AssignCmd = &cobra.Command{
	Use:   "assign",
	Short: sym.Assign + " Validate the roster and produce the numbered table",
	Long: sym.Assign + ` assign — Validate the roster and produce the numbered table

Reads the hand-edited roster, validates it in full (every defective entry
is reported, not just the first), joins it onto the survey table, and
writes the numbered table sorted ascending by respondent number with the
number as the first column.

Nothing is written when any roster entry is invalid, any respondent number
is duplicated, or any survey row has no roster entry. Unused respondent
numbers within the configured range only warn.

Examples:
  surveyid assign                         # Paths from configuration
  surveyid assign --roster other.yaml     # Override the roster location
  surveyid assign -v                      # Progress detail`,

	RunE: runAssignCommand,
}

func init() {
	AssignCmd.Flags().StringVar(&assignSurveyPath, "survey", "", "Survey CSV path (overrides config)")
	AssignCmd.Flags().StringVar(&assignRosterPath, "roster", "", "Roster YAML path (overrides config)")
	AssignCmd.Flags().StringVar(&assignOutputPath, "output", "", "Numbered CSV path (overrides config)")
}

func runAssignCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	surveyPath := cfg.Survey.Path
	if assignSurveyPath != "" {
		surveyPath = assignSurveyPath
	}
	rosterPath := cfg.Roster.Path
	if assignRosterPath != "" {
		rosterPath = assignRosterPath
	}
	outputPath := cfg.Output.Path
	if assignOutputPath != "" {
		outputPath = assignOutputPath
	}

	logger.Logger.Infow("Reading roster", "path", rosterPath, "max_number", cfg.Roster.MaxNumber)
	raw, err := mapping.Load(rosterPath)
	if err != nil {
		return err
	}

	roster, missing, err := mapping.Validate(raw, cfg.Roster.MaxNumber)
	if err != nil {
		return errors.Wrap(err, "roster validation failed")
	}
	if len(missing) > 0 {
		// Coverage gaps are advisory: warn and continue
		pterm.Warning.Printf("Unused respondent numbers: %v\n", missing)
		pterm.Warning.Printf("Assigning every number in 1..%d is recommended\n", cfg.Roster.MaxNumber)
	}
	pterm.Info.Printf("Loaded %d roster entries\n", len(roster.Numbers))

	logger.Logger.Infow("Reading survey table", "path", surveyPath)
	table, err := survey.ReadTable(surveyPath)
	if err != nil {
		return err
	}

	spinner, _ := pterm.DefaultSpinner.Start(fmt.Sprintf("Joining %d survey rows...", len(table.Rows)))
	joined, err := survey.Join(table, roster, surveyColumns(cfg))
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return errors.Wrap(err, "failed to join roster onto survey table")
	}

	if err := joined.WriteFile(outputPath); err != nil {
		return err
	}

	pterm.Success.Printf("Numbered table written: %s\n", outputPath)
	if len(joined.Rows) > 0 {
		first := joined.Rows[0][0]
		last := joined.Rows[len(joined.Rows)-1][0]
		fmt.Printf("  Rows:    %d\n", len(joined.Rows))
		fmt.Printf("  Numbers: %s..%s\n", first, last)
		fmt.Printf("  Columns: %d\n", len(joined.Headers))
	}

	return nil
}
