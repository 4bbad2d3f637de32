package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"surveyid/errors"
	"surveyid/logger"
	"surveyid/survey"
	"surveyid/sym"
)

// ResponsesCmd represents the responses command
var ResponsesCmd = &cobra.Command{
	Use:   "responses NUMBER",
	Short: sym.Responses + " Show a respondent's free-text answers",
	Long: sym.Responses + ` responses — Show a respondent's free-text answers

Looks up a respondent number in the numbered table produced by
'surveyid assign' and prints the student ID, name, and each configured
free-text answer. A blank or whitespace-only cell is shown as
"(no response)".

A miss lists every respondent number that is present in the table.

Examples:
  surveyid responses 7
  surveyid responses 7 --json`,

	Args: cobra.ExactArgs(1),
	RunE: runResponsesCommand,
}

func runResponsesCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	number, convErr := strconv.Atoi(args[0])
	if convErr != nil {
		return errors.Newf("respondent number must be an integer, got %q", args[0])
	}
	if number < 1 || number > cfg.Roster.MaxNumber {
		err := errors.Newf("respondent number must be within 1..%d, got %d", cfg.Roster.MaxNumber, number)
		return errors.WithHint(err, "the bound is roster.max_number in surveyid.toml")
	}

	logger.Logger.Infow("Reading numbered table", "path", cfg.Output.Path)
	table, err := survey.ReadTable(cfg.Output.Path)
	if err != nil {
		return errors.WithHint(err, "run 'surveyid assign' first to produce the numbered table")
	}

	view, err := survey.Lookup(table, number, surveyColumns(cfg))
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		data, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal responses")
		}
		fmt.Println(string(data))
		return nil
	}

	displayView(view)
	return nil
}

func displayView(view *survey.View) {
	pterm.DefaultSection.Printf("Respondent %d", view.Number)
	fmt.Printf("  Name:       %s\n", view.Name)
	fmt.Printf("  Student ID: %s\n", view.ID)

	for _, answer := range view.Answers {
		pterm.Println()
		pterm.DefaultSection.WithLevel(2).Println(answer.Column)
		if answer.NoResponse {
			pterm.Println(pterm.Gray("(no response)"))
			continue
		}
		pterm.Println(answer.Text)
	}
}
