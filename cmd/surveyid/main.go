package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"surveyid/cmd/surveyid/commands"
	"surveyid/logger"
)

var rootCmd = &cobra.Command{
	Use:   "surveyid",
	Short: "surveyid - Survey respondent numbering toolchain",
	Long: `surveyid - Anonymized respondent numbering for survey tables.

surveyid binds each student ID in a survey response table to a small
respondent number through a hand-edited roster, validates the roster,
produces the numbered table, and answers point lookups of free-text
answers by respondent number.

Workflow:
  surveyid template       # Seed a draft roster from the survey table
  (edit the roster)       # Adjust the assigned numbers by hand
  surveyid assign         # Validate the roster, write the numbered table
  surveyid responses 7    # Read respondent 7's answers

Examples:
  surveyid template --force       # Regenerate the draft roster
  surveyid assign -v              # Verbose join with progress detail
  surveyid responses 7 --json     # Structured answer output
  surveyid config show            # Show effective configuration`,

	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize global logger before any command runs
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		if err := logger.Initialize(verbosity, jsonOutput); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json", false, "Emit structured JSON where supported")

	// Add commands
	rootCmd.AddCommand(commands.TemplateCmd)
	rootCmd.AddCommand(commands.AssignCmd)
	rootCmd.AddCommand(commands.ResponsesCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
