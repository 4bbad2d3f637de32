// Package sym defines canonical symbols for surveyid commands and system markers.
// These symbols are stable across CLI output and documentation.
package sym

// Glyph string constants, the visual expression of each command.
const (
	Template  = "⊞" // template — draft roster generation
	Assign    = "⋈" // assign — join roster onto the survey table
	Responses = "❞" // responses — free-text answer lookup
	Config    = "≡" // config — configuration and system settings
	Roster    = "≔" // roster — student ID to respondent number bindings
)

// SymbolToCommand maps each glyph to its CLI command name.
var SymbolToCommand = map[string]string{
	Template:  "template",
	Assign:    "assign",
	Responses: "responses",
	Config:    "config",
}

// CommandToSymbol is the inverse of SymbolToCommand.
var CommandToSymbol = map[string]string{
	"template":  Template,
	"assign":    Assign,
	"responses": Responses,
	"config":    Config,
}

// CommandDescriptions holds the one-line description shown in help output.
var CommandDescriptions = map[string]string{
	"template":  "Generate a draft roster from the survey table",
	"assign":    "Validate the roster and produce the numbered table",
	"responses": "Show a respondent's free-text answers",
	"config":    "Manage surveyid configuration",
}
