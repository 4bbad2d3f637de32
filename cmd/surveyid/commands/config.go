package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"surveyid/config"
	"surveyid/sym"
)

// ConfigCmd represents the config command
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: sym.Config + " Manage surveyid configuration",
	Long: sym.Config + ` config — Manage surveyid configuration

Display and manage surveyid configuration settings.

Configuration sources (in order of precedence):
1. Environment variables (SURVEYID_* prefix)
2. Project config (./surveyid.toml, searched upward)
3. User config (~/.surveyid/surveyid.toml)
4. System config (/etc/surveyid/surveyid.toml)
5. Default values

Examples:
  surveyid config show                 # Show current configuration
  surveyid config show --format json   # Show configuration in JSON format
  surveyid config get roster.path      # Get specific config value
  surveyid config validate             # Validate current configuration
  surveyid config init                 # Write the default project config`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  "Display the current surveyid configuration from all sources",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a specific configuration value",
	Long:  "Get a specific configuration value using dot notation (e.g., roster.path, roster.max_number)",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate current configuration",
	Long:  "Validate that the current surveyid configuration is valid",
	RunE:  runConfigValidate,
}

var configWhereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where configuration is loaded from",
	Long: `Show the configuration cascade and which files were checked.

Lists all configuration sources in order of precedence, showing
which files exist and which are missing.`,
	RunE: runConfigWhere,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Long:  "Write the default configuration to ./surveyid.toml, backing up any existing file",
	RunE:  runConfigInit,
}

var configFormat string

func init() {
	configShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")

	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configGetCmd)
	ConfigCmd.AddCommand(configValidateCmd)
	ConfigCmd.AddCommand(configWhereCmd)
	ConfigCmd.AddCommand(configInitCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	switch configFormat {
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal config to JSON: %w", err)
		}
		fmt.Println(string(data))

	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config to YAML: %w", err)
		}
		fmt.Printf("# surveyid configuration\n%s", string(data))

	case "toml":
		data, err := toml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config to TOML: %w", err)
		}
		fmt.Printf("# surveyid configuration\n%s", string(data))

	default:
		return fmt.Errorf("unsupported format: %s (supported: toml, json, yaml)", configFormat)
	}

	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	v := config.GetViper()
	key := args[0]

	if !v.IsSet(key) {
		return fmt.Errorf("configuration key not found: %s", key)
	}

	fmt.Println(v.Get(key))
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration is invalid: %w", err)
	}

	fmt.Println("Configuration is valid")
	return nil
}

func runConfigWhere(cmd *cobra.Command, args []string) error {
	fmt.Println("Configuration cascade (lowest precedence first):")
	for _, path := range config.SourcePaths() {
		status := "missing"
		if _, err := os.Stat(path); err == nil {
			status = "found"
		}
		fmt.Printf("  [%s] %s\n", status, path)
	}
	fmt.Println("Environment variables (SURVEYID_*) override all files")
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Defaults()
	if err != nil {
		return fmt.Errorf("failed to build default config: %w", err)
	}

	if err := config.Save(cfg, "surveyid.toml"); err != nil {
		return err
	}

	fmt.Println("Default configuration written to surveyid.toml")
	return nil
}
