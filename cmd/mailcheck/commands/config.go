package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/mailcheck/internal/config"
	"github.com/thoreinstein/mailcheck/internal/editor"
	mailerrors "github.com/thoreinstein/mailcheck/internal/errors"
	"github.com/thoreinstein/mailcheck/internal/paths"
	"github.com/thoreinstein/mailcheck/pkg/fileutil"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage mailcheck configuration",
	Long: `Manage mailcheck configuration stored in ~/.config/mailcheck/config.yaml.

Without a subcommand, lists all configuration values.`,
	Example: `  # List all configuration
  mailcheck config

  # Get a specific value
  mailcheck config get output_format

  # Set a value
  mailcheck config set color never

See Also: mailcheck check`,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long:  `Get a single configuration value by key.`,
	Example: `  # Get the output format
  mailcheck config get output_format

  # Get the color mode
  mailcheck config get color

See Also: mailcheck config set, mailcheck config list`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and write it to the config file.

Valid keys:
  version        config schema version (integer >= 1)
  output_format  text or json
  color          auto, always, or never`,
	Example: `  # Default to JSON output
  mailcheck config set output_format json

  # Disable colors
  mailcheck config set color never

See Also: mailcheck config get, mailcheck config list`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration",
	Long:  `List all configuration values in YAML format.`,
	Example: `  # List all configuration
  mailcheck config list

See Also: mailcheck config get, mailcheck config set`,
	RunE: runConfigList,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open configuration in $EDITOR",
	Long: `Open the configuration file in your default editor.

Uses the EDITOR environment variable, falling back to VISUAL, nano, then vi.
If no configuration file exists yet, one is created with defaults first.`,
	Example: `  # Open config in default editor
  mailcheck config edit

  # Open with specific editor
  EDITOR=nano mailcheck config edit

See Also: mailcheck config list`,
	RunE: runConfigEdit,
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	if !viper.IsSet(key) {
		fmt.Fprintln(cmd.OutOrStdout(), "not set")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), viper.GetString(key))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	switch key {
	case "version":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return mailerrors.Newf("version must be an integer >= 1 (got %q)", value)
		}
		viper.Set(key, n)
	case "output_format", "color":
		viper.Set(key, value)
	default:
		return mailerrors.Newf("unknown config key: %s (valid: version, output_format, color)", key)
	}

	// Re-validate the full config before persisting.
	var updated config.Config
	if err := viper.Unmarshal(&updated); err != nil {
		return mailerrors.Wrap(err, "unmarshaling config")
	}
	if errs := config.Validate(&updated); len(errs) > 0 {
		return mailerrors.Wrap(errs[0], "invalid value")
	}

	if err := writeConfig(&updated); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	settings := map[string]any{
		"version":       viper.GetInt("version"),
		"output_format": viper.GetString("output_format"),
		"color":         viper.GetString("color"),
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return mailerrors.Wrap(err, "marshaling config")
	}

	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigEdit(cmd *cobra.Command, _ []string) error {
	configPath := paths.ConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := writeConfig(config.Default()); err != nil {
			return err
		}
	}

	return editor.Open(configPath)
}

// writeConfig persists the configuration to the config file atomically.
func writeConfig(c *config.Config) error {
	dir := paths.AppConfigDir()
	if err := paths.EnsureDir(dir, 0); err != nil {
		return mailerrors.Wrap(err, "creating config directory")
	}
	return fileutil.AtomicWriteYAML(paths.ConfigFilePath(), c, 0)
}
