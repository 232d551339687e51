// Package commands implements the CLI commands for mailcheck.
package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/mailcheck/internal/config"
	mailerrors "github.com/thoreinstein/mailcheck/internal/errors"
	"github.com/thoreinstein/mailcheck/internal/logging"
)

// version is set at build time via ldflags.
// Default to a development version for local builds.
const version = "0.1.0"

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// colorMode holds the value of the --color flag. Empty means "use config".
var colorMode string

// cfg holds the loaded configuration; defaults apply when no file exists.
var cfg *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	// Add persistent flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "",
		"colorize output: auto, always, never (default: config value)")

	// Add version flag
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("mailcheck version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	// Capture load errors for later reporting
	cfg, configLoadErr = config.Load("")
	if cfg == nil {
		cfg = config.Default()
	}
}

var rootCmd = &cobra.Command{
	Use:   "mailcheck",
	Short: "Validate email address syntax",
	Long: `mailcheck validates the syntax of email addresses and reports a
verdict plus a diagnostic reason for every address it checks.

Validation is purely syntactic: the local part and domain part are
checked against length limits and character rules, but no DNS lookups
or mailbox checks are performed. Quoted local parts, IP-literal
domains, and internationalized domain names are not supported.`,
	Example: `  # Check a single address
  mailcheck check user@example.com

  # Check a newline-separated list from a file or stdin
  mailcheck batch addresses.txt
  cat addresses.txt | mailcheck batch -

  # Run a TOML expectations file
  mailcheck suite cases.toml

  # Machine-readable output for CI
  mailcheck check user@example.com --json

  See Also: mailcheck config`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logging first
		if err := setupLogging(cmd); err != nil {
			return err
		}
		if err := checkConfig(cmd); err != nil {
			return err
		}
		return applyColorMode()
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return mailerrors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("MAILCHECK_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return mailerrors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfig surfaces config load failures before any command runs.
func checkConfig(cmd *cobra.Command) error {
	// Skip for help and version commands
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}
	if configLoadErr != nil {
		return mailerrors.NewConfigError(configLoadErr)
	}
	return nil
}

// currentConfig returns the loaded configuration, falling back to
// defaults when a command function is exercised without the cobra
// lifecycle (tests call runX directly).
func currentConfig() *config.Config {
	if cfg == nil {
		return config.Default()
	}
	return cfg
}

// applyColorMode resolves the --color flag against the config value and
// configures the color package accordingly.
func applyColorMode() error {
	mode := colorMode
	if mode == "" {
		mode = currentConfig().Color
	}

	switch mode {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	case "", config.ColorAuto:
		// Leave the color package's own TTY detection in place.
	default:
		err := mailerrors.Newf("invalid color mode: %s (valid: auto, always, never)", mode)
		return mailerrors.NewUserError(err, "Use --color auto, always, or never")
	}

	return nil
}

// outputFormat resolves the effective output format for a command,
// giving the per-command --json flag precedence over the config value.
func outputFormat(jsonFlag bool) string {
	if jsonFlag {
		return config.OutputJSON
	}
	if format := currentConfig().OutputFormat; format != "" {
		return format
	}
	return config.OutputText
}

// Execute runs the root command.
// Errors are printed here (cobra's own printing is silenced), except for
// validation verdicts, which the commands have already written as output.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	if !errors.Is(err, mailerrors.ErrInvalidAddress) && !errors.Is(err, mailerrors.ErrSuiteFailed) {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		var exitErr *mailerrors.ExitError
		if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
			fmt.Fprintf(rootCmd.ErrOrStderr(), "Suggestion: %s\n", exitErr.Suggestion)
		}
	}

	return err
}
