package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/mailcheck/internal/config"
	"github.com/thoreinstein/mailcheck/internal/email"
	mailerrors "github.com/thoreinstein/mailcheck/internal/errors"
)

var checkJSON bool

// errInvalidAddress signals a validation failure after the verdict has
// already been printed; main maps it to a non-zero exit code.
var errInvalidAddress = mailerrors.NewExitError(mailerrors.ErrInvalidAddress, mailerrors.ExitUser)

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false,
		"output the verdict as JSON")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check <address>",
	Short: "Validate a single email address",
	Long: `Validate the syntax of a single email address.

The address is trimmed of surrounding whitespace and checked against
length limits, the local-part character rules, and the domain label
rules. The first failing check determines the reported reason.

Exit codes:
  0 - Valid address
  1 - Invalid address or bad invocation

Examples:
  # Check an address
  mailcheck check user@example.com

  # JSON output for CI/CD
  mailcheck check user@example.com --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(args[0], cmd.OutOrStdout())
	},
}

// checkResult represents the JSON output structure.
type checkResult struct {
	Input  string `json:"input"`
	Valid  bool   `json:"valid"`
	Reason string `json:"reason"`
}

func runCheck(input string, w io.Writer) error {
	verdict := email.Validate(input)
	addr := strings.TrimSpace(input)
	slog.Debug("checked address", "input", addr, "valid", verdict.Valid)

	if outputFormat(checkJSON) == config.OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		result := checkResult{Input: addr, Valid: verdict.Valid, Reason: verdict.Reason}
		if err := enc.Encode(result); err != nil {
			return mailerrors.Wrap(err, "encoding JSON")
		}
		if !verdict.Valid {
			return errInvalidAddress
		}
		return nil
	}

	if verdict.Valid {
		fmt.Fprintf(w, "%s %s\n", color.GreenString("✓ VALID:"), addr)
	} else {
		fmt.Fprintf(w, "%s %s\n", color.RedString("✗ INVALID:"), addr)
	}
	fmt.Fprintf(w, "Reason: %s\n", verdict.Reason)

	if !verdict.Valid {
		return errInvalidAddress
	}
	return nil
}
