package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/mailcheck/internal/config"
	mailerrors "github.com/thoreinstein/mailcheck/internal/errors"
	"github.com/thoreinstein/mailcheck/internal/suite"
)

var suiteJSON bool

var errSuiteFailed = mailerrors.NewExitError(mailerrors.ErrSuiteFailed, mailerrors.ExitUser)

func init() {
	suiteCmd.Flags().BoolVar(&suiteJSON, "json", false,
		"output results as JSON")
	rootCmd.AddCommand(suiteCmd)
}

var suiteCmd = &cobra.Command{
	Use:   "suite <file.toml>",
	Short: "Run a TOML expectations file against the validator",
	Long: `Run a suite of validation expectations from a TOML file.

Each [[case]] entry declares an input address and the verdict it should
produce, optionally pinning the exact diagnostic reason:

  [[case]]
  name  = "simple address"
  input = "user@example.com"
  valid = true

  [[case]]
  input  = "user@@example.com"
  valid  = false
  reason = "Email must contain exactly one @ symbol"

Exit codes:
  0 - Every case passed
  1 - One or more failing cases, or a bad suite file

Examples:
  # Run a suite
  mailcheck suite cases.toml

  # JSON results for CI/CD
  mailcheck suite cases.toml --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSuite(args[0], cmd.OutOrStdout())
	},
}

// suiteCaseResult represents one case in the JSON output.
type suiteCaseResult struct {
	Name   string `json:"name,omitempty"`
	Input  string `json:"input"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
	Valid  bool   `json:"valid"`
	Reason string `json:"reason"`
}

// suiteResult represents the JSON output structure.
type suiteResult struct {
	Suite  string            `json:"suite,omitempty"`
	Passed bool              `json:"passed"`
	Total  int               `json:"total"`
	Pass   int               `json:"pass"`
	Fail   int               `json:"fail"`
	Cases  []suiteCaseResult `json:"cases"`
}

func runSuite(path string, w io.Writer) error {
	s, err := suite.Load(path)
	if err != nil {
		return mailerrors.NewUserError(err, "Check the suite file: "+path)
	}

	result := suite.Run(s)
	slog.Debug("suite finished",
		"suite", s.Name, "total", result.Total(), "failed", result.Failed())

	if outputFormat(suiteJSON) == config.OutputJSON {
		return outputSuiteJSON(w, result)
	}
	return outputSuiteText(w, result)
}

func outputSuiteJSON(w io.Writer, result *suite.Result) error {
	out := suiteResult{
		Suite:  result.Suite.Name,
		Passed: result.AllPassed(),
		Total:  result.Total(),
		Pass:   result.Passed(),
		Fail:   result.Failed(),
	}
	for _, cr := range result.Results {
		out.Cases = append(out.Cases, suiteCaseResult{
			Name:   cr.Case.Name,
			Input:  cr.Case.Input,
			Passed: cr.Passed,
			Detail: cr.Detail,
			Valid:  cr.Verdict.Valid,
			Reason: cr.Verdict.Reason,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return mailerrors.Wrap(err, "encoding JSON")
	}

	if !result.AllPassed() {
		return errSuiteFailed
	}
	return nil
}

func outputSuiteText(w io.Writer, result *suite.Result) error {
	if name := result.Suite.Name; name != "" {
		fmt.Fprintf(w, "Suite: %s\n\n", name)
	}

	for _, cr := range result.Results {
		if cr.Passed {
			fmt.Fprintf(w, "%s %s\n", color.GreenString("✓ PASS"), cr.Case.Label())
		} else {
			fmt.Fprintf(w, "%s %s\n", color.RedString("✗ FAIL"), cr.Case.Label())
			fmt.Fprintf(w, "       %s\n", cr.Detail)
		}
	}

	fmt.Fprintln(w)
	summary := fmt.Sprintf("Ran %d case(s): %d passed, %d failed",
		result.Total(), result.Passed(), result.Failed())
	if result.AllPassed() {
		fmt.Fprintln(w, color.GreenString("%s", summary))
	} else {
		fmt.Fprintln(w, color.RedString("%s", summary))
	}

	if !result.AllPassed() {
		return errSuiteFailed
	}
	return nil
}
