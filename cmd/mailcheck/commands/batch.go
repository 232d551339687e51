package commands

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/mailcheck/internal/email"
	mailerrors "github.com/thoreinstein/mailcheck/internal/errors"
	"github.com/thoreinstein/mailcheck/internal/report"
)

var batchJSON bool

// maxLineLength bounds a single input line; anything longer could not be
// a valid address anyway.
const maxLineLength = 64 * 1024

func init() {
	batchCmd.Flags().BoolVar(&batchJSON, "json", false,
		"output the report as JSON")
	rootCmd.AddCommand(batchCmd)
}

var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Validate a list of email addresses",
	Long: `Validate a newline-separated list of email addresses from a file,
or from stdin when the file argument is "-" or omitted.

Blank lines and lines starting with # are skipped. Every address is
checked and reported; the command exits non-zero if any address is
invalid.

Exit codes:
  0 - Every address is valid
  1 - One or more invalid addresses, or bad input

Examples:
  # Check a file of addresses
  mailcheck batch addresses.txt

  # Check stdin
  cat addresses.txt | mailcheck batch -

  # JSON report for CI/CD
  mailcheck batch addresses.txt --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "-"
		if len(args) == 1 {
			path = args[0]
		}
		return runBatch(path, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func runBatch(path string, stdin io.Reader, w io.Writer) error {
	in := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				return mailerrors.NewUserError(mailerrors.ErrNotFound, "Check the file path: "+path)
			}
			return mailerrors.NewSystemError(err, "Could not read "+path)
		}
		defer f.Close()
		in = f
	}

	rep := &report.Report{}
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		verdict := email.Validate(line)
		rep.Add(line, verdict.Valid, verdict.Reason)
	}
	if err := scanner.Err(); err != nil {
		return mailerrors.NewSystemError(err, "Could not read input")
	}

	slog.Debug("batch finished",
		"total", rep.Total(), "valid", rep.ValidCount(), "invalid", rep.InvalidCount())

	reporter := report.NewReporter(w, report.Format(outputFormat(batchJSON)))
	if err := reporter.Report(rep); err != nil {
		return err
	}

	if !rep.AllValid() {
		return errInvalidAddress
	}
	return nil
}
