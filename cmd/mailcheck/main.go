// Package main is the entry point for the mailcheck CLI.
package main

import (
	"errors"
	"os"

	"github.com/thoreinstein/mailcheck/cmd/mailcheck/commands"
	mailerrors "github.com/thoreinstein/mailcheck/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		var exitErr *mailerrors.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(mailerrors.ExitUser)
	}
}
