package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/thoreinstein/mailcheck/internal/email"
	mailerrors "github.com/thoreinstein/mailcheck/internal/errors"
)

func TestMain(m *testing.M) {
	// Keep assertions on plain text regardless of the terminal running the tests.
	color.NoColor = true
	os.Exit(m.Run())
}

func TestRunCheck(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantErr     bool
		wantContain []string
	}{
		{
			name:    "valid address",
			input:   "user@example.com",
			wantErr: false,
			wantContain: []string{
				"✓ VALID: user@example.com",
				"Reason: Valid email address",
			},
		},
		{
			name:    "plus addressing",
			input:   "user+tag@example.com",
			wantErr: false,
			wantContain: []string{
				"✓ VALID: user+tag@example.com",
			},
		},
		{
			name:    "whitespace is trimmed before checking",
			input:   "  user@example.com  ",
			wantErr: false,
			wantContain: []string{
				"✓ VALID: user@example.com",
			},
		},
		{
			name:    "invalid address",
			input:   "user@@example.com",
			wantErr: true,
			wantContain: []string{
				"✗ INVALID: user@@example.com",
				"Reason: " + email.ReasonAtCount,
			},
		},
		{
			name:    "empty address",
			input:   "",
			wantErr: true,
			wantContain: []string{
				"✗ INVALID:",
				"Reason: " + email.ReasonEmpty,
			},
		},
		{
			name:    "leading dot in local part",
			input:   ".user@example.com",
			wantErr: true,
			wantContain: []string{
				"Reason: " + email.ReasonLocalFormat,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := runCheck(tt.input, &buf)

			if (err != nil) != tt.wantErr {
				t.Fatalf("runCheck() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, mailerrors.ErrInvalidAddress) {
				t.Errorf("error should wrap ErrInvalidAddress, got %v", err)
			}

			output := buf.String()
			for _, want := range tt.wantContain {
				if !strings.Contains(output, want) {
					t.Errorf("output missing %q:\n%s", want, output)
				}
			}
		})
	}
}

func TestRunCheck_ExitCode(t *testing.T) {
	var buf bytes.Buffer
	err := runCheck("bad@@example.com", &buf)

	var exitErr *mailerrors.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected ExitError, got %T", err)
	}
	if exitErr.Code != mailerrors.ExitUser {
		t.Errorf("exit code = %d, want %d", exitErr.Code, mailerrors.ExitUser)
	}
}

func TestRunCheck_JSON(t *testing.T) {
	checkJSON = true
	defer func() { checkJSON = false }()

	t.Run("valid", func(t *testing.T) {
		var buf bytes.Buffer
		if err := runCheck("  user@example.com  ", &buf); err != nil {
			t.Fatalf("runCheck() error = %v", err)
		}

		var result checkResult
		if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
			t.Fatalf("invalid JSON output: %v\n%s", err, buf.String())
		}
		if result.Input != "user@example.com" {
			t.Errorf("input = %q, want trimmed address", result.Input)
		}
		if !result.Valid {
			t.Error("valid = false, want true")
		}
		if result.Reason != email.ReasonValid {
			t.Errorf("reason = %q, want %q", result.Reason, email.ReasonValid)
		}
	})

	t.Run("invalid still emits JSON before failing", func(t *testing.T) {
		var buf bytes.Buffer
		err := runCheck("user@example", &buf)
		if !errors.Is(err, mailerrors.ErrInvalidAddress) {
			t.Fatalf("error = %v, want ErrInvalidAddress", err)
		}

		var result checkResult
		if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
			t.Fatalf("invalid JSON output: %v\n%s", err, buf.String())
		}
		if result.Valid {
			t.Error("valid = true, want false")
		}
		if result.Reason != email.ReasonDomainFormat {
			t.Errorf("reason = %q, want %q", result.Reason, email.ReasonDomainFormat)
		}
	})
}
