package suite

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/thoreinstein/mailcheck/internal/email"
	"github.com/thoreinstein/mailcheck/internal/errors"
)

// ErrNoCases indicates a suite file that declares no cases.
var ErrNoCases = errors.New("suite contains no cases")

// Case is a single expectation: an input address and the verdict it
// should produce. Reason is optional; when set, the diagnostic message
// must match exactly.
type Case struct {
	Name   string `toml:"name"`
	Input  string `toml:"input"`
	Valid  bool   `toml:"valid"`
	Reason string `toml:"reason"`
}

// Label returns the case name, falling back to a quoted input string.
func (c Case) Label() string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("%q", c.Input)
}

// Suite is a named collection of cases.
type Suite struct {
	Name  string `toml:"name"`
	Cases []Case `toml:"case"`
}

// Parse decodes a suite from TOML data.
func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "decoding suite file")
	}
	if len(s.Cases) == 0 {
		return nil, ErrNoCases
	}
	return &s, nil
}

// Load reads and parses a suite file.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading suite file")
	}
	return Parse(data)
}

// CaseResult is the outcome of running a single case.
type CaseResult struct {
	Case    Case
	Verdict email.Verdict
	Passed  bool
	// Detail explains the failure when Passed is false.
	Detail string
}

// Result aggregates the outcomes of a suite run.
type Result struct {
	Suite   *Suite
	Results []CaseResult
}

// Total returns the number of cases run.
func (r *Result) Total() int {
	return len(r.Results)
}

// Passed returns the number of cases that passed.
func (r *Result) Passed() int {
	n := 0
	for _, cr := range r.Results {
		if cr.Passed {
			n++
		}
	}
	return n
}

// Failed returns the number of cases that failed.
func (r *Result) Failed() int {
	return r.Total() - r.Passed()
}

// AllPassed returns true if every case passed.
func (r *Result) AllPassed() bool {
	return r.Failed() == 0
}

// Run evaluates every case in the suite against the validator.
func Run(s *Suite) *Result {
	result := &Result{Suite: s}

	for _, c := range s.Cases {
		v := email.Validate(c.Input)
		cr := CaseResult{Case: c, Verdict: v, Passed: true}

		if v.Valid != c.Valid {
			cr.Passed = false
			cr.Detail = fmt.Sprintf("expected valid=%v, got valid=%v (%s)", c.Valid, v.Valid, v.Reason)
		} else if c.Reason != "" && v.Reason != c.Reason {
			cr.Passed = false
			cr.Detail = fmt.Sprintf("expected reason %q, got %q", c.Reason, v.Reason)
		}

		result.Results = append(result.Results, cr)
	}

	return result
}
