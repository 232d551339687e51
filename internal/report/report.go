package report

// Entry records the verdict for a single address.
type Entry struct {
	// Input is the address as it was given, after trimming.
	Input string `json:"input"`
	// Valid reports whether the address passed validation.
	Valid bool `json:"valid"`
	// Reason is the diagnostic message for the verdict.
	Reason string `json:"reason"`
}

// Report aggregates the verdicts of a batch run.
type Report struct {
	Entries []Entry `json:"results"`
}

// Add appends a verdict for the given input.
func (r *Report) Add(input string, valid bool, reason string) {
	r.Entries = append(r.Entries, Entry{
		Input:  input,
		Valid:  valid,
		Reason: reason,
	})
}

// Total returns the number of checked addresses.
func (r *Report) Total() int {
	if r == nil {
		return 0
	}
	return len(r.Entries)
}

// ValidCount returns the number of addresses that passed.
func (r *Report) ValidCount() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, e := range r.Entries {
		if e.Valid {
			n++
		}
	}
	return n
}

// InvalidCount returns the number of addresses that failed.
func (r *Report) InvalidCount() int {
	return r.Total() - r.ValidCount()
}

// AllValid returns true if every checked address passed.
// An empty report counts as all valid.
func (r *Report) AllValid() bool {
	return r.InvalidCount() == 0
}

// Invalid returns the entries that failed validation.
func (r *Report) Invalid() []Entry {
	if r == nil {
		return nil
	}
	var res []Entry
	for _, e := range r.Entries {
		if !e.Valid {
			res = append(res, e)
		}
	}
	return res
}
