// Package report aggregates validation verdicts for multi-address runs.
//
// A [Report] collects one [Entry] per checked address and tracks how many
// passed. A [Reporter] renders the report as human-readable text or as
// machine-readable JSON for CI pipelines.
//
// # Basic Usage
//
//	rep := &report.Report{}
//	for _, addr := range addrs {
//		v := email.Validate(addr)
//		rep.Add(addr, v.Valid, v.Reason)
//	}
//
//	reporter := report.NewReporter(os.Stdout, report.FormatText)
//	if err := reporter.Report(rep); err != nil {
//		// handle write failure
//	}
package report
