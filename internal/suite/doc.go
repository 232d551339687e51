// Package suite loads and runs TOML expectation files against the
// email validator.
//
// A suite file declares cases with an input address and the expected
// verdict, optionally pinning the exact diagnostic reason:
//
//	name = "smoke"
//
//	[[case]]
//	name  = "simple address"
//	input = "user@example.com"
//	valid = true
//
//	[[case]]
//	input  = "user@@example.com"
//	valid  = false
//	reason = "Email must contain exactly one @ symbol"
//
// [Run] evaluates every case and reports pass/fail per case plus
// aggregate counts, in the spirit of a unit-test runner.
package suite
