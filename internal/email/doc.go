// Package email validates the syntax of email addresses.
//
// Validation is a fixed sequence of checks over the local part and the
// domain part of a candidate address. The first failing check determines
// the diagnostic reason, so every distinct failure mode keeps its own
// message.
//
// # Basic Usage
//
//	v := email.Validate("user@example.com")
//	if !v.Valid {
//		fmt.Println(v.Reason)
//	}
//
// The checks are purely syntactic. The package does not resolve DNS, does
// not verify mailbox existence, and does not implement the full RFC 5322
// grammar (quoted local parts, comments, IP-literal domains, and
// internationalized domain names are all rejected).
//
// # Concurrency
//
// [Validate] is a pure function with no shared state and is safe to call
// from any number of goroutines.
package email
