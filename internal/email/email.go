package email

import (
	"regexp"
	"strings"
)

// Length limits applied as practical constraints (RFC 5321).
const (
	// MaxAddressLength is the maximum total length of an address after trimming.
	MaxAddressLength = 254

	// MaxLocalLength is the maximum length of the local part.
	MaxLocalLength = 64

	// MaxLabelLength is the maximum length of a single domain label.
	MaxLabelLength = 63

	// MinDomainLength is the minimum length of the whole domain part.
	MinDomainLength = 3

	// MinTLDLength is the minimum length of the top-level domain.
	MinTLDLength = 2
)

// Reason strings carried in a Verdict. Each check has its own message so
// the caller can report exactly which rule a candidate broke.
const (
	ReasonValid           = "Valid email address"
	ReasonEmpty           = "Email cannot be empty"
	ReasonTooLong         = "Email exceeds maximum length of 254 characters"
	ReasonAtCount         = "Email must contain exactly one @ symbol"
	ReasonLocalLength     = "Local part must be 1-64 characters"
	ReasonLocalFormat     = "Local part contains invalid characters or format"
	ReasonConsecutiveDots = "Local part cannot contain consecutive dots"
	ReasonDomainTooShort  = "Domain part is too short"
	ReasonDomainFormat    = "Domain contains invalid characters or format"
	ReasonLabelTooLong    = "Domain label exceeds 63 characters"
	ReasonLabelHyphen     = "Domain labels cannot start or end with hyphen"
	ReasonTLDTooShort     = "Top-level domain must be at least 2 characters"
)

// localRe matches a local part: alphanumeric runs joined by single
// separators (dot, underscore, plus, hyphen). A separator never leads,
// trails, or doubles up.
var localRe = regexp.MustCompile(`^[a-zA-Z0-9]+([._+-][a-zA-Z0-9]+)*$`)

// domainRe matches one or more dot-terminated labels (alphanumeric with
// internal hyphens, 1-63 characters) followed by an alphabetic TLD of at
// least two characters. A purely numeric TLD is rejected on purpose.
var domainRe = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}$`)

// Verdict is the outcome of validating a single address.
// Reason is always populated, for valid and invalid addresses alike.
type Verdict struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason"`
}

// Validate reports whether input is a syntactically well-formed email
// address. Leading and trailing whitespace is trimmed before any check
// runs. The function is total: every input, including the empty string,
// yields a normal Verdict rather than an error.
//
// Checks run in a fixed order and the first failure wins. The pattern
// matches overlap with the explicit secondary passes (consecutive dots,
// label length, hyphen position, TLD length); the secondary passes stay
// separate so each failure keeps its specific reason.
func Validate(input string) Verdict {
	addr := strings.TrimSpace(input)
	if addr == "" {
		return invalid(ReasonEmpty)
	}

	if len(addr) > MaxAddressLength {
		return invalid(ReasonTooLong)
	}

	if strings.Count(addr, "@") != 1 {
		return invalid(ReasonAtCount)
	}

	// Exactly one @ confirmed, so the split is unambiguous.
	at := strings.LastIndex(addr, "@")
	local, domain := addr[:at], addr[at+1:]

	if local == "" || len(local) > MaxLocalLength {
		return invalid(ReasonLocalLength)
	}
	if !localRe.MatchString(local) {
		return invalid(ReasonLocalFormat)
	}
	if strings.Contains(local, "..") {
		return invalid(ReasonConsecutiveDots)
	}

	if len(domain) < MinDomainLength {
		return invalid(ReasonDomainTooShort)
	}
	if !domainRe.MatchString(domain) {
		return invalid(ReasonDomainFormat)
	}

	labels := strings.Split(domain, ".")
	for _, label := range labels {
		if len(label) > MaxLabelLength {
			return invalid(ReasonLabelTooLong)
		}
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return invalid(ReasonLabelHyphen)
		}
	}

	if tld := labels[len(labels)-1]; len(tld) < MinTLDLength {
		return invalid(ReasonTLDTooShort)
	}

	return Verdict{Valid: true, Reason: ReasonValid}
}

// ValidatePtr validates an optional address, treating a nil pointer the
// same as an empty string.
func ValidatePtr(input *string) Verdict {
	if input == nil {
		return invalid(ReasonEmpty)
	}
	return Validate(*input)
}

func invalid(reason string) Verdict {
	return Verdict{Valid: false, Reason: reason}
}
