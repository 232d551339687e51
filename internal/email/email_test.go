package email

import (
	"strings"
	"testing"
)

func TestValidate_ValidAddresses(t *testing.T) {
	tests := []struct {
		name  string
		addrs []string
	}{
		{
			name: "simple",
			addrs: []string{
				"user@example.com",
				"test@domain.co.uk",
				"admin@subdomain.example.com",
				"john.doe@company.org",
				"a@b.co",
			},
		},
		{
			name: "plus addressing",
			addrs: []string{
				"user+tag@example.com",
				"name+filter@domain.org",
				"admin+test+multiple@site.com",
			},
		},
		{
			name: "separators in local part",
			addrs: []string{
				"user_name@example.com",
				"first-last@domain.com",
				"user.name@example.com",
				"user_name-123@test.org",
			},
		},
		{
			name: "subdomains",
			addrs: []string{
				"user@mail.company.com",
				"admin@deep.sub.domain.example.org",
				"test@a.b.c.d.com",
			},
		},
		{
			name: "real world",
			addrs: []string{
				"support@github.com",
				"noreply@google.com",
				"hello+spam@stripe.com",
				"admin@mail.company.co.uk",
				"user_123@test-domain.org",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, addr := range tt.addrs {
				v := Validate(addr)
				if !v.Valid {
					t.Errorf("Validate(%q).Valid = false (%s), want true", addr, v.Reason)
				}
				if v.Reason != ReasonValid {
					t.Errorf("Validate(%q).Reason = %q, want %q", addr, v.Reason, ReasonValid)
				}
			}
		})
	}
}

func TestValidate_InvalidAddresses(t *testing.T) {
	tests := []struct {
		name  string
		addrs []string
	}{
		{
			name: "missing parts",
			addrs: []string{
				"",
				"@example.com",
				"user@",
				"userexample.com",
				"@",
			},
		},
		{
			name: "multiple at symbols",
			addrs: []string{
				"user@@example.com",
				"user@domain@example.com",
				"@@example.com",
			},
		},
		{
			name: "bad local part",
			addrs: []string{
				".user@example.com",
				"user.@example.com",
				"user..name@example.com",
				"user name@example.com",
				"user#name@example.com",
			},
		},
		{
			name: "bad domain part",
			addrs: []string{
				"user@.example.com",
				"user@example.com.",
				"user@example..com",
				"user@example",
				"user@.com",
				"user@domain-.com",
				"user@-domain.com",
			},
		},
		{
			name: "bad TLD",
			addrs: []string{
				"user@example.c",
				"user@example.123",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, addr := range tt.addrs {
				v := Validate(addr)
				if v.Valid {
					t.Errorf("Validate(%q).Valid = true, want false", addr)
				}
				if v.Reason == "" || v.Reason == ReasonValid {
					t.Errorf("Validate(%q).Reason = %q, want a failure reason", addr, v.Reason)
				}
			}
		})
	}
}

func TestValidate_Reasons(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ReasonEmpty},
		{"whitespace only", "   \t ", ReasonEmpty},
		{"too long overall", "user@" + strings.Repeat("a", 250) + ".com", ReasonTooLong},
		{"no at symbol", "userexample.com", ReasonAtCount},
		{"two at symbols", "user@domain@example.com", ReasonAtCount},
		{"adjacent at symbols", "user@@example.com", ReasonAtCount},
		{"empty local part", "@example.com", ReasonLocalLength},
		{"local part too long", strings.Repeat("a", 65) + "@example.com", ReasonLocalLength},
		{"leading dot in local part", ".user@example.com", ReasonLocalFormat},
		{"trailing dot in local part", "user.@example.com", ReasonLocalFormat},
		{"space in local part", "user name@example.com", ReasonLocalFormat},
		{"hash in local part", "user#name@example.com", ReasonLocalFormat},
		{"empty domain", "user@", ReasonDomainTooShort},
		{"domain too short", "user@ab", ReasonDomainTooShort},
		{"no TLD", "user@example", ReasonDomainFormat},
		{"leading dot in domain", "user@.example.com", ReasonDomainFormat},
		{"trailing dot in domain", "user@example.com.", ReasonDomainFormat},
		{"consecutive dots in domain", "user@example..com", ReasonDomainFormat},
		{"leading hyphen in label", "user@-domain.com", ReasonDomainFormat},
		{"trailing hyphen in label", "user@domain-.com", ReasonDomainFormat},
		{"numeric TLD", "user@example.123", ReasonDomainFormat},
		{"one letter TLD", "user@example.c", ReasonDomainFormat},
		{"valid", "user@example.com", ReasonValid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Validate(tt.input).Reason; got != tt.want {
				t.Errorf("Validate(%q).Reason = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidate_LengthBoundaries(t *testing.T) {
	// Local part of exactly 64 characters is allowed; 65 is not.
	atLimit := strings.Repeat("a", MaxLocalLength) + "@example.com"
	if v := Validate(atLimit); !v.Valid {
		t.Errorf("local part of %d chars should be valid, got %q", MaxLocalLength, v.Reason)
	}
	overLimit := strings.Repeat("a", MaxLocalLength+1) + "@example.com"
	if v := Validate(overLimit); v.Valid {
		t.Error("local part of 65 chars should be invalid")
	} else if !strings.Contains(v.Reason, "Local part") {
		t.Errorf("reason %q should mention the local part", v.Reason)
	}

	// Domain label of exactly 63 characters is allowed; 64 is not.
	if v := Validate("user@" + strings.Repeat("a", MaxLabelLength) + ".com"); !v.Valid {
		t.Errorf("label of %d chars should be valid, got %q", MaxLabelLength, v.Reason)
	}
	if v := Validate("user@" + strings.Repeat("a", MaxLabelLength+1) + ".com"); v.Valid {
		t.Error("label of 64 chars should be invalid")
	}

	// Total length above 254 characters is rejected even when every part
	// would pass on its own.
	long := strings.Repeat("a", 60) + "@" +
		strings.Repeat("b", 60) + "." + strings.Repeat("c", 60) + "." +
		strings.Repeat("d", 60) + "." + strings.Repeat("e", 15) + ".com"
	if len(strings.TrimSpace(long)) <= MaxAddressLength {
		t.Fatalf("test fixture too short: %d chars", len(long))
	}
	if v := Validate(long); v.Valid {
		t.Error("address over 254 chars should be invalid")
	} else if v.Reason != ReasonTooLong {
		t.Errorf("reason = %q, want %q", v.Reason, ReasonTooLong)
	}
}

func TestValidate_TrimsWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"valid with padding", "  user@example.com  "},
		{"valid with tabs", "\tuser@example.com\n"},
		{"invalid with padding", "  user@@example.com  "},
		{"whitespace only", "   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.input)
			want := Validate(strings.TrimSpace(tt.input))
			if got != want {
				t.Errorf("Validate(%q) = %+v, want %+v (same as trimmed input)", tt.input, got, want)
			}
		})
	}

	if v := Validate("  user@example.com  "); !v.Valid {
		t.Errorf("padded valid address should be valid, got %q", v.Reason)
	}
}

func TestValidate_EdgeCases(t *testing.T) {
	// Minimum valid address.
	if v := Validate("a@b.co"); !v.Valid {
		t.Errorf("a@b.co should be valid, got %q", v.Reason)
	}

	// Digits are fine on either side of the @.
	if v := Validate("user123@domain.com"); !v.Valid {
		t.Errorf("user123@domain.com should be valid, got %q", v.Reason)
	}
	if v := Validate("user@domain123.com"); !v.Valid {
		t.Errorf("user@domain123.com should be valid, got %q", v.Reason)
	}

	// Interior whitespace is not trimmed and stays invalid.
	if v := Validate("user @example.com"); v.Valid {
		t.Error("interior space should be invalid")
	}
}

func TestValidatePtr(t *testing.T) {
	if v := ValidatePtr(nil); v.Valid || v.Reason != ReasonEmpty {
		t.Errorf("ValidatePtr(nil) = %+v, want invalid with %q", v, ReasonEmpty)
	}

	addr := "user@example.com"
	if v := ValidatePtr(&addr); !v.Valid {
		t.Errorf("ValidatePtr(&valid) = %+v, want valid", v)
	}

	bad := "user@@example.com"
	if v := ValidatePtr(&bad); v.Valid {
		t.Errorf("ValidatePtr(&invalid) = %+v, want invalid", v)
	}
}
