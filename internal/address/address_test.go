package address

import (
	"errors"
	"regexp"
	"slices"
	"testing"
)

var usernameRe = regexp.MustCompile(`^[a-z0-9]{1,11}$`)

func TestGenerateRandom_Shape(t *testing.T) {
	t.Parallel()

	for i := 0; i < 200; i++ {
		addr, err := GenerateRandom()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !usernameRe.MatchString(addr.Username) {
			t.Fatalf("username %q does not match %s", addr.Username, usernameRe)
		}
		if !slices.Contains(Domains, addr.Domain) {
			t.Fatalf("domain %q not in %v", addr.Domain, Domains)
		}
		if _, err := Validate(addr.String()); err != nil {
			t.Fatalf("generated address %q does not validate: %v", addr, err)
		}
	}
}

func TestValidate_Accepts(t *testing.T) {
	t.Parallel()

	for _, candidate := range []string{
		"foo@1secmail.com",
		"foo@1secmail.net",
		"foo@1secmail.org",
		"a1b2@esiix.com",
		"x@wwjmp.com",
	} {
		addr, err := Validate(candidate)
		if err != nil {
			t.Errorf("Validate(%q): unexpected error: %v", candidate, err)
			continue
		}
		if addr.String() != candidate {
			t.Errorf("String(): got %q, want %q", addr.String(), candidate)
		}
	}
}

func TestValidate_SplitsFields(t *testing.T) {
	t.Parallel()

	addr, err := Validate("foo@1secmail.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if addr.Username != "foo" {
		t.Errorf("Username: got %q, want %q", addr.Username, "foo")
	}
	if addr.Domain != "1secmail.com" {
		t.Errorf("Domain: got %q, want %q", addr.Domain, "1secmail.com")
	}
}

func TestValidate_Rejects(t *testing.T) {
	t.Parallel()

	for _, candidate := range []string{
		"FOO@bad.org",
		"foo@bad.org",
		"Foo@1secmail.com",
		"foo@1secmail.com.evil",
		"prefix foo@1secmail.com",
		"foo.bar@1secmail.com",
		"@1secmail.com",
		"foo@",
		"",
		// esiix.co only appeared in the legacy validator.
		"foo@esiix.co",
	} {
		_, err := Validate(candidate)
		if err == nil {
			t.Errorf("Validate(%q): expected error, got nil", candidate)
			continue
		}
		var invalid *InvalidAddressError
		if !errors.As(err, &invalid) {
			t.Errorf("Validate(%q): error type got %T, want *InvalidAddressError", candidate, err)
		}
	}
}

func TestDomainLists_Discrepancy(t *testing.T) {
	t.Parallel()

	if !slices.Contains(Domains, "esiix.com") {
		t.Error("canonical domains should contain esiix.com")
	}
	if slices.Contains(Domains, "esiix.co") {
		t.Error("canonical domains should not contain esiix.co")
	}
	if !slices.Contains(LegacyValidatorDomains, "esiix.co") {
		t.Error("legacy validator domains should record esiix.co")
	}
}
