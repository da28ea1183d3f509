// Package address creates, validates and persists disposable email addresses.
package address

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

// usernameLength is the number of characters in a generated username.
const usernameLength = 11

// usernameAlphabet is the character set of generated usernames.
const usernameAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Domains is the canonical set of domains served by the provider. Random
// addresses are drawn from it and Validate accepts exactly these domains.
var Domains = []string{
	"1secmail.com",
	"1secmail.net",
	"1secmail.org",
	"esiix.com",
	"wwjmp.com",
}

// LegacyValidatorDomains is the domain set the shell tool's validator used.
// It disagrees with Domains on esiix.com vs esiix.co and is kept for
// reference only; nothing validates against it.
var LegacyValidatorDomains = []string{
	"1secmail.com",
	"1secmail.net",
	"1secmail.org",
	"esiix.co",
	"wwjmp.com",
}

var addressPattern = compilePattern(Domains)

// Address is a disposable mailbox on one of the provider's domains.
type Address struct {
	Username string
	Domain   string
}

// String returns the address as user@domain.
func (a Address) String() string {
	return a.Username + "@" + a.Domain
}

// InvalidAddressError is returned when a user-supplied address is not
// accepted by the provider.
type InvalidAddressError struct {
	Address string
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("provided email is invalid: %q (domain must be one of %s)",
		e.Address, strings.Join(Domains, ", "))
}

// Validate parses candidate as user@domain. The username must be lowercase
// alphanumeric and the domain one of Domains.
func Validate(candidate string) (Address, error) {
	if !addressPattern.MatchString(candidate) {
		return Address{}, &InvalidAddressError{Address: candidate}
	}

	user, domain, _ := strings.Cut(candidate, "@")
	return Address{Username: user, Domain: domain}, nil
}

// GenerateRandom returns an address with an 11 character lowercase
// alphanumeric username on a domain chosen uniformly from Domains.
func GenerateRandom() (Address, error) {
	var b strings.Builder
	b.Grow(usernameLength)

	for i := 0; i < usernameLength; i++ {
		n, err := randIndex(len(usernameAlphabet))
		if err != nil {
			return Address{}, err
		}
		b.WriteByte(usernameAlphabet[n])
	}

	n, err := randIndex(len(Domains))
	if err != nil {
		return Address{}, err
	}

	return Address{Username: b.String(), Domain: Domains[n]}, nil
}

func randIndex(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return int(v.Int64()), nil
}

func compilePattern(domains []string) *regexp.Regexp {
	quoted := make([]string, 0, len(domains))
	for _, d := range domains {
		quoted = append(quoted, regexp.QuoteMeta(d))
	}
	return regexp.MustCompile(`^[a-z0-9]+@(` + strings.Join(quoted, "|") + `)$`)
}
