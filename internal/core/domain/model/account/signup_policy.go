package account

import (
	"fmt"
	"strings"

	"campuseats/internal/pkg/errs"
)

// DefaultAllowedDomains are the institutional email domains permitted to
// self-register when no explicit allow-list is configured.
var DefaultAllowedDomains = []string{"ut.edu", "spartans.ut.edu"}

// SignupPolicy restricts account creation to an allow-list of email domains.
// Matching is case-insensitive on the domain part. The policy is enforced
// server-side in the registration use case, not in the client.
type SignupPolicy struct {
	allowedDomains map[string]struct{}
}

// NewSignupPolicy creates a policy for the given domains. An empty list
// falls back to DefaultAllowedDomains.
func NewSignupPolicy(domains []string) SignupPolicy {
	if len(domains) == 0 {
		domains = DefaultAllowedDomains
	}
	allowed := make(map[string]struct{}, len(domains))
	for _, d := range domains {
		allowed[strings.ToLower(strings.TrimSpace(d))] = struct{}{}
	}
	return SignupPolicy{allowedDomains: allowed}
}

// CheckEmail returns nil when the email's domain is allow-listed. Both a
// malformed email and a well-formed one on a foreign domain are validation
// errors: the email value itself is outside the allowed domain.
func (p SignupPolicy) CheckEmail(email string) error {
	normalized := strings.ToLower(strings.TrimSpace(email))
	at := strings.LastIndex(normalized, "@")
	if at <= 0 || at == len(normalized)-1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"email", fmt.Errorf("%q has no domain part", normalized))
	}
	if _, ok := p.allowedDomains[normalized[at+1:]]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"email", fmt.Errorf("domain %q is not allowed to register", normalized[at+1:]))
	}
	return nil
}
