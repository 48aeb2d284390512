package ports

import "context"

// Identity is the stable result of authenticating with the external identity
// provider: an opaque subject id and a verified email. The email is the key
// into the profile store; the domain never trusts anything else from the
// token.
type Identity struct {
	ID    string
	Email string
}

// IdentityProvider verifies a bearer credential and yields the identity
// behind it. Implementations return an Unauthorized error for missing,
// malformed, or expired credentials.
type IdentityProvider interface {
	Authenticate(ctx context.Context, token string) (Identity, error)
}
