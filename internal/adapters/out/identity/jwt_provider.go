// Package identity verifies bearer tokens issued by the external identity
// provider. The platform only trusts two claims: the subject and the email.
// Everything else about a caller (role, restaurant affiliation) comes from
// the profile store, never from the token.
package identity

import (
	"context"
	"errors"
	"strings"

	"campuseats/internal/core/ports"
	"campuseats/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// ErrSigningSecretIsRequired is returned when the provider is constructed
// without a secret.
var ErrSigningSecretIsRequired = errors.New("jwt signing secret is required")

// tokenClaims is the internal claims type used for JWT parsing.
type tokenClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// JWTProvider implements ports.IdentityProvider for HS256-signed access
// tokens carrying the account email as a claim.
type JWTProvider struct {
	secret []byte
}

// NewJWTProvider creates a provider verifying tokens against the shared
// signing secret.
func NewJWTProvider(secret string) (*JWTProvider, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrSigningSecretIsRequired
	}

	return &JWTProvider{secret: []byte(secret)}, nil
}

// Authenticate verifies the token signature and expiry and returns the
// identity behind it. Any defect, a bad signature, an expired token, a
// missing subject or email, comes back as an Unauthorized error.
func (p *JWTProvider) Authenticate(_ context.Context, token string) (ports.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return ports.Identity{}, errs.NewUnauthorizedError()
	}

	var parsed tokenClaims
	_, err := jwt.ParseWithClaims(token, &parsed, func(_ *jwt.Token) (any, error) {
		return p.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
	)
	if err != nil {
		return ports.Identity{}, errs.NewUnauthorizedErrorWithCause(err)
	}

	email := strings.ToLower(strings.TrimSpace(parsed.Email))
	if parsed.Subject == "" || email == "" {
		return ports.Identity{}, errs.NewUnauthorizedError()
	}

	return ports.Identity{
		ID:    parsed.Subject,
		Email: email,
	}, nil
}
