package queries

import (
	"errors"
	"strings"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/guard"
)

var (
	ErrGetProfileByEmailQueryIsNotConstructed = errors.New(
		"GetProfileByEmailQuery must be created via NewGetProfileByEmailQuery constructor",
	)
	ErrEmailIsRequired = errors.New("email is required")
)

// GetProfileByEmailQuery retrieves a profile by its account email. The email
// is normalized to lower case to match how profiles are stored.
type GetProfileByEmailQuery struct {
	email string

	guard guard.ConstructorGuard
}

// NewGetProfileByEmailQuery creates a query for one profile.
// Requires a non-empty email.
func NewGetProfileByEmailQuery(email string) (GetProfileByEmailQuery, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return GetProfileByEmailQuery{}, ErrEmailIsRequired
	}

	return GetProfileByEmailQuery{
		email: normalized,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetProfileByEmailQueryIsNotConstructed if validation fails.
func (q GetProfileByEmailQuery) Validate() error {
	return q.guard.Validate(ErrGetProfileByEmailQueryIsNotConstructed)
}

// Email returns the normalized email being looked up.
func (q GetProfileByEmailQuery) Email() string {
	return q.email
}

// ProfileView is the read model for an account profile.
type ProfileView struct {
	ID           kernel.UUID
	Email        string
	FirstName    string
	LastName     string
	PhoneNumber  string
	Role         string
	RestaurantID *kernel.UUID
}
