package account

import (
	"errors"
	"fmt"
	"strings"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/errs"
)

// ErrProfileIsNotConstructed is returned when a Profile was not created through
// NewProfile or RestoreProfile.
var ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile constructor")

// Profile is the domain user record looked up by email for every
// authorization decision.
//
// Invariants:
//   - email is non-empty, contains a domain part, and is stored lowercased
//   - restaurantID is present if and only if role is RoleRestaurant
type Profile struct {
	id           kernel.UUID
	email        string
	firstName    string
	lastName     string
	phoneNumber  string
	role         Role
	restaurantID *kernel.UUID

	isConstructed bool
}

// NewProfile creates a profile. The email is normalized to lower case.
// A RoleRestaurant profile must carry a restaurant affiliation; any other
// role must not.
func NewProfile(
	id kernel.UUID,
	email string,
	firstName string,
	lastName string,
	phoneNumber string,
	role Role,
	restaurantID *kernel.UUID,
) (*Profile, error) {
	profile := &Profile{
		phoneNumber:   phoneNumber,
		isConstructed: true,
	}

	if err := errors.Join(
		profile.setID(id),
		profile.setEmail(email),
		profile.setName(firstName, lastName),
		profile.setRole(role, restaurantID),
	); err != nil {
		return nil, err
	}

	return profile, nil
}

// RestoreProfile reconstructs a profile from persistence.
func RestoreProfile(
	id kernel.UUID,
	email string,
	firstName string,
	lastName string,
	phoneNumber string,
	role Role,
	restaurantID *kernel.UUID,
) (*Profile, error) {
	return NewProfile(id, email, firstName, lastName, phoneNumber, role, restaurantID)
}

// Validate ensures the Profile was created through a constructor.
func (p *Profile) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProfileIsNotConstructed
	}
	return nil
}

// ID returns the profile's unique identifier.
func (p *Profile) ID() kernel.UUID {
	return p.id
}

// Email returns the lowercased email address.
func (p *Profile) Email() string {
	return p.email
}

// FirstName returns the given name.
func (p *Profile) FirstName() string {
	return p.firstName
}

// LastName returns the family name.
func (p *Profile) LastName() string {
	return p.lastName
}

// FullName returns "First Last" for notification salutations.
func (p *Profile) FullName() string {
	return strings.TrimSpace(p.firstName + " " + p.lastName)
}

// PhoneNumber returns the optional phone number.
func (p *Profile) PhoneNumber() string {
	return p.phoneNumber
}

// Role returns the profile's role.
func (p *Profile) Role() Role {
	return p.role
}

// RestaurantID returns the restaurant affiliation for RoleRestaurant
// profiles, nil otherwise.
func (p *Profile) RestaurantID() *kernel.UUID {
	return p.restaurantID
}

// Rename updates first/last name and phone. Used by the signup upsert: a
// returning user re-signing-up refreshes contact details, nothing else.
func (p *Profile) Rename(firstName, lastName, phoneNumber string) error {
	if err := p.setName(firstName, lastName); err != nil {
		return err
	}
	p.phoneNumber = phoneNumber
	return nil
}

func (p *Profile) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Profile) setEmail(email string) error {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return errs.NewValueIsRequiredError("email")
	}
	at := strings.LastIndex(normalized, "@")
	if at <= 0 || at == len(normalized)-1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"email", fmt.Errorf("%q has no domain part", normalized))
	}
	p.email = normalized
	return nil
}

func (p *Profile) setName(firstName, lastName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("firstName")
	}
	if lastName == "" {
		return errs.NewValueIsRequiredError("lastName")
	}
	p.firstName = firstName
	p.lastName = lastName
	return nil
}

func (p *Profile) setRole(role Role, restaurantID *kernel.UUID) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if role == RoleRestaurant {
		if restaurantID == nil {
			return errs.NewValueIsRequiredError("restaurantId")
		}
		if err := restaurantID.Validate(); err != nil {
			return err
		}
	} else if restaurantID != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"restaurantId", fmt.Errorf("role %s cannot have a restaurant affiliation", role))
	}
	p.role = role
	p.restaurantID = restaurantID
	return nil
}
