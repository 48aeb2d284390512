package account

import (
	"fmt"

	"campuseats/internal/pkg/errs"
)

// Role determines what a profile may do: customers place orders, restaurant
// staff work their own queue, admins see everything.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleUser is a customer: may place orders and view their own.
	RoleUser

	// RoleAdmin may view and manage every order and profile.
	RoleAdmin

	// RoleRestaurant is restaurant staff: bound to one restaurant, may work
	// that restaurant's queue.
	RoleRestaurant
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:    "UNKNOWN",
		RoleUser:       "USER",
		RoleAdmin:      "ADMIN",
		RoleRestaurant: "RESTAURANT",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleUser:       "USER",
		RoleAdmin:      "ADMIN",
		RoleRestaurant: "RESTAURANT",
	}
}

// RoleFromString parses a wire value ("USER", "ADMIN", "RESTAURANT") into a Role.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role", fmt.Errorf("%q is not a valid role", s))
}

// Validate reports whether the Role is one of the three valid values.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role, or "UNKNOWN" for invalid values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}
