package services

import (
	"campuseats/internal/core/domain/model/account"
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/pkg/errs"
)

// AccessPolicy is the authorization gate. It decides whether a profile may
// perform an action on a resource; the HTTP layer translates its errors into
// 401/403 responses.
//
// Rules, in precedence order:
//  1. nil profile with no identity behind it -> Unauthorized (handled at the
//     transport boundary before the policy is consulted)
//  2. identity present but profile == nil -> Forbidden ("no profile")
//  3. per-action role rules below
//
// Admins pass every check. Restaurant staff act only on their own
// restaurant's orders. Users act only on themselves.
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// requireProfile implements rule 2: an authenticated identity without a
// domain profile is forbidden, distinctly from being unauthenticated.
func (AccessPolicy) requireProfile(profile *account.Profile) error {
	if profile == nil {
		return errs.NewAccessForbiddenError(
			"no profile exists for this account; contact an administrator")
	}
	return profile.Validate()
}

// CanViewOrder permits admins, the order's owner, and staff of the order's
// restaurant.
func (p AccessPolicy) CanViewOrder(profile *account.Profile, o *order.Order) error {
	if err := p.requireProfile(profile); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}

	switch profile.Role() {
	case account.RoleAdmin:
		return nil
	case account.RoleRestaurant:
		if profile.RestaurantID() != nil && profile.RestaurantID().IsEqual(o.RestaurantID()) {
			return nil
		}
	case account.RoleUser:
		if profile.ID().IsEqual(o.UserID()) {
			return nil
		}
	}
	return errs.NewAccessForbiddenError("you do not have permission to view this order")
}

// CanManageOrder permits admins and staff of the order's restaurant to
// advance status or assign a bot.
func (p AccessPolicy) CanManageOrder(profile *account.Profile, o *order.Order) error {
	if err := p.requireProfile(profile); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}
	return p.CanManageRestaurantQueue(profile, o.RestaurantID())
}

// CanManageRestaurantQueue permits admins and staff affiliated with the
// given restaurant.
func (p AccessPolicy) CanManageRestaurantQueue(profile *account.Profile, restaurantID kernel.UUID) error {
	if err := p.requireProfile(profile); err != nil {
		return err
	}

	if profile.Role() == account.RoleAdmin {
		return nil
	}
	if profile.Role() == account.RoleRestaurant &&
		profile.RestaurantID() != nil && profile.RestaurantID().IsEqual(restaurantID) {
		return nil
	}
	return errs.NewAccessForbiddenError("you do not have permission to manage this restaurant's orders")
}

// CanCreateOrder permits customers only. The acting user is always the
// authenticated profile itself; callers must never take a user reference from
// the request payload.
func (p AccessPolicy) CanCreateOrder(profile *account.Profile) error {
	if err := p.requireProfile(profile); err != nil {
		return err
	}

	if profile.Role() != account.RoleUser {
		return errs.NewAccessForbiddenError("only customers can place orders")
	}
	return nil
}

// CanViewUserOrders permits admins and the user themselves.
func (p AccessPolicy) CanViewUserOrders(profile *account.Profile, userID kernel.UUID) error {
	if err := p.requireProfile(profile); err != nil {
		return err
	}

	if profile.Role() == account.RoleAdmin || profile.ID().IsEqual(userID) {
		return nil
	}
	return errs.NewAccessForbiddenError("you may only view your own orders")
}

// CanViewProfile permits admins and the profile owner (matched by email,
// case-insensitively).
func (p AccessPolicy) CanViewProfile(profile *account.Profile, email string) error {
	if err := p.requireProfile(profile); err != nil {
		return err
	}

	if profile.Role() == account.RoleAdmin || profile.Email() == normalizeEmail(email) {
		return nil
	}
	return errs.NewAccessForbiddenError("you may only view your own profile")
}
