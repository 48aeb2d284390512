package restaurant

import (
	"fmt"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MenuItem belongs to exactly one restaurant. Price is an exact decimal to
// avoid rounding drift when totals are computed.
type MenuItem struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	price        decimal.Decimal

	isConstructed bool
}

// ErrMenuItemIsNotConstructed is returned when a MenuItem was not created
// through NewMenuItem.
var ErrMenuItemIsNotConstructed = errs.NewValueIsRequiredError("MenuItem must be created via NewMenuItem")

// NewMenuItem creates a menu item for the given restaurant. Price must not
// be negative.
func NewMenuItem(id kernel.UUID, restaurantID kernel.UUID, name string, price decimal.Decimal) (MenuItem, error) {
	if err := id.Validate(); err != nil {
		return MenuItem{}, err
	}
	if err := restaurantID.Validate(); err != nil {
		return MenuItem{}, err
	}
	if name == "" {
		return MenuItem{}, errs.NewValueIsRequiredError("name")
	}
	if price.IsNegative() {
		return MenuItem{}, errs.NewValueIsInvalidErrorWithCause(
			"price", fmt.Errorf("%s is negative", price))
	}

	return MenuItem{
		id:            id,
		restaurantID:  restaurantID,
		name:          name,
		price:         price,
		isConstructed: true,
	}, nil
}

// ID returns the menu item's unique identifier.
func (m MenuItem) ID() kernel.UUID {
	return m.id
}

// RestaurantID returns the owning restaurant.
func (m MenuItem) RestaurantID() kernel.UUID {
	return m.restaurantID
}

// Name returns the display name.
func (m MenuItem) Name() string {
	return m.name
}

// Price returns the exact price.
func (m MenuItem) Price() decimal.Decimal {
	return m.price
}

// Validate ensures the MenuItem was created through NewMenuItem.
func (m MenuItem) Validate() error {
	if !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}
