package order

import (
	"fmt"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/errs"
)

// Item is a value object tying a menu item to a quantity within an order.
// Items are created together with their order and never mutated afterwards:
// order contents are frozen at placement.
type Item struct {
	id         kernel.UUID
	menuItemID kernel.UUID
	quantity   int

	isConstructed bool
}

// ErrItemIsNotConstructed is returned when an Item was not created through NewItem.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError("Item must be created via NewItem")

// NewItem creates an order line for the given menu item.
// Quantity must be positive; callers filter out non-positive requests before
// constructing items.
func NewItem(id kernel.UUID, menuItemID kernel.UUID, quantity int) (Item, error) {
	if err := id.Validate(); err != nil {
		return Item{}, err
	}
	if err := menuItemID.Validate(); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Item{
		id:            id,
		menuItemID:    menuItemID,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

// RestoreItem rebuilds an Item from persistence without revalidating business
// rules beyond construction invariants.
func RestoreItem(id kernel.UUID, menuItemID kernel.UUID, quantity int) (Item, error) {
	return NewItem(id, menuItemID, quantity)
}

// ID returns the line's unique identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// MenuItemID returns the referenced menu item.
func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Quantity returns how many units of the menu item were ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}
