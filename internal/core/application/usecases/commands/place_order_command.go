package commands

import (
	"errors"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrDeliveryLocationIsRequired = errors.New("delivery location is required")
	ErrItemsAreRequired           = errors.New("at least one item is required")
	ErrItemQuantityIsInvalid      = errors.New("item quantity must be greater than 0")
)

// ItemSelection is one menu item picked during checkout, with how many of it
// the customer wants.
type ItemSelection struct {
	menuItemID kernel.UUID
	quantity   int
}

// NewItemSelection creates a selection of a menu item with a positive quantity.
func NewItemSelection(menuItemID kernel.UUID, quantity int) (ItemSelection, error) {
	if err := menuItemID.Validate(); err != nil {
		return ItemSelection{}, err
	}
	if quantity <= 0 {
		return ItemSelection{}, ErrItemQuantityIsInvalid
	}

	return ItemSelection{menuItemID: menuItemID, quantity: quantity}, nil
}

// MenuItemID returns the selected menu item's identifier.
func (s ItemSelection) MenuItemID() kernel.UUID {
	return s.menuItemID
}

// Quantity returns how many units of the menu item were selected.
func (s ItemSelection) Quantity() int {
	return s.quantity
}

// PlaceOrderCommand represents a customer checking out a cart against a single
// restaurant. The user ID always comes from the authenticated session, never
// from request payloads.
//
// Example:
//
//	selection, _ := commands.NewItemSelection(menuItemID, 2)
//	cmd, err := commands.NewPlaceOrderCommand(
//	    kernel.NewUUID(), profile.ID(), restaurantID, "Vaughn Center", []commands.ItemSelection{selection})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	orderNumber, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	userID           kernel.UUID
	restaurantID     kernel.UUID
	deliveryLocation string
	items            []ItemSelection

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates that all identifiers are constructed, the delivery location is
// not empty, and at least one item was selected.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	userID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryLocation string,
	items []ItemSelection,
) (PlaceOrderCommand, error) {
	orderCommand := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setUserID(userID),
		orderCommand.setRestaurantID(restaurantID),
		orderCommand.setDeliveryLocation(deliveryLocation),
		orderCommand.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created under.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the authenticated customer's profile identifier.
func (c PlaceOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// RestaurantID returns the restaurant the cart was assembled against.
func (c PlaceOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// DeliveryLocation returns the free-form campus drop-off point.
func (c PlaceOrderCommand) DeliveryLocation() string {
	return c.deliveryLocation
}

// Items returns the selected menu items.
func (c PlaceOrderCommand) Items() []ItemSelection {
	result := make([]ItemSelection, len(c.items))
	copy(result, c.items)
	return result
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *PlaceOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *PlaceOrderCommand) setDeliveryLocation(deliveryLocation string) error {
	if deliveryLocation == "" {
		return ErrDeliveryLocationIsRequired
	}

	c.deliveryLocation = deliveryLocation
	return nil
}

func (c *PlaceOrderCommand) setItems(items []ItemSelection) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if item.quantity <= 0 {
			return ErrItemQuantityIsInvalid
		}
		if err := item.menuItemID.Validate(); err != nil {
			return err
		}
	}

	c.items = make([]ItemSelection, len(items))
	copy(c.items, items)
	return nil
}
