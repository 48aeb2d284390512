package order

import (
	"errors"
	"time"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrNoItems is returned when an order would be created without any valid line items.
	ErrNoItems = errs.NewValueIsRequiredError("order requires at least one item")
)

// MinOrderNumber is the lowest order number ever assigned. The first order in
// an empty system gets MinOrderNumber; every later one is strictly greater.
const MinOrderNumber = 1001

// Order is the aggregate root for a single delivery request. It ties a
// customer and a restaurant to a frozen set of line items and a lifecycle
// status.
//
// Invariants:
//   - restaurantID and userID are immutable after creation
//   - items are created atomically with the order and never change
//   - status only moves through the transition table in status.go
//   - after Delivered the status is frozen; bot assignment stays allowed
//     for record-keeping
//   - updatedAt moves only on real mutations, never on idempotent no-ops
type Order struct {
	id               kernel.UUID
	orderNumber      int
	restaurantID     kernel.UUID
	userID           kernel.UUID
	deliveryLocation string
	status           Status
	botID            *kernel.UUID
	items            []Item
	placedAt         time.Time
	updatedAt        time.Time

	isConstructed bool
}

// NewOrder creates an order in Sent status with the given line items.
//
// The caller is responsible for having validated that every item's menu item
// belongs to restaurantID; the aggregate cannot see the menu. orderNumber must
// be at least MinOrderNumber, deliveryLocation non-empty, and items non-empty.
func NewOrder(
	id kernel.UUID,
	orderNumber int,
	restaurantID kernel.UUID,
	userID kernel.UUID,
	deliveryLocation string,
	items []Item,
	now time.Time,
) (*Order, error) {
	order := &Order{
		status:        Sent,
		placedAt:      now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setRestaurantID(restaurantID),
		order.setUserID(userID),
		order.setDeliveryLocation(deliveryLocation),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence, including its current
// status and optional bot assignment.
func RestoreOrder(
	id kernel.UUID,
	orderNumber int,
	restaurantID kernel.UUID,
	userID kernel.UUID,
	deliveryLocation string,
	status Status,
	botID *kernel.UUID,
	items []Item,
	placedAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		placedAt:      placedAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setRestaurantID(restaurantID),
		order.setUserID(userID),
		order.setDeliveryLocation(deliveryLocation),
		order.setStatus(status),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	if botID != nil {
		if err := botID.Validate(); err != nil {
			return nil, err
		}
		order.botID = botID
	}

	return order, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's opaque unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the sequential human-facing number.
func (o *Order) OrderNumber() int {
	return o.orderNumber
}

// RestaurantID returns the restaurant the order was placed with.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// UserID returns the profile that placed the order.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// DeliveryLocation returns the free-text drop-off description.
func (o *Order) DeliveryLocation() string {
	return o.deliveryLocation
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Bot returns the assigned delivery bot's ID, or nil when unassigned.
func (o *Order) Bot() *kernel.UUID {
	return o.botID
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// PlacedAt returns the creation timestamp.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// UpdatedAt returns the last mutation timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsActive reports whether the order still appears in the restaurant queue,
// i.e. its status is anything but Delivered.
func (o *Order) IsActive() bool {
	return o.status != Delivered
}

// AdvanceTo moves the order to target per the transition table.
//
// Returns changed=false without error when target equals the current status;
// callers use that flag to suppress duplicate notifications. Illegal moves
// (skips, backward moves, moves out of Delivered, unknown values) return a
// validation error and mutate nothing.
func (o *Order) AdvanceTo(target Status, now time.Time) (bool, error) {
	newStatus, changed, err := o.status.TransitionTo(target)
	if err != nil {
		return false, err
	}
	if !changed {
		return false, nil
	}

	o.status = newStatus
	o.updatedAt = now
	return true, nil
}

// AssignBot records the delivery bot handling the order. Assignment is
// independent of status and deliberately remains legal after Delivered so the
// fulfillment record can be completed late.
func (o *Order) AssignBot(botID kernel.UUID, now time.Time) error {
	if err := botID.Validate(); err != nil {
		return err
	}

	o.botID = &botID
	o.updatedAt = now
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(n int) error {
	if n < MinOrderNumber {
		return errs.NewValueIsInvalidError("orderNumber")
	}
	o.orderNumber = n
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.userID = id
	return nil
}

func (o *Order) setDeliveryLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("deliveryLocation")
	}
	o.deliveryLocation = location
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrNoItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
