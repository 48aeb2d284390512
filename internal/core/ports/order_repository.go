// Package ports defines the contracts between the application core and its
// external collaborators: persistence, notification dispatch, and identity.
package ports

import (
	"context"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order together with its line items. Returns a
	// ValueIsDuplicated error when the order number collides with a
	// concurrent insert; callers retry with a fresh number.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order (status, bot, updatedAt).
	// Line items are frozen at creation and never written again.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its opaque identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order by its human-facing sequential number.
	GetByNumber(ctx context.Context, orderNumber int) (*order.Order, error)

	// NextOrderNumber returns max(existing)+1, or order.MinOrderNumber when
	// no orders exist. Uniqueness is guaranteed by the database constraint,
	// not by this read; Add reports collisions.
	NextOrderNumber(ctx context.Context) (int, error)

	// GetOldestInStatus retrieves up to limit orders in the given status,
	// oldest first. Used by the fulfillment simulation to work batches FIFO.
	GetOldestInStatus(ctx context.Context, status order.Status, limit int) ([]*order.Order, error)
}
