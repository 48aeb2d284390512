package queries

import (
	"errors"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/guard"
)

var ErrGetRestaurantQueueQueryIsNotConstructed = errors.New(
	"GetRestaurantQueueQuery must be created via NewGetRestaurantQueueQuery constructor",
)

// GetRestaurantQueueQuery retrieves a restaurant's working queue: every order
// that is not yet delivered, oldest first, so staff work in arrival order.
//
// Example:
//
//	query, err := NewGetRestaurantQueueQuery(restaurantID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetRestaurantQueueQueryHandler(db)
//	queue, err := handler.Handle(ctx, query)
type GetRestaurantQueueQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRestaurantQueueQuery creates a query for a restaurant's undelivered
// orders. Validates the restaurant identifier.
func NewGetRestaurantQueueQuery(restaurantID kernel.UUID) (GetRestaurantQueueQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantQueueQuery{}, err
	}

	return GetRestaurantQueueQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRestaurantQueueQueryIsNotConstructed if validation fails.
func (q GetRestaurantQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantQueueQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose queue is requested.
func (q GetRestaurantQueueQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}
