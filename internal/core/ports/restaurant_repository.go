package ports

import (
	"context"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurant
// aggregates. A restaurant always loads with its full menu so order
// validation can check item ownership without extra round trips.
type RestaurantRepository interface {
	// Add persists a new restaurant together with its menu items.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get retrieves a restaurant with its menu by id.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)

	// GetAll retrieves every restaurant with its menu, sorted by name.
	GetAll(ctx context.Context) ([]*restaurant.Restaurant, error)
}
