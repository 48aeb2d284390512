package queries

import (
	"errors"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListRestaurantsQueryIsNotConstructed = errors.New(
	"ListRestaurantsQuery must be created via NewListRestaurantsQuery constructor",
)

// ListRestaurantsQuery retrieves the storefront catalog: every restaurant
// with its menu. This is the public browse endpoint and needs no parameters.
//
// Example:
//
//	query := NewListRestaurantsQuery()
//	handler := NewListRestaurantsQueryHandler(db)
//
//	restaurants, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load catalog: %w", err)
//	}
type ListRestaurantsQuery struct {
	guard guard.ConstructorGuard
}

// NewListRestaurantsQuery creates a query to retrieve the full catalog.
func NewListRestaurantsQuery() ListRestaurantsQuery {
	return ListRestaurantsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListRestaurantsQueryIsNotConstructed if validation fails.
func (q ListRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrListRestaurantsQueryIsNotConstructed)
}

// MenuItemView is one item on a restaurant's menu.
type MenuItemView struct {
	ID    kernel.UUID
	Name  string
	Price decimal.Decimal
}

// RestaurantView is a restaurant with its menu, as shown on the storefront.
type RestaurantView struct {
	ID       kernel.UUID
	Name     string
	Location string
	Menu     []MenuItemView
}
