package queries

import (
	"context"
	"database/sql"

	"campuseats/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListRestaurantsQueryHandler retrieves every restaurant and its menu from
// the database. One join, grouped in memory; the catalog is small.
type ListRestaurantsQueryHandler struct {
	db *gorm.DB
}

// NewListRestaurantsQueryHandler creates a handler for catalog queries.
// Requires a GORM database connection for query execution.
func NewListRestaurantsQueryHandler(db *gorm.DB) ListRestaurantsQueryHandler {
	return ListRestaurantsQueryHandler{db: db}
}

// Handle executes the query to retrieve the catalog.
// Restaurants are sorted by name, menu items by name within each restaurant.
func (h ListRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query ListRestaurantsQuery,
) ([]RestaurantView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	restaurants := make([]RestaurantView, 0)
	indexByID := make(map[kernel.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.name,
			r.location,
			mi.id,
			mi.name,
			mi.price
		FROM restaurants r
		LEFT JOIN menu_items mi ON mi.restaurant_id = r.id
		ORDER BY r.name, mi.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var restaurantID uuid.UUID
		var name, location string
		var menuItemID uuid.NullUUID
		var itemName sql.NullString
		var itemPrice decimal.NullDecimal

		err = rows.Scan(
			&restaurantID,
			&name,
			&location,
			&menuItemID,
			&itemName,
			&itemPrice,
		)
		if err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(restaurantID[:])
		if idErr != nil {
			return nil, idErr
		}

		i, ok := indexByID[id]
		if !ok {
			restaurants = append(restaurants, RestaurantView{
				ID:       id,
				Name:     name,
				Location: location,
				Menu:     make([]MenuItemView, 0),
			})
			i = len(restaurants) - 1
			indexByID[id] = i
		}

		if menuItemID.Valid {
			itemID, itemErr := kernel.UUIDFromBytes(menuItemID.UUID[:])
			if itemErr != nil {
				return nil, itemErr
			}
			restaurants[i].Menu = append(restaurants[i].Menu, MenuItemView{
				ID:    itemID,
				Name:  itemName.String,
				Price: itemPrice.Decimal,
			})
		}
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return restaurants, nil
}
