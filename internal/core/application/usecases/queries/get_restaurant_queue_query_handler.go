package queries

import (
	"context"

	"campuseats/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetRestaurantQueueQueryHandler retrieves a restaurant's undelivered orders
// from the database. The queue is what kitchen staff see on the dashboard, so
// it is sorted by placement time ascending: first in, first cooked.
type GetRestaurantQueueQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantQueueQueryHandler creates a handler for restaurant queue
// queries. Requires a GORM database connection for query execution.
func NewGetRestaurantQueueQueryHandler(db *gorm.DB) GetRestaurantQueueQueryHandler {
	return GetRestaurantQueueQueryHandler{db: db}
}

// Handle executes the query and returns the restaurant's orders that are not
// yet delivered, oldest first, each with its line items.
func (h GetRestaurantQueueQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantQueueQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views := make([]OrderView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderViewColumns+`
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		LEFT JOIN bots b ON b.id = o.bot_id
		WHERE o.restaurant_id = ? AND o.status != ?
		ORDER BY o.placed_at
	`, query.RestaurantID().Bytes(), order.Delivered.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		view, scanErr := scanOrderView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		views = append(views, view)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = attachItems(ctx, h.db, views); err != nil {
		return nil, err
	}

	return views, nil
}
