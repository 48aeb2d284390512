package queries

import (
	"context"

	"campuseats/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderByNumberQueryHandler retrieves one order, with its restaurant, bot,
// and line items, by its sequential number.
type GetOrderByNumberQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByNumberQueryHandler creates a handler for single-order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderByNumberQueryHandler(db *gorm.DB) GetOrderByNumberQueryHandler {
	return GetOrderByNumberQueryHandler{db: db}
}

// Handle executes the lookup. Returns an ObjectNotFound error when no order
// carries the number.
func (h GetOrderByNumberQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByNumberQuery,
) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderViewColumns+`
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		LEFT JOIN bots b ON b.id = o.bot_id
		WHERE o.order_number = ?
	`, query.OrderNumber()).Rows()
	if err != nil {
		return OrderView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderView{}, err
		}
		return OrderView{}, errs.NewObjectNotFoundError("orderNumber", query.OrderNumber())
	}

	view, err := scanOrderView(rows)
	if err != nil {
		return OrderView{}, err
	}

	views := []OrderView{view}
	if err = attachItems(ctx, h.db, views); err != nil {
		return OrderView{}, err
	}

	return views[0], nil
}
