// Package queries contains read-only operations against the database.
// Implements the Query side of the CQRS architecture: handlers bypass the
// domain model and read projections straight from SQL for performance.
package queries

import (
	"context"
	"database/sql"
	"time"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItemView is one order line enriched with the menu item it refers to.
type OrderItemView struct {
	ID           kernel.UUID
	MenuItemID   kernel.UUID
	MenuItemName string
	Price        decimal.Decimal
	Quantity     int
}

// OrderView is the read model shared by the order queries: the order row
// joined with its restaurant, its optional bot, and its line items.
type OrderView struct {
	ID               kernel.UUID
	OrderNumber      int
	RestaurantID     kernel.UUID
	RestaurantName   string
	UserID           kernel.UUID
	DeliveryLocation string
	Status           string
	Active           bool
	BotID            *kernel.UUID
	BotName          string
	PlacedAt         time.Time
	UpdatedAt        time.Time
	Items            []OrderItemView
}

// orderViewColumns is the projection every order query selects; scanOrderView
// depends on this exact column order.
const orderViewColumns = `
	o.id,
	o.order_number,
	o.restaurant_id,
	r.name,
	o.user_id,
	o.delivery_location,
	o.status,
	o.bot_id,
	b.name,
	o.placed_at,
	o.updated_at
`

func scanOrderView(rows *sql.Rows) (OrderView, error) {
	var view OrderView
	var id, restaurantID, userID uuid.UUID
	var botID uuid.NullUUID
	var botName sql.NullString

	err := rows.Scan(
		&id,
		&view.OrderNumber,
		&restaurantID,
		&view.RestaurantName,
		&userID,
		&view.DeliveryLocation,
		&view.Status,
		&botID,
		&botName,
		&view.PlacedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return OrderView{}, err
	}

	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderView{}, err
	}
	if view.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
		return OrderView{}, err
	}
	if view.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
		return OrderView{}, err
	}
	if botID.Valid {
		assigned, idErr := kernel.UUIDFromBytes(botID.UUID[:])
		if idErr != nil {
			return OrderView{}, idErr
		}
		view.BotID = &assigned
	}
	view.BotName = botName.String
	view.Active = view.Status != order.Delivered.String()

	return view, nil
}

// attachItems loads the line items for every order in views with one query
// and distributes them in place.
func attachItems(ctx context.Context, db *gorm.DB, views []OrderView) error {
	if len(views) == 0 {
		return nil
	}

	indexByOrderID := make(map[kernel.UUID]int, len(views))
	orderIDs := make([]uuid.UUID, 0, len(views))
	for i, view := range views {
		indexByOrderID[view.ID] = i
		orderIDs = append(orderIDs, view.ID.Bytes())
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			oi.id,
			oi.order_id,
			oi.menu_item_id,
			mi.name,
			mi.price,
			oi.quantity
		FROM order_items oi
		JOIN menu_items mi ON mi.id = oi.menu_item_id
		WHERE oi.order_id IN ?
		ORDER BY mi.name
	`, orderIDs).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemView
		var id, orderID, menuItemID uuid.UUID

		err = rows.Scan(
			&id,
			&orderID,
			&menuItemID,
			&item.MenuItemName,
			&item.Price,
			&item.Quantity,
		)
		if err != nil {
			return err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return err
		}
		if item.MenuItemID, err = kernel.UUIDFromBytes(menuItemID[:]); err != nil {
			return err
		}

		parentID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return idErr
		}
		if i, ok := indexByOrderID[parentID]; ok {
			views[i].Items = append(views[i].Items, item)
		}
	}

	return rows.Err()
}
