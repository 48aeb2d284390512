// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Implements the repository pattern for the order domain
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The order number carries a unique constraint: it is the arbiter when two
// concurrent placements compute the same next number.
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber      int        `gorm:"uniqueIndex;not null"`
	RestaurantID     uuid.UUID  `gorm:"type:uuid;index;not null"`
	UserID           uuid.UUID  `gorm:"type:uuid;index;not null"`
	DeliveryLocation string     `gorm:"not null"`
	Status           string     `gorm:"type:varchar(16);index;not null"`
	BotID            *uuid.UUID `gorm:"type:uuid;index"`
	PlacedAt         time.Time  `gorm:"not null"`
	UpdatedAt        time.Time  `gorm:"not null"`
	Items            []ItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line. Lines are frozen at placement and never
// updated afterwards.
type ItemDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index;not null"`
	MenuItemID uuid.UUID `gorm:"type:uuid;index;not null"`
	Quantity   int       `gorm:"not null"`
}

// TableName specifies the database table name for order line entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var botID *uuid.UUID
	if id := aggregate.Bot(); id != nil {
		raw := id.Bytes()
		botID = &raw
	}

	items := aggregate.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			ID:         item.ID().Bytes(),
			OrderID:    aggregate.ID().Bytes(),
			MenuItemID: item.MenuItemID().Bytes(),
			Quantity:   item.Quantity(),
		})
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		OrderNumber:      aggregate.OrderNumber(),
		RestaurantID:     aggregate.RestaurantID().Bytes(),
		UserID:           aggregate.UserID().Bytes(),
		DeliveryLocation: aggregate.DeliveryLocation(),
		Status:           aggregate.Status().String(),
		BotID:            botID,
		PlacedAt:         aggregate.PlacedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
		Items:            itemDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var botID *kernel.UUID
	if dto.BotID != nil {
		bID, botErr := kernel.UUIDFromBytes((*dto.BotID)[:])
		if botErr != nil {
			return nil, botErr
		}
		botID = &bID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		menuItemID, itemErr := kernel.UUIDFromBytes(itemDTO.MenuItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		item, itemErr := order.RestoreItem(itemID, menuItemID, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		restaurantID,
		userID,
		dto.DeliveryLocation,
		status,
		botID,
		items,
		dto.PlacedAt,
		dto.UpdatedAt,
	)
}
