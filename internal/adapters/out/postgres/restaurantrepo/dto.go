// Package restaurantrepo provides data transfer objects and mapping functions
// for restaurant persistence. A restaurant row owns its menu item rows; the
// aggregate always loads complete.
package restaurantrepo

import (
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RestaurantDTO represents the database structure for persisting restaurant
// aggregates.
type RestaurantDTO struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Name      string        `gorm:"not null"`
	Location  string        `gorm:"not null"`
	MenuItems []MenuItemDTO `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// MenuItemDTO represents one menu item row. Prices are stored as
// decimal(10,2) to avoid floating-point drift on money.
type MenuItemDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Name         string          `gorm:"not null"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

// TableName specifies the database table name for menu item entities.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// fromDomain converts a restaurant domain aggregate to its database representation.
func fromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	menu := aggregate.MenuItems()
	menuDTOs := make([]MenuItemDTO, 0, len(menu))
	for _, item := range menu {
		menuDTOs = append(menuDTOs, MenuItemDTO{
			ID:           item.ID().Bytes(),
			RestaurantID: aggregate.ID().Bytes(),
			Name:         item.Name(),
			Price:        item.Price(),
		})
	}

	return RestaurantDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Location:  aggregate.Location(),
		MenuItems: menuDTOs,
	}
}

// toDomain converts a database DTO to a restaurant domain aggregate.
func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	menu := make([]restaurant.MenuItem, 0, len(dto.MenuItems))
	for _, itemDTO := range dto.MenuItems {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		item, itemErr := restaurant.NewMenuItem(itemID, id, itemDTO.Name, itemDTO.Price)
		if itemErr != nil {
			return nil, itemErr
		}
		menu = append(menu, item)
	}

	return restaurant.RestoreRestaurant(id, dto.Name, dto.Location, menu)
}
