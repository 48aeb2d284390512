package restaurant

import (
	"errors"
	"fmt"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/errs"
)

// ErrRestaurantIsNotConstructed is returned when a Restaurant was not created
// through NewRestaurant or RestoreRestaurant.
var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Restaurant is the aggregate root for a campus restaurant and its menu.
type Restaurant struct {
	id        kernel.UUID
	name      string
	location  string
	menuItems []MenuItem

	isConstructed bool
}

// NewRestaurant creates a restaurant with its menu. Every menu item must
// reference this restaurant's id.
func NewRestaurant(id kernel.UUID, name string, location string, menuItems []MenuItem) (*Restaurant, error) {
	r := &Restaurant{isConstructed: true}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setLocation(location),
	); err != nil {
		return nil, err
	}

	if err := r.setMenuItems(menuItems); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRestaurant reconstructs a restaurant from persistence.
func RestoreRestaurant(id kernel.UUID, name string, location string, menuItems []MenuItem) (*Restaurant, error) {
	return NewRestaurant(id, name, location, menuItems)
}

// Validate ensures the Restaurant was created through a constructor.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// Name returns the display name.
func (r *Restaurant) Name() string {
	return r.name
}

// Location returns the on-campus location description.
func (r *Restaurant) Location() string {
	return r.location
}

// MenuItems returns a copy of the menu.
func (r *Restaurant) MenuItems() []MenuItem {
	items := make([]MenuItem, len(r.menuItems))
	copy(items, r.menuItems)
	return items
}

// MenuItem returns the menu item with the given id, or an ObjectNotFound
// error if this restaurant does not carry it.
func (r *Restaurant) MenuItem(id kernel.UUID) (MenuItem, error) {
	for _, item := range r.menuItems {
		if item.ID().IsEqual(id) {
			return item, nil
		}
	}
	return MenuItem{}, errs.NewObjectNotFoundError("menuItemId", id.String())
}

// ValidateMenuSelection checks that every referenced menu item belongs to this
// restaurant. A selection naming another restaurant's item is a validation
// error, not something to silently drop.
func (r *Restaurant) ValidateMenuSelection(menuItemIDs []kernel.UUID) error {
	for _, id := range menuItemIDs {
		if _, err := r.MenuItem(id); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(
				"items", fmt.Errorf("menu item %s does not belong to restaurant %s", id, r.name))
		}
	}
	return nil
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Restaurant) setLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}
	r.location = location
	return nil
}

func (r *Restaurant) setMenuItems(menuItems []MenuItem) error {
	for _, item := range menuItems {
		if err := item.Validate(); err != nil {
			return err
		}
		if !item.RestaurantID().IsEqual(r.id) {
			return errs.NewValueIsInvalidErrorWithCause(
				"menuItems", fmt.Errorf("menu item %s belongs to another restaurant", item.ID()))
		}
	}
	r.menuItems = make([]MenuItem, len(menuItems))
	copy(r.menuItems, menuItems)
	return nil
}
