package commands_test

import (
	"testing"
	"time"

	"campuseats/internal/core/application/usecases/commands"
	"campuseats/internal/core/domain/model/account"
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/core/domain/model/restaurant"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestCustomer(t *testing.T) *account.Profile {
	t.Helper()
	profile, err := account.NewProfile(
		kernel.NewUUID(), "sam.torres@ut.edu", "Sam", "Torres", "813-555-0101",
		account.RoleUser, nil)
	require.NoError(t, err)
	return profile
}

func newTestRestaurant(t *testing.T) *restaurant.Restaurant {
	t.Helper()
	restaurantID := kernel.NewUUID()
	sandwich, err := restaurant.NewMenuItem(
		kernel.NewUUID(), restaurantID, "Chicken Sandwich", decimal.NewFromFloat(8.29))
	require.NoError(t, err)
	fries, err := restaurant.NewMenuItem(
		kernel.NewUUID(), restaurantID, "Waffle Fries", decimal.NewFromFloat(2.99))
	require.NoError(t, err)

	aggregate, err := restaurant.NewRestaurant(
		restaurantID, "Chick-fil-A", "Vaughn Center", []restaurant.MenuItem{sandwich, fries})
	require.NoError(t, err)
	return aggregate
}

func newTestSelections(t *testing.T, r *restaurant.Restaurant) []commands.ItemSelection {
	t.Helper()
	menu := r.MenuItems()
	selections := make([]commands.ItemSelection, 0, len(menu))
	for _, menuItem := range menu {
		selection, err := commands.NewItemSelection(menuItem.ID(), 1)
		require.NoError(t, err)
		selections = append(selections, selection)
	}
	return selections
}

func newTestOrder(t *testing.T, orderNumber int, userID kernel.UUID, restaurantID kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 1)
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), orderNumber, restaurantID, userID, "Plant Hall",
		[]order.Item{item}, time.Now().UTC())
	require.NoError(t, err)
	return aggregate
}
