// Command seed resets the database and loads the demo dataset: the two
// campus restaurants with their menus, a small bot fleet, and demo accounts
// for every role. Intended for local development and demo environments only.
package main

import (
	"context"
	"os"

	"campuseats/internal/adapters/out/postgres"
	"campuseats/internal/adapters/out/postgres/botrepo"
	"campuseats/internal/adapters/out/postgres/orderrepo"
	"campuseats/internal/adapters/out/postgres/profilerepo"
	"campuseats/internal/adapters/out/postgres/restaurantrepo"
	"campuseats/internal/core/domain/model/account"
	"campuseats/internal/core/domain/model/bot"
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/restaurant"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type menuItemData struct {
	name  string
	price string
}

type restaurantData struct {
	name      string
	location  string
	menuItems []menuItemData
	staff     string
}

var restaurantsData = []restaurantData{
	{
		name:     "Chick-fil-A",
		location: "University of Tampa - Spartan Shops",
		menuItems: []menuItemData{
			{"Original Chicken Sandwich", "5.29"},
			{"Chick-n-Strips (3 count)", "4.75"},
			{"Spicy Chicken Deluxe Sandwich", "6.25"},
			{"Freshly Brewed Iced Tea (Sweet)", "1.99"},
			{"Chick-fil-A Lemonade", "2.49"},
		},
		staff: "cfa.manager@ut.edu",
	},
	{
		name:     "Aussie Grill",
		location: "University of Tampa - Food Court",
		menuItems: []menuItemData{
			{"Crispy Chicken Sandwich", "7.49"},
			{"BBQ Brisket Sandwich", "8.99"},
			{"Grilled Chicken Caesar Wrap", "7.75"},
			{"House-Made Lemonade", "2.25"},
			{"Bottled Spring Water", "1.75"},
		},
		staff: "aussie.manager@ut.edu",
	},
}

var botNames = []string{"Spartan-1", "Spartan-2", "Spartan-3"}

var demoCustomers = []struct {
	email     string
	firstName string
	lastName  string
}{
	{"sam.torres@ut.edu", "Sam", "Torres"},
	{"riley.nguyen@ut.edu", "Riley", "Nguyen"},
	{"jordan.li@ut.edu", "Jordan", "Li"},
}

func main() {
	_ = godotenv.Load(".env")

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatalf("DB_DSN is not set")
	}

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = db.AutoMigrate(
		&restaurantrepo.RestaurantDTO{},
		&restaurantrepo.MenuItemDTO{},
		&profilerepo.ProfileDTO{},
		&botrepo.BotDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err = db.Exec(
		"TRUNCATE TABLE order_items, orders, menu_items, restaurants, profiles, bots").Error; err != nil {
		log.Fatalf("Failed to reset tables: %v", err)
	}

	ctx := context.Background()
	tracker := postgres.NoopAggregateTracker{}
	restaurants := restaurantrepo.NewGormRestaurantRepository(db, tracker)
	profiles := profilerepo.NewGormProfileRepository(db, tracker)
	bots := botrepo.NewGormBotRepository(db, tracker)

	for _, data := range restaurantsData {
		restaurantID := kernel.NewUUID()

		menu := make([]restaurant.MenuItem, 0, len(data.menuItems))
		for _, itemData := range data.menuItems {
			price, priceErr := decimal.NewFromString(itemData.price)
			if priceErr != nil {
				log.Fatalf("Invalid price %q: %v", itemData.price, priceErr)
			}
			item, itemErr := restaurant.NewMenuItem(kernel.NewUUID(), restaurantID, itemData.name, price)
			if itemErr != nil {
				log.Fatalf("Failed to build menu item %q: %v", itemData.name, itemErr)
			}
			menu = append(menu, item)
		}

		diner, dinerErr := restaurant.NewRestaurant(restaurantID, data.name, data.location, menu)
		if dinerErr != nil {
			log.Fatalf("Failed to build restaurant %q: %v", data.name, dinerErr)
		}
		if err = restaurants.Add(ctx, diner); err != nil {
			log.Fatalf("Failed to seed restaurant %q: %v", data.name, err)
		}

		staff, staffErr := account.NewProfile(
			kernel.NewUUID(), data.staff, data.name, "Manager", "",
			account.RoleRestaurant, &restaurantID)
		if staffErr != nil {
			log.Fatalf("Failed to build staff profile %q: %v", data.staff, staffErr)
		}
		if err = profiles.Add(ctx, staff); err != nil {
			log.Fatalf("Failed to seed staff profile %q: %v", data.staff, err)
		}
	}

	for _, name := range botNames {
		runner, botErr := bot.NewBot(kernel.NewUUID(), name, "Vaughn Center")
		if botErr != nil {
			log.Fatalf("Failed to build bot %q: %v", name, botErr)
		}
		if err = bots.Add(ctx, runner); err != nil {
			log.Fatalf("Failed to seed bot %q: %v", name, err)
		}
	}

	admin, adminErr := account.NewProfile(
		kernel.NewUUID(), "ops@ut.edu", "Dana", "Cole", "",
		account.RoleAdmin, nil)
	if adminErr != nil {
		log.Fatalf("Failed to build admin profile: %v", adminErr)
	}
	if err = profiles.Add(ctx, admin); err != nil {
		log.Fatalf("Failed to seed admin profile: %v", err)
	}

	for _, customer := range demoCustomers {
		profile, profileErr := account.NewProfile(
			kernel.NewUUID(), customer.email, customer.firstName, customer.lastName, "",
			account.RoleUser, nil)
		if profileErr != nil {
			log.Fatalf("Failed to build customer profile %q: %v", customer.email, profileErr)
		}
		if err = profiles.Add(ctx, profile); err != nil {
			log.Fatalf("Failed to seed customer profile %q: %v", customer.email, err)
		}
	}

	log.Infof("Seeded %d restaurants, %d bots, and %d profiles",
		len(restaurantsData), len(botNames), len(demoCustomers)+len(restaurantsData)+1)
}
