package queries_test

import (
	"context"
	"testing"
	"time"

	"campuseats/internal/adapters/out/postgres/botrepo"
	"campuseats/internal/adapters/out/postgres/orderrepo"
	"campuseats/internal/adapters/out/postgres/profilerepo"
	"campuseats/internal/adapters/out/postgres/restaurantrepo"
	"campuseats/internal/core/application/usecases/queries"
	"campuseats/internal/core/domain/model/account"
	"campuseats/internal/core/domain/model/bot"
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/core/domain/model/restaurant"
	"campuseats/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for integration tests.
type mockAggregateTracker struct{}

func (mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// QueryHandlersIntegrationTestSuite exercises the read side against a real
// PostgreSQL schema: queue ordering, history ordering, item enrichment, and
// not-found behavior.
type QueryHandlersIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB

	orderRepo      *orderrepo.GormOrderRepository
	restaurantRepo *restaurantrepo.GormRestaurantRepository
	profileRepo    *profilerepo.GormProfileRepository
	botRepo        *botrepo.GormBotRepository

	diner    *restaurant.Restaurant
	customer *account.Profile
	runner   *bot.Bot
}

func (suite *QueryHandlersIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&restaurantrepo.RestaurantDTO{},
		&restaurantrepo.MenuItemDTO{},
		&profilerepo.ProfileDTO{},
		&botrepo.BotDTO{},
	))

	tracker := mockAggregateTracker{}
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, tracker)
	suite.restaurantRepo = restaurantrepo.NewGormRestaurantRepository(db, tracker)
	suite.profileRepo = profilerepo.NewGormProfileRepository(db, tracker)
	suite.botRepo = botrepo.NewGormBotRepository(db, tracker)
}

func (suite *QueryHandlersIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, restaurants, menu_items, profiles, bots").Error)

	restaurantID := kernel.NewUUID()
	sandwich, err := restaurant.NewMenuItem(
		kernel.NewUUID(), restaurantID, "Chicken Sandwich", decimal.NewFromFloat(8.29))
	suite.Require().NoError(err)
	fries, err := restaurant.NewMenuItem(
		kernel.NewUUID(), restaurantID, "Waffle Fries", decimal.NewFromFloat(2.99))
	suite.Require().NoError(err)
	suite.diner, err = restaurant.NewRestaurant(
		restaurantID, "Chick-fil-A", "Vaughn Center", []restaurant.MenuItem{sandwich, fries})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.restaurantRepo.Add(ctx, suite.diner))

	suite.customer, err = account.NewProfile(
		kernel.NewUUID(), "sam.torres@ut.edu", "Sam", "Torres", "813-555-0101",
		account.RoleUser, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.profileRepo.Add(ctx, suite.customer))

	suite.runner, err = bot.NewBot(kernel.NewUUID(), "Spartan-1", "Vaughn Center")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.botRepo.Add(ctx, suite.runner))
}

func (suite *QueryHandlersIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

// addOrder persists an order in the given status, placed at the given time.
func (suite *QueryHandlersIntegrationTestSuite) addOrder(
	orderNumber int,
	status order.Status,
	botID *kernel.UUID,
	placedAt time.Time,
) *order.Order {
	menu := suite.diner.MenuItems()
	item, err := order.RestoreItem(kernel.NewUUID(), menu[0].ID(), 2)
	suite.Require().NoError(err)

	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(),
		orderNumber,
		suite.diner.ID(),
		suite.customer.ID(),
		"Plant Hall",
		status,
		botID,
		[]order.Item{item},
		placedAt,
		placedAt,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetRestaurantQueue_ActiveOrdersOldestFirst() {
	ctx := context.Background()
	base := time.Now().UTC().Add(-time.Hour)

	suite.addOrder(1003, order.Sent, nil, base.Add(30*time.Minute))
	suite.addOrder(1001, order.Shipping, nil, base)
	suite.addOrder(1002, order.Delivered, nil, base.Add(15*time.Minute)) // excluded

	query, err := queries.NewGetRestaurantQueueQuery(suite.diner.ID())
	suite.Require().NoError(err)

	handler := queries.NewGetRestaurantQueueQueryHandler(suite.db)
	queue, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(queue, 2)
	suite.Equal(1001, queue[0].OrderNumber)
	suite.Equal(1003, queue[1].OrderNumber)
	suite.Equal("Chick-fil-A", queue[0].RestaurantName)
	suite.True(queue[0].Active)

	suite.Require().Len(queue[0].Items, 1)
	suite.Equal("Chicken Sandwich", queue[0].Items[0].MenuItemName)
	suite.Equal(2, queue[0].Items[0].Quantity)
	suite.True(queue[0].Items[0].Price.Equal(decimal.NewFromFloat(8.29)))
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetUserOrders_NewestFirstWithActiveFlag() {
	ctx := context.Background()
	base := time.Now().UTC().Add(-time.Hour)

	suite.addOrder(1001, order.Delivered, nil, base)
	suite.addOrder(1002, order.Received, nil, base.Add(20*time.Minute))

	query, err := queries.NewGetUserOrdersQuery(suite.customer.ID())
	suite.Require().NoError(err)

	handler := queries.NewGetUserOrdersQueryHandler(suite.db)
	history, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(history, 2)
	suite.Equal(1002, history[0].OrderNumber)
	suite.True(history[0].Active)
	suite.Equal(1001, history[1].OrderNumber)
	suite.False(history[1].Active)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetUserOrders_OtherUsersInvisible() {
	ctx := context.Background()
	suite.addOrder(1001, order.Sent, nil, time.Now().UTC())

	query, err := queries.NewGetUserOrdersQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	handler := queries.NewGetUserOrdersQueryHandler(suite.db)
	history, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Empty(history)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrderByNumber_IncludesBotAndItems() {
	ctx := context.Background()

	botID := suite.runner.ID()
	suite.addOrder(1005, order.Shipping, &botID, time.Now().UTC())

	query, err := queries.NewGetOrderByNumberQuery(1005)
	suite.Require().NoError(err)

	handler := queries.NewGetOrderByNumberQueryHandler(suite.db)
	view, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(1005, view.OrderNumber)
	suite.Equal("SHIPPING", view.Status)
	suite.Equal("Chick-fil-A", view.RestaurantName)
	suite.Require().NotNil(view.BotID)
	suite.Equal(botID, *view.BotID)
	suite.Equal("Spartan-1", view.BotName)
	suite.Require().Len(view.Items, 1)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrderByNumber_NotFound() {
	ctx := context.Background()

	query, err := queries.NewGetOrderByNumberQuery(4242)
	suite.Require().NoError(err)

	handler := queries.NewGetOrderByNumberQueryHandler(suite.db)
	_, err = handler.Handle(ctx, query)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersIntegrationTestSuite) TestListRestaurants_SortedWithMenus() {
	ctx := context.Background()

	otherID := kernel.NewUUID()
	burger, err := restaurant.NewMenuItem(
		kernel.NewUUID(), otherID, "Aussie Burger", decimal.NewFromFloat(9.49))
	suite.Require().NoError(err)
	other, err := restaurant.NewRestaurant(
		otherID, "Aussie Grill", "Vaughn Center", []restaurant.MenuItem{burger})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.restaurantRepo.Add(ctx, other))

	handler := queries.NewListRestaurantsQueryHandler(suite.db)
	catalog, err := handler.Handle(ctx, queries.NewListRestaurantsQuery())
	suite.Require().NoError(err)

	suite.Require().Len(catalog, 2)
	suite.Equal("Aussie Grill", catalog[0].Name)
	suite.Equal("Chick-fil-A", catalog[1].Name)
	suite.Require().Len(catalog[1].Menu, 2)
	suite.Equal("Chicken Sandwich", catalog[1].Menu[0].Name)
	suite.Equal("Waffle Fries", catalog[1].Menu[1].Name)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetProfileByEmail_FoundAndNotFound() {
	ctx := context.Background()

	query, err := queries.NewGetProfileByEmailQuery("Sam.Torres@UT.edu")
	suite.Require().NoError(err)

	handler := queries.NewGetProfileByEmailQueryHandler(suite.db)
	view, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(suite.customer.ID(), view.ID)
	suite.Equal("sam.torres@ut.edu", view.Email)
	suite.Equal("USER", view.Role)
	suite.Nil(view.RestaurantID)

	missing, err := queries.NewGetProfileByEmailQuery("nobody@ut.edu")
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, missing)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestQueryHandlersIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersIntegrationTestSuite))
}
