package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"campuseats/internal/adapters/out/postgres/orderrepo"
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers to verify persistence behavior,
// in particular the order number unique constraint.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(orderNumber int) *order.Order {
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 2)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		orderNumber,
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Vaughn Center",
		[]order.Item{item},
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_PersistsOrderAndItems() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(1001)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)

	var itemCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.ItemDTO{}).Count(&itemCount).Error)
	suite.Equal(int64(1), itemCount)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateOrderNumber_ReturnsDuplicatedError() {
	ctx := context.Background()

	first := suite.createTestOrder(1001)
	second := suite.createTestOrder(1001)
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()

	suite.Require().NoError(suite.repository.Add(ctx, first))

	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrValueIsDuplicated)

	suite.assertOrderCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsFullAggregate() {
	ctx := context.Background()

	original := suite.createTestOrder(1001)
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(1001, retrieved.OrderNumber())
	suite.Equal(original.RestaurantID(), retrieved.RestaurantID())
	suite.Equal(original.UserID(), retrieved.UserID())
	suite.Equal("Vaughn Center", retrieved.DeliveryLocation())
	suite.Equal(order.Sent, retrieved.Status())
	suite.Nil(retrieved.Bot())
	suite.Len(retrieved.Items(), 1)
	suite.Equal(original.Items()[0].MenuItemID(), retrieved.Items()[0].MenuItemID())
	suite.Equal(2, retrieved.Items()[0].Quantity())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByNumber_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()

	original := suite.createTestOrder(1042)
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.GetByNumber(ctx, 1042)
	suite.Require().NoError(err)
	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(1042, retrieved.OrderNumber())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByNumber_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	_, err := suite.repository.GetByNumber(ctx, 9999)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestNextOrderNumber_EmptyTable_StartsAtMinimum() {
	ctx := context.Background()

	next, err := suite.repository.NextOrderNumber(ctx)
	suite.Require().NoError(err)
	suite.Equal(order.MinOrderNumber, next)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestNextOrderNumber_WithOrders_ReturnsMaxPlusOne() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrder(1001)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrder(1007)))

	next, err := suite.repository.NextOrderNumber(ctx)
	suite.Require().NoError(err)
	suite.Equal(1008, next)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusAndBot_Persisted() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(1001)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	now := time.Now().UTC()
	changed, err := testOrder.AdvanceTo(order.Received, now)
	suite.Require().NoError(err)
	suite.True(changed)

	botID := kernel.NewUUID()
	suite.Require().NoError(testOrder.AssignBot(botID, now))

	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Received, retrieved.Status())
	suite.Require().NotNil(retrieved.Bot())
	suite.Equal(botID, *retrieved.Bot())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFound() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(1001)
	err := suite.repository.Update(ctx, testOrder)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetOldestInStatus_OrdersAndLimits() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Times(3)

	oldest := suite.createTestOrder(1001)
	suite.Require().NoError(suite.repository.Add(ctx, oldest))
	time.Sleep(10 * time.Millisecond)
	middle := suite.createTestOrder(1002)
	suite.Require().NoError(suite.repository.Add(ctx, middle))
	time.Sleep(10 * time.Millisecond)
	newest := suite.createTestOrder(1003)
	suite.Require().NoError(suite.repository.Add(ctx, newest))

	batch, err := suite.repository.GetOldestInStatus(ctx, order.Sent, 2)
	suite.Require().NoError(err)
	suite.Require().Len(batch, 2)
	suite.Equal(1001, batch[0].OrderNumber())
	suite.Equal(1002, batch[1].OrderNumber())

	empty, err := suite.repository.GetOldestInStatus(ctx, order.Shipping, 10)
	suite.Require().NoError(err)
	suite.Empty(empty)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
