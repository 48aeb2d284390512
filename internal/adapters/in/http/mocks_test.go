package http_test

import (
	"context"

	"campuseats/internal/core/application/usecases/commands"
	"campuseats/internal/core/application/usecases/queries"
	"campuseats/internal/core/domain/model/account"
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// MockIdentityProvider is a mock implementation of ports.IdentityProvider.
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) Authenticate(ctx context.Context, token string) (ports.Identity, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(ports.Identity), args.Error(1)
}

// MockProfileRepository is a mock implementation of ports.ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Add(ctx context.Context, aggregate *account.Profile) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockProfileRepository) Update(ctx context.Context, aggregate *account.Profile) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockProfileRepository) Get(ctx context.Context, id kernel.UUID) (*account.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetByEmail(ctx context.Context, email string) (*account.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Profile), args.Error(1)
}

// MockOrderRepository is a mock implementation of ports.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByNumber(ctx context.Context, orderNumber int) (*order.Order, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) NextOrderNumber(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockOrderRepository) GetOldestInStatus(
	ctx context.Context,
	status order.Status,
	limit int,
) ([]*order.Order, error) {
	args := m.Called(ctx, status, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

// MockOrderPlacer is a mock implementation of the OrderPlacer interface.
type MockOrderPlacer struct {
	mock.Mock
}

func (m *MockOrderPlacer) Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

// MockOrderAdvancer is a mock implementation of the OrderAdvancer interface.
type MockOrderAdvancer struct {
	mock.Mock
}

func (m *MockOrderAdvancer) Handle(ctx context.Context, cmd commands.AdvanceOrderStatusCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

// MockProfileRegistrar is a mock implementation of the ProfileRegistrar interface.
type MockProfileRegistrar struct {
	mock.Mock
}

func (m *MockProfileRegistrar) Handle(ctx context.Context, cmd commands.RegisterProfileCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

// MockRestaurantQueueReader is a mock implementation of RestaurantQueueReader.
type MockRestaurantQueueReader struct {
	mock.Mock
}

func (m *MockRestaurantQueueReader) Handle(
	ctx context.Context,
	query queries.GetRestaurantQueueQuery,
) ([]queries.OrderView, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.OrderView), args.Error(1)
}

// MockUserOrdersReader is a mock implementation of UserOrdersReader.
type MockUserOrdersReader struct {
	mock.Mock
}

func (m *MockUserOrdersReader) Handle(
	ctx context.Context,
	query queries.GetUserOrdersQuery,
) ([]queries.OrderView, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.OrderView), args.Error(1)
}

// MockOrderByNumberReader is a mock implementation of OrderByNumberReader.
type MockOrderByNumberReader struct {
	mock.Mock
}

func (m *MockOrderByNumberReader) Handle(
	ctx context.Context,
	query queries.GetOrderByNumberQuery,
) (queries.OrderView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderView), args.Error(1)
}

// MockRestaurantCatalogReader is a mock implementation of RestaurantCatalogReader.
type MockRestaurantCatalogReader struct {
	mock.Mock
}

func (m *MockRestaurantCatalogReader) Handle(
	ctx context.Context,
	query queries.ListRestaurantsQuery,
) ([]queries.RestaurantView, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.RestaurantView), args.Error(1)
}

// MockProfileByEmailReader is a mock implementation of ProfileByEmailReader.
type MockProfileByEmailReader struct {
	mock.Mock
}

func (m *MockProfileByEmailReader) Handle(
	ctx context.Context,
	query queries.GetProfileByEmailQuery,
) (queries.ProfileView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.ProfileView), args.Error(1)
}
