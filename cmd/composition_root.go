package cmd

import (
	"log/slog"

	adapterhttp "campuseats/internal/adapters/in/http"
	"campuseats/internal/adapters/out/identity"
	"campuseats/internal/adapters/out/postgres"
	"campuseats/internal/adapters/out/postgres/orderrepo"
	"campuseats/internal/adapters/out/postgres/profilerepo"
	"campuseats/internal/adapters/out/postgres/restaurantrepo"
	"campuseats/internal/adapters/out/smtp"
	"campuseats/internal/core/application/usecases/commands"
	"campuseats/internal/core/application/usecases/queries"
	"campuseats/internal/core/domain/model/account"
	"campuseats/internal/core/domain/services"
	"campuseats/internal/core/ports"
	"campuseats/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use cases. Every Create method hands
// out a ready-to-use handler; the root itself owns only the shared pieces
// (database handle, unit-of-work factory, dispatcher, identity provider).
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	dispatcher ports.NotificationDispatcher
	identity   ports.IdentityProvider
}

// NewCompositionRoot builds the root. The SMTP mailer is only constructed
// when a host is configured; otherwise notifications are dropped.
func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	dispatcher := ports.NotificationDispatcher(smtp.NewNoopDispatcher())
	if config.SMTPHost != "" {
		mailer, err := smtp.NewMailer(smtp.Config{
			Host:     config.SMTPHost,
			Port:     config.SMTPPort,
			Username: config.SMTPUsername,
			Password: config.SMTPPassword,
			From:     config.SMTPFrom,
		})
		if err != nil {
			return CompositionRoot{}, err
		}
		dispatcher = mailer
	}

	provider, err := identity.NewJWTProvider(config.JWTSecret)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		dispatcher: dispatcher,
		identity:   provider,
	}, nil
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlaceOrderUoWFactory = FuncPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderStatusCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateRegisterProfileCommandHandler() commands.RegisterProfileCommandHandler {
	var f commands.ProfileUoWFactory = FuncProfileUoWFactory(func() commands.ProfileUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterProfileCommandHandler(f, account.NewSignupPolicy(c.config.AllowedEmailDomains))
}

func (c *CompositionRoot) CreateGetRestaurantQueueQueryHandler() queries.GetRestaurantQueueQueryHandler {
	return queries.NewGetRestaurantQueueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByNumberQueryHandler() queries.GetOrderByNumberQueryHandler {
	return queries.NewGetOrderByNumberQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListRestaurantsQueryHandler() queries.ListRestaurantsQueryHandler {
	return queries.NewListRestaurantsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProfileByEmailQueryHandler() queries.GetProfileByEmailQueryHandler {
	return queries.NewGetProfileByEmailQueryHandler(c.gormDB)
}

// CreateOrderRepository returns an order repository bound to the main
// connection, for read-only use outside a unit of work.
func (c *CompositionRoot) CreateOrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(c.gormDB, postgres.NoopAggregateTracker{})
}

// CreateProfileRepository returns a profile repository bound to the main
// connection, for read-only use outside a unit of work.
func (c *CompositionRoot) CreateProfileRepository() ports.ProfileRepository {
	return profilerepo.NewGormProfileRepository(c.gormDB, postgres.NoopAggregateTracker{})
}

// CreateRestaurantRepository returns a restaurant repository bound to the
// main connection, for read-only use outside a unit of work.
func (c *CompositionRoot) CreateRestaurantRepository() ports.RestaurantRepository {
	return restaurantrepo.NewGormRestaurantRepository(c.gormDB, postgres.NoopAggregateTracker{})
}

// CreateHTTPServer wires the REST adapter with every handler it serves.
func (c *CompositionRoot) CreateHTTPServer() *adapterhttp.Server {
	placeOrder := c.CreatePlaceOrderCommandHandler()
	advanceOrder := c.CreateAdvanceOrderStatusCommandHandler()
	registerProfile := c.CreateRegisterProfileCommandHandler()

	return adapterhttp.NewServer(
		placeOrder,
		advanceOrder,
		registerProfile,
		c.CreateGetRestaurantQueueQueryHandler(),
		c.CreateGetUserOrdersQueryHandler(),
		c.CreateGetOrderByNumberQueryHandler(),
		c.CreateListRestaurantsQueryHandler(),
		c.CreateGetProfileByEmailQueryHandler(),
		c.CreateOrderRepository(),
		services.NewAccessPolicy(),
	)
}

// CreateAuthMiddleware wires the bearer-token middleware with the identity
// provider and the profile lookup.
func (c *CompositionRoot) CreateAuthMiddleware() echo.MiddlewareFunc {
	return adapterhttp.NewAuthMiddleware(c.identity, c.CreateProfileRepository())
}

// CreateJobManager wires the background jobs enabled by configuration.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	var loadJob *jobs.OrderLoadJob
	if c.config.OrderLoadJobEnabled {
		placeOrder := c.CreatePlaceOrderCommandHandler()
		loadJob = jobs.NewOrderLoadJob(
			placeOrder,
			c.CreateRestaurantRepository(),
			c.CreateProfileRepository(),
			jobs.OrderLoadJobConfig{
				Schedule:       c.config.OrderLoadJobSchedule,
				OrdersPerTick:  c.config.OrderLoadJobOrdersPerTick,
				CustomerEmails: c.config.OrderLoadJobCustomerEmails,
			},
			logger,
		)
	}

	var fulfillmentJob *jobs.FulfillmentJob
	if c.config.FulfillmentJobEnabled {
		advanceOrder := c.CreateAdvanceOrderStatusCommandHandler()
		fulfillmentJob = jobs.NewFulfillmentJob(
			advanceOrder,
			c.CreateOrderRepository(),
			jobs.FulfillmentJobConfig{
				Schedule:  c.config.FulfillmentJobSchedule,
				BatchSize: c.config.FulfillmentJobBatchSize,
			},
			logger,
		)
	}

	return jobs.NewJobManager(loadJob, fulfillmentJob)
}

type FuncProfileUoWFactory func() commands.ProfileUoW

func (f FuncProfileUoWFactory) Create() commands.ProfileUoW {
	return f()
}

type FuncPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f FuncPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
