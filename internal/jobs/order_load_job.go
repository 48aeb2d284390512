package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"campuseats/internal/core/application/usecases/commands"
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/restaurant"
	"campuseats/internal/core/ports"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/robfig/cron/v3"
)

// campusBuildings are the delivery destinations used for synthetic orders.
var campusBuildings = []string{
	"Plant Hall",
	"Vaughn Center",
	"Sykes Chapel",
	"Macdonald-Kelce Library",
	"Innovation Hall",
	"Fitness Center",
	"Austin Hall",
	"Brevard Hall",
}

// OrderPlacer places an order and returns the assigned order number.
type OrderPlacer interface {
	Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (int, error)
}

// OrderLoadJobConfig tunes the synthetic order generator.
type OrderLoadJobConfig struct {
	// Schedule is the cron spec (with seconds); defaults to once a minute.
	Schedule string

	// OrdersPerTick is how many synthetic orders each tick places.
	OrdersPerTick int

	// CustomerEmails is the pool of demo accounts that place the synthetic
	// orders. The accounts must already exist.
	CustomerEmails []string
}

func (c *OrderLoadJobConfig) applyDefaults() {
	if c.Schedule == "" {
		c.Schedule = "0 * * * * *"
	}
	if c.OrdersPerTick <= 0 {
		c.OrdersPerTick = 2
	}
}

// OrderLoadJob places synthetic orders on a schedule. Restaurants, menu
// selections, and delivery locations are randomized per order; placement goes
// through the real command handler so order numbers, menu validation, and
// notifications behave exactly as they do for live traffic.
type OrderLoadJob struct {
	placer      OrderPlacer
	restaurants ports.RestaurantRepository
	profiles    ports.ProfileRepository
	config      OrderLoadJobConfig
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewOrderLoadJob creates the synthetic order generator.
func NewOrderLoadJob(
	placer OrderPlacer,
	restaurants ports.RestaurantRepository,
	profiles ports.ProfileRepository,
	config OrderLoadJobConfig,
	logger *slog.Logger,
) *OrderLoadJob {
	config.applyDefaults()
	return &OrderLoadJob{
		placer:      placer,
		restaurants: restaurants,
		profiles:    profiles,
		config:      config,
		cron:        cron.New(cron.WithSeconds()),
		logger:      logger.With("component", "order_load_job"),
	}
}

// Start schedules the job.
func (j *OrderLoadJob) Start() error {
	_, err := j.cron.AddFunc(j.config.Schedule, func() {
		ctx := context.Background()
		if err := j.Tick(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order load job tick failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order load job started",
		"schedule", j.config.Schedule, "ordersPerTick", j.config.OrdersPerTick)
	return nil
}

// Stop stops the job.
func (j *OrderLoadJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order load job stopped")
}

// Tick places one batch of synthetic orders. Individual placement failures
// are logged and do not abort the batch.
func (j *OrderLoadJob) Tick(ctx context.Context) error {
	if len(j.config.CustomerEmails) == 0 {
		return fmt.Errorf("no demo customers configured")
	}

	restaurants, err := j.restaurants.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load restaurants: %w", err)
	}
	if len(restaurants) == 0 {
		return fmt.Errorf("no restaurants available")
	}

	for i := 0; i < j.config.OrdersPerTick; i++ {
		if err := j.placeSyntheticOrder(ctx, restaurants); err != nil {
			j.logger.WarnContext(ctx, "Synthetic order placement failed", "error", err)
		}
	}

	return nil
}

func (j *OrderLoadJob) placeSyntheticOrder(
	ctx context.Context,
	restaurants []*restaurant.Restaurant,
) error {
	email := gofakeit.RandomString(j.config.CustomerEmails)
	customer, err := j.profiles.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("resolve demo customer %s: %w", email, err)
	}

	diner := restaurants[gofakeit.Number(0, len(restaurants)-1)]
	menu := diner.MenuItems()
	if len(menu) == 0 {
		return fmt.Errorf("restaurant %s has an empty menu", diner.Name())
	}

	itemCount := gofakeit.Number(1, min(3, len(menu)))
	selections := make([]commands.ItemSelection, 0, itemCount)
	for _, idx := range pickDistinct(len(menu), itemCount) {
		selection, selErr := commands.NewItemSelection(menu[idx].ID(), gofakeit.Number(1, 3))
		if selErr != nil {
			return selErr
		}
		selections = append(selections, selection)
	}

	deliveryLocation := fmt.Sprintf("%s Room %d",
		gofakeit.RandomString(campusBuildings), gofakeit.Number(100, 499))

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(),
		customer.ID(),
		diner.ID(),
		deliveryLocation,
		selections,
	)
	if err != nil {
		return err
	}

	orderNumber, err := j.placer.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	j.logger.InfoContext(ctx, "Synthetic order placed",
		"orderNumber", orderNumber, "restaurant", diner.Name(), "customer", email)
	return nil
}

// pickDistinct returns count distinct indexes in [0, n).
func pickDistinct(n, count int) []int {
	indexes := make([]int, n)
	for i := range indexes {
		indexes[i] = i
	}
	gofakeit.ShuffleInts(indexes)
	return indexes[:count]
}
