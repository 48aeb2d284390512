package jobs

import (
	"context"
	"log/slog"

	"campuseats/internal/core/application/usecases/commands"
	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// OrderAdvancer applies a status transition to one order.
type OrderAdvancer interface {
	Handle(ctx context.Context, cmd commands.AdvanceOrderStatusCommand) error
}

// FulfillmentJobConfig tunes the fulfillment simulation.
type FulfillmentJobConfig struct {
	// Schedule is the cron spec (with seconds); defaults to every 30 seconds.
	Schedule string

	// BatchSize is how many orders per status each tick advances.
	BatchSize int
}

func (c *FulfillmentJobConfig) applyDefaults() {
	if c.Schedule == "" {
		c.Schedule = "*/30 * * * * *"
	}
	if c.BatchSize <= 0 {
		c.BatchSize = 5
	}
}

// FulfillmentJob advances the oldest orders of each active status one
// lifecycle step per tick, so synthetic orders drift toward DELIVERED the
// way a staffed kitchen would move them. Statuses are worked from most
// advanced to least so no order moves twice in one tick.
type FulfillmentJob struct {
	advancer OrderAdvancer
	orders   ports.OrderRepository
	config   FulfillmentJobConfig
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewFulfillmentJob creates the fulfillment simulation job.
func NewFulfillmentJob(
	advancer OrderAdvancer,
	orders ports.OrderRepository,
	config FulfillmentJobConfig,
	logger *slog.Logger,
) *FulfillmentJob {
	config.applyDefaults()
	return &FulfillmentJob{
		advancer: advancer,
		orders:   orders,
		config:   config,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "fulfillment_job"),
	}
}

// Start schedules the job.
func (j *FulfillmentJob) Start() error {
	_, err := j.cron.AddFunc(j.config.Schedule, func() {
		ctx := context.Background()
		if err := j.Tick(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Fulfillment job tick failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Fulfillment job started",
		"schedule", j.config.Schedule, "batchSize", j.config.BatchSize)
	return nil
}

// Stop stops the job.
func (j *FulfillmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Fulfillment job stopped")
}

// Tick advances one batch per active status. Individual advance failures are
// logged and do not abort the batch; the transition validator in the command
// handler guarantees every move is a single legal step.
func (j *FulfillmentJob) Tick(ctx context.Context) error {
	// Most advanced status first: an order advanced to SHIPPING in this
	// tick must not be picked up again by the SHIPPING batch.
	for _, status := range []order.Status{order.Shipping, order.Received, order.Sent} {
		if err := j.advanceBatch(ctx, status); err != nil {
			return err
		}
	}
	return nil
}

func (j *FulfillmentJob) advanceBatch(ctx context.Context, status order.Status) error {
	batch, err := j.orders.GetOldestInStatus(ctx, status, j.config.BatchSize)
	if err != nil {
		return err
	}

	next, err := status.Next()
	if err != nil {
		return err
	}

	for _, aggregate := range batch {
		cmd, cmdErr := commands.NewAdvanceOrderStatusCommand(aggregate.ID(), &next, nil)
		if cmdErr != nil {
			return cmdErr
		}
		if handleErr := j.advancer.Handle(ctx, cmd); handleErr != nil {
			j.logger.WarnContext(ctx, "Order advance failed",
				"orderNumber", aggregate.OrderNumber(),
				"from", status.String(), "to", next.String(),
				"error", handleErr)
			continue
		}
		j.logger.InfoContext(ctx, "Order advanced",
			"orderNumber", aggregate.OrderNumber(),
			"from", status.String(), "to", next.String())
	}

	return nil
}
