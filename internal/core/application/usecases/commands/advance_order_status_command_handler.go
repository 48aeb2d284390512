package commands

import (
	"context"
	"log/slog"
	"time"

	"campuseats/internal/core/ports"
)

// AdvanceOrderStatusCommandHandler handles the business logic for order
// updates. Applies the one-step status transition through the aggregate,
// verifies any bot assignment against the bot roster, and notifies the
// customer when, and only when, the status actually changed.
//
// Example:
//
//	handler := NewAdvanceOrderStatusCommandHandler(uowFactory, mailer)
//	target := order.Shipping
//	cmd, _ := NewAdvanceOrderStatusCommand(orderID, &target, &botID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order update failed: %w", err)
//	}
type AdvanceOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	dispatcher ports.NotificationDispatcher
}

// NewAdvanceOrderStatusCommandHandler creates a handler for order update
// operations. Requires a UoWFactory spanning orders, bots, and the lookup
// data needed for notifications.
func NewAdvanceOrderStatusCommandHandler(
	uowFactory UoWFactory,
	dispatcher ports.NotificationDispatcher,
) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the order update command.
//
// Re-submitting the order's current status is an accepted no-op: the order is
// persisted untouched and no notification goes out. Illegal moves roll the
// transaction back with a validation error. A requested bot must exist.
// Notification dispatch failures are logged and swallowed; the committed
// update stands.
func (h AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	changed := false

	if target := cmd.TargetStatus(); target != nil {
		changed, err = aggregate.AdvanceTo(*target, now)
		if err != nil {
			return err
		}
	}

	if botID := cmd.BotID(); botID != nil {
		if _, err = uow.BotRepository().Get(ctx, *botID); err != nil {
			return err
		}
		if err = aggregate.AssignBot(*botID, now); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	var notification ports.StatusNotification
	if changed {
		profile, profileErr := uow.ProfileRepository().Get(ctx, aggregate.UserID())
		if profileErr != nil {
			return profileErr
		}
		restaurant, restaurantErr := uow.RestaurantRepository().Get(ctx, aggregate.RestaurantID())
		if restaurantErr != nil {
			return restaurantErr
		}

		notification = ports.StatusNotification{
			RecipientEmail:   profile.Email(),
			RecipientName:    profile.FullName(),
			OrderNumber:      aggregate.OrderNumber(),
			Status:           aggregate.Status(),
			RestaurantName:   restaurant.Name(),
			DeliveryLocation: aggregate.DeliveryLocation(),
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if changed {
		if err = h.dispatcher.DispatchStatusChange(ctx, notification); err != nil {
			slog.WarnContext(ctx, "order notification dispatch failed",
				"orderNumber", notification.OrderNumber,
				"status", notification.Status.String(),
				"error", err)
		}
	}

	return nil
}
