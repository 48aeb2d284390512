package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/core/ports"
	"campuseats/internal/pkg/errs"
)

// maxOrderNumberAttempts bounds retries when two placements race for the same
// order number. The number column's unique constraint detects the collision;
// losers re-read max+1 and try again.
const maxOrderNumberAttempts = 3

// PlaceOrderCommandHandler handles the business logic for order placement.
// Assigns the next sequential order number, validates the cart against the
// restaurant's menu, and notifies the customer once the order is committed.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, mailer)
//	cmd, _ := NewPlaceOrderCommand(kernel.NewUUID(), userID, restaurantID, "Plant Hall", selections)
//
//	orderNumber, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	fmt.Printf("order #%d placed", orderNumber)
type PlaceOrderCommandHandler struct {
	uowFactory PlaceOrderUoWFactory
	dispatcher ports.NotificationDispatcher
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a PlaceOrderUoWFactory for transactional persistence and a
// NotificationDispatcher for the post-commit customer notification.
func NewPlaceOrderCommandHandler(
	uowFactory PlaceOrderUoWFactory,
	dispatcher ports.NotificationDispatcher,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the order placement command and returns the assigned
// order number.
//
// Each attempt reads max(order_number)+1 and inserts inside one transaction;
// a unique-constraint collision with a concurrent placement rolls back and
// retries with a fresh number, up to maxOrderNumberAttempts. The customer
// notification is dispatched after commit and its failure never fails the
// placement.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	var lastErr error
	for attempt := 0; attempt < maxOrderNumberAttempts; attempt++ {
		orderNumber, notification, err := h.place(ctx, cmd)
		if errors.Is(err, errs.ErrValueIsDuplicated) {
			lastErr = err
			continue
		}
		if err != nil {
			return 0, err
		}

		h.notify(ctx, notification)
		return orderNumber, nil
	}

	return 0, lastErr
}

func (h PlaceOrderCommandHandler) place(
	ctx context.Context,
	cmd PlaceOrderCommand,
) (int, ports.StatusNotification, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, ports.StatusNotification{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	profile, err := uow.ProfileRepository().Get(ctx, cmd.UserID())
	if err != nil {
		return 0, ports.StatusNotification{}, placementReferenceError("userId", err)
	}

	restaurant, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return 0, ports.StatusNotification{}, placementReferenceError("restaurantId", err)
	}

	selections := cmd.Items()
	menuItemIDs := make([]kernel.UUID, 0, len(selections))
	for _, selection := range selections {
		menuItemIDs = append(menuItemIDs, selection.MenuItemID())
	}
	if err = restaurant.ValidateMenuSelection(menuItemIDs); err != nil {
		return 0, ports.StatusNotification{}, err
	}

	items := make([]order.Item, 0, len(selections))
	for _, selection := range selections {
		item, itemErr := order.NewItem(kernel.NewUUID(), selection.MenuItemID(), selection.Quantity())
		if itemErr != nil {
			return 0, ports.StatusNotification{}, itemErr
		}
		items = append(items, item)
	}

	orderRepo := uow.OrderRepository()
	orderNumber, err := orderRepo.NextOrderNumber(ctx)
	if err != nil {
		return 0, ports.StatusNotification{}, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		orderNumber,
		cmd.RestaurantID(),
		cmd.UserID(),
		cmd.DeliveryLocation(),
		items,
		time.Now().UTC(),
	)
	if err != nil {
		return 0, ports.StatusNotification{}, err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return 0, ports.StatusNotification{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, ports.StatusNotification{}, err
	}

	notification := ports.StatusNotification{
		RecipientEmail:   profile.Email(),
		RecipientName:    profile.FullName(),
		OrderNumber:      orderNumber,
		Status:           order.Sent,
		RestaurantName:   restaurant.Name(),
		DeliveryLocation: cmd.DeliveryLocation(),
	}

	return orderNumber, notification, nil
}

// placementReferenceError reclassifies a missing referenced aggregate as
// invalid input: a checkout naming an unknown restaurant or user is a bad
// request, not a miss on a resource the caller asked to read.
func placementReferenceError(paramName string, err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return err
}

func (h PlaceOrderCommandHandler) notify(ctx context.Context, notification ports.StatusNotification) {
	if err := h.dispatcher.DispatchStatusChange(ctx, notification); err != nil {
		slog.WarnContext(ctx, "order notification dispatch failed",
			"orderNumber", notification.OrderNumber,
			"status", notification.Status.String(),
			"error", err)
	}
}
