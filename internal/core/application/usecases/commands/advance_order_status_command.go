package commands

import (
	"errors"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/pkg/guard"
)

var (
	ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
		"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
	)
	ErrNoChangesRequested = errors.New("either a target status or a bot assignment is required")
)

// AdvanceOrderStatusCommand represents a restaurant or admin updating an
// order: moving its status one step forward, assigning a delivery bot, or
// both. Either field may be omitted, but not both.
//
// Example:
//
//	target := order.Received
//	cmd, err := NewAdvanceOrderStatusCommand(orderID, &target, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid update: %w", err)
//	}
//
//	handler := NewAdvanceOrderStatusCommandHandler(uowFactory, mailer)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to update order: %w", err)
//	}
type AdvanceOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	targetStatus *order.Status
	botID        *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAdvanceOrderStatusCommand creates a command to update an order.
// Requires at least one of targetStatus and botID; both must be valid when
// present. Whether the status move is legal is decided by the aggregate.
func NewAdvanceOrderStatusCommand(
	orderID kernel.UUID,
	targetStatus *order.Status,
	botID *kernel.UUID,
) (AdvanceOrderStatusCommand, error) {
	statusCommand := AdvanceOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setChanges(targetStatus, botID),
	); err != nil {
		return AdvanceOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceOrderStatusCommandIsNotConstructed if validation fails.
func (c AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being updated.
func (c AdvanceOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TargetStatus returns the requested status, or nil when only the bot changes.
func (c AdvanceOrderStatusCommand) TargetStatus() *order.Status {
	if c.targetStatus == nil {
		return nil
	}
	status := *c.targetStatus
	return &status
}

// BotID returns the bot to assign, or nil when only the status changes.
func (c AdvanceOrderStatusCommand) BotID() *kernel.UUID {
	if c.botID == nil {
		return nil
	}
	id := *c.botID
	return &id
}

func (c *AdvanceOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderStatusCommand) setChanges(targetStatus *order.Status, botID *kernel.UUID) error {
	if targetStatus == nil && botID == nil {
		return ErrNoChangesRequested
	}

	if targetStatus != nil {
		if err := targetStatus.Validate(); err != nil {
			return err
		}
		status := *targetStatus
		c.targetStatus = &status
	}

	if botID != nil {
		if err := botID.Validate(); err != nil {
			return err
		}
		id := *botID
		c.botID = &id
	}

	return nil
}
