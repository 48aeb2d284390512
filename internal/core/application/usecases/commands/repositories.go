// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"campuseats/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProfileRepoFactory provides access to the profile repository within a transaction.
	ProfileRepoFactory interface {
		ProfileRepository() ports.ProfileRepository
	}

	// RestaurantRepoFactory provides access to the restaurant repository within a transaction.
	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	// BotRepoFactory provides access to the bot repository within a transaction.
	BotRepoFactory interface {
		BotRepository() ports.BotRepository
	}

	// ProfileUoW manages transactions for profile-only operations.
	// Used by registration, which never touches orders.
	ProfileUoW interface {
		TxManager
		ProfileRepoFactory
	}

	// ProfileUoWFactory creates new profile unit of work instances.
	ProfileUoWFactory interface {
		Create() ProfileUoW
	}

	// PlaceOrderUoW manages transactions for order placement. Placement reads
	// the restaurant menu and the customer profile and writes the order, all
	// within one transaction.
	PlaceOrderUoW interface {
		TxManager
		OrderRepoFactory
		RestaurantRepoFactory
		ProfileRepoFactory
	}

	// PlaceOrderUoWFactory creates new place-order unit of work instances.
	PlaceOrderUoWFactory interface {
		Create() PlaceOrderUoW
	}

	// UoW manages transactions across every aggregate type. Used by status
	// updates, which may touch the order, its bot, and the lookup data needed
	// to notify the customer.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   botRepo := uow.BotRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		RestaurantRepoFactory
		ProfileRepoFactory
		BotRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
