package ports

import (
	"context"

	"campuseats/internal/core/domain/model/bot"
	"campuseats/internal/core/domain/model/kernel"
)

// BotRepository defines the persistence contract for delivery bots.
type BotRepository interface {
	// Add persists a new bot.
	Add(ctx context.Context, aggregate *bot.Bot) error

	// Get retrieves a bot by id.
	Get(ctx context.Context, id kernel.UUID) (*bot.Bot, error)
}
