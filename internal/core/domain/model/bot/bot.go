// Package bot contains the delivery bot aggregate: the autonomous robots that
// carry orders across campus. The lifecycle engine only references bots by id;
// the aggregate exists for seeding, assignment validation, and the order
// detail projection.
package bot

import (
	"errors"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/errs"
)

// ErrBotIsNotConstructed is returned when a Bot was not created through NewBot.
var ErrBotIsNotConstructed = errors.New("Bot must be created via NewBot constructor")

// Bot is a campus delivery robot.
type Bot struct {
	id              kernel.UUID
	name            string
	primaryLocation string

	isConstructed bool
}

// NewBot creates a bot with its home location.
func NewBot(id kernel.UUID, name string, primaryLocation string) (*Bot, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if primaryLocation == "" {
		return nil, errs.NewValueIsRequiredError("primaryLocation")
	}

	return &Bot{
		id:              id,
		name:            name,
		primaryLocation: primaryLocation,
		isConstructed:   true,
	}, nil
}

// RestoreBot reconstructs a bot from persistence.
func RestoreBot(id kernel.UUID, name string, primaryLocation string) (*Bot, error) {
	return NewBot(id, name, primaryLocation)
}

// Validate ensures the Bot was created through a constructor.
func (b *Bot) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBotIsNotConstructed
	}
	return nil
}

// ID returns the bot's unique identifier.
func (b *Bot) ID() kernel.UUID {
	return b.id
}

// Name returns the bot's display name.
func (b *Bot) Name() string {
	return b.name
}

// PrimaryLocation returns the bot's home station.
func (b *Bot) PrimaryLocation() string {
	return b.primaryLocation
}
