// Package botrepo provides data transfer objects and mapping functions for
// delivery bot persistence.
package botrepo

import (
	"campuseats/internal/core/domain/model/bot"
	"campuseats/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BotDTO represents the database structure for persisting bot aggregates.
type BotDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"not null"`
	PrimaryLocation string    `gorm:"not null"`
}

// TableName specifies the database table name for bot entities.
func (BotDTO) TableName() string {
	return "bots"
}

// fromDomain converts a bot domain aggregate to its database representation.
func fromDomain(aggregate *bot.Bot) BotDTO {
	return BotDTO{
		ID:              aggregate.ID().Bytes(),
		Name:            aggregate.Name(),
		PrimaryLocation: aggregate.PrimaryLocation(),
	}
}

// toDomain converts a database DTO to a bot domain aggregate.
func toDomain(dto BotDTO) (*bot.Bot, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return bot.RestoreBot(id, dto.Name, dto.PrimaryLocation)
}
