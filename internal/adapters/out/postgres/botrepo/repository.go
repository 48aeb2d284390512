package botrepo

import (
	"context"
	"errors"

	"campuseats/internal/core/domain/model/bot"
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBotRepository implements BotRepository using GORM.
type GormBotRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBotRepository creates a new GORM bot repository.
func NewGormBotRepository(db *gorm.DB, tracker aggregateTracker) *GormBotRepository {
	return &GormBotRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new bot to the database.
func (r *GormBotRepository) Add(ctx context.Context, aggregate *bot.Bot) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a bot by ID.
func (r *GormBotRepository) Get(ctx context.Context, id kernel.UUID) (*bot.Bot, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BotDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bot", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
