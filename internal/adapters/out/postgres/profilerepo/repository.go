package profilerepo

import (
	"context"
	"errors"
	"strings"

	"campuseats/internal/core/domain/model/account"
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// GormProfileRepository implements ProfileRepository using GORM.
type GormProfileRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProfileRepository creates a new GORM profile repository.
func NewGormProfileRepository(db *gorm.DB, tracker aggregateTracker) *GormProfileRepository {
	return &GormProfileRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new profile to the database. A collision on the email's unique
// constraint comes back as a ValueIsDuplicated error.
func (r *GormProfileRepository) Add(ctx context.Context, aggregate *account.Profile) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return errs.NewValueIsDuplicatedErrorWithCause("email", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing profile to the database.
func (r *GormProfileRepository) Update(ctx context.Context, aggregate *account.Profile) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ProfileDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"first_name":   dto.FirstName,
		"last_name":    dto.LastName,
		"phone_number": dto.PhoneNumber,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("profile", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a profile by ID.
func (r *GormProfileRepository) Get(ctx context.Context, id kernel.UUID) (*account.Profile, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProfileDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("profile", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves a profile by email, case-insensitively.
func (r *GormProfileRepository) GetByEmail(ctx context.Context, email string) (*account.Profile, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	var dto ProfileDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", normalized).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("email", normalized)
		}
		return nil, err
	}

	return toDomain(dto)
}
