// Package profilerepo provides data transfer objects and mapping functions
// for profile persistence. Emails are stored lowercased and unique; they are
// the join point between the identity provider and the authorization model.
package profilerepo

import (
	"campuseats/internal/core/domain/model/account"
	"campuseats/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ProfileDTO represents the database structure for persisting profile
// aggregates.
type ProfileDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email        string     `gorm:"uniqueIndex;not null"`
	FirstName    string     `gorm:"not null"`
	LastName     string     `gorm:"not null"`
	PhoneNumber  string
	Role         string     `gorm:"type:varchar(16);not null"`
	RestaurantID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for profile entities.
func (ProfileDTO) TableName() string {
	return "profiles"
}

// fromDomain converts a profile domain aggregate to its database representation.
func fromDomain(aggregate *account.Profile) ProfileDTO {
	var restaurantID *uuid.UUID
	if id := aggregate.RestaurantID(); id != nil {
		raw := id.Bytes()
		restaurantID = &raw
	}

	return ProfileDTO{
		ID:           aggregate.ID().Bytes(),
		Email:        aggregate.Email(),
		FirstName:    aggregate.FirstName(),
		LastName:     aggregate.LastName(),
		PhoneNumber:  aggregate.PhoneNumber(),
		Role:         aggregate.Role().String(),
		RestaurantID: restaurantID,
	}
}

// toDomain converts a database DTO to a profile domain aggregate using
// RestoreProfile.
func toDomain(dto ProfileDTO) (*account.Profile, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var restaurantID *kernel.UUID
	if dto.RestaurantID != nil {
		rID, restaurantErr := kernel.UUIDFromBytes((*dto.RestaurantID)[:])
		if restaurantErr != nil {
			return nil, restaurantErr
		}
		restaurantID = &rID
	}

	role, err := account.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return account.RestoreProfile(
		id,
		dto.Email,
		dto.FirstName,
		dto.LastName,
		dto.PhoneNumber,
		role,
		restaurantID,
	)
}
