package ports

import (
	"context"

	"campuseats/internal/core/domain/model/account"
	"campuseats/internal/core/domain/model/kernel"
)

// ProfileRepository defines the persistence contract for profile aggregates.
// Profiles are keyed by id but looked up by email for every authorization
// decision; the email column is unique and stored lowercased.
type ProfileRepository interface {
	// Add persists a new profile. Returns a ValueIsDuplicated error when
	// the email already exists.
	Add(ctx context.Context, aggregate *account.Profile) error

	// Update persists changes to an existing profile.
	Update(ctx context.Context, aggregate *account.Profile) error

	// Get retrieves a profile by id.
	Get(ctx context.Context, id kernel.UUID) (*account.Profile, error)

	// GetByEmail retrieves a profile by email, case-insensitively.
	GetByEmail(ctx context.Context, email string) (*account.Profile, error)
}
