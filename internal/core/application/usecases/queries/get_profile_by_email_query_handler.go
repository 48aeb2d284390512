package queries

import (
	"context"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProfileByEmailQueryHandler retrieves one profile by email from the
// database.
type GetProfileByEmailQueryHandler struct {
	db *gorm.DB
}

// NewGetProfileByEmailQueryHandler creates a handler for profile lookups.
// Requires a GORM database connection for query execution.
func NewGetProfileByEmailQueryHandler(db *gorm.DB) GetProfileByEmailQueryHandler {
	return GetProfileByEmailQueryHandler{db: db}
}

// Handle executes the lookup. Returns an ObjectNotFound error when no profile
// carries the email.
func (h GetProfileByEmailQueryHandler) Handle(
	ctx context.Context,
	query GetProfileByEmailQuery,
) (ProfileView, error) {
	if err := query.Validate(); err != nil {
		return ProfileView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			email,
			first_name,
			last_name,
			phone_number,
			role,
			restaurant_id
		FROM profiles
		WHERE email = ?
	`, query.Email()).Rows()
	if err != nil {
		return ProfileView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ProfileView{}, err
		}
		return ProfileView{}, errs.NewObjectNotFoundError("email", query.Email())
	}

	var view ProfileView
	var id uuid.UUID
	var restaurantID uuid.NullUUID

	err = rows.Scan(
		&id,
		&view.Email,
		&view.FirstName,
		&view.LastName,
		&view.PhoneNumber,
		&view.Role,
		&restaurantID,
	)
	if err != nil {
		return ProfileView{}, err
	}

	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return ProfileView{}, err
	}
	if restaurantID.Valid {
		affiliated, idErr := kernel.UUIDFromBytes(restaurantID.UUID[:])
		if idErr != nil {
			return ProfileView{}, idErr
		}
		view.RestaurantID = &affiliated
	}

	return view, nil
}
