package account_test

import (
	"testing"

	"campuseats/internal/core/domain/model/account"
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfile(t *testing.T) {
	t.Run("valid user profile", func(t *testing.T) {
		p, err := account.NewProfile(
			kernel.NewUUID(), "Jane.Doe@UT.edu", "Jane", "Doe", "813-555-0101",
			account.RoleUser, nil)

		require.NoError(t, err)
		assert.Equal(t, "jane.doe@ut.edu", p.Email())
		assert.Equal(t, "Jane Doe", p.FullName())
		assert.Equal(t, account.RoleUser, p.Role())
		assert.Nil(t, p.RestaurantID())
	})

	t.Run("restaurant role requires affiliation", func(t *testing.T) {
		_, err := account.NewProfile(
			kernel.NewUUID(), "staff@ut.edu", "Sam", "Cook", "",
			account.RoleRestaurant, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		restaurantID := kernel.NewUUID()
		p, err := account.NewProfile(
			kernel.NewUUID(), "staff@ut.edu", "Sam", "Cook", "",
			account.RoleRestaurant, &restaurantID)
		require.NoError(t, err)
		require.NotNil(t, p.RestaurantID())
		assert.True(t, p.RestaurantID().IsEqual(restaurantID))
	})

	t.Run("non-restaurant role cannot have affiliation", func(t *testing.T) {
		restaurantID := kernel.NewUUID()
		_, err := account.NewProfile(
			kernel.NewUUID(), "jane@ut.edu", "Jane", "Doe", "",
			account.RoleUser, &restaurantID)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		_, err := account.NewProfile(
			kernel.NewUUID(), "", "Jane", "Doe", "", account.RoleUser, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = account.NewProfile(
			kernel.NewUUID(), "jane@ut.edu", "", "Doe", "", account.RoleUser, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = account.NewProfile(
			kernel.NewUUID(), "jane@ut.edu", "Jane", "", "", account.RoleUser, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid role rejected", func(t *testing.T) {
		_, err := account.NewProfile(
			kernel.NewUUID(), "jane@ut.edu", "Jane", "Doe", "", account.RoleUnknown, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestProfile_Rename(t *testing.T) {
	p, err := account.NewProfile(
		kernel.NewUUID(), "jane@ut.edu", "Jane", "Doe", "", account.RoleUser, nil)
	require.NoError(t, err)

	require.NoError(t, p.Rename("Janet", "Doe-Smith", "813-555-0199"))
	assert.Equal(t, "Janet", p.FirstName())
	assert.Equal(t, "Doe-Smith", p.LastName())
	assert.Equal(t, "813-555-0199", p.PhoneNumber())

	require.ErrorIs(t, p.Rename("", "Doe", ""), errs.ErrValueIsRequired)
}

func TestRoleFromString(t *testing.T) {
	for input, want := range map[string]account.Role{
		"USER":       account.RoleUser,
		"ADMIN":      account.RoleAdmin,
		"RESTAURANT": account.RoleRestaurant,
	} {
		got, err := account.RoleFromString(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := account.RoleFromString("user")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestProfile_Validate_NotConstructed(t *testing.T) {
	var p account.Profile
	require.ErrorIs(t, p.Validate(), account.ErrProfileIsNotConstructed)
}
