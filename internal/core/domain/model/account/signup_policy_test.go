package account_test

import (
	"testing"

	"campuseats/internal/core/domain/model/account"
	"campuseats/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestSignupPolicy_CheckEmail(t *testing.T) {
	policy := account.NewSignupPolicy(nil) // default campus domains

	t.Run("allow-listed domains pass", func(t *testing.T) {
		require.NoError(t, policy.CheckEmail("student@ut.edu"))
		require.NoError(t, policy.CheckEmail("student@spartans.ut.edu"))
	})

	t.Run("match is case-insensitive", func(t *testing.T) {
		require.NoError(t, policy.CheckEmail("Student@UT.EDU"))
	})

	t.Run("outside domains rejected as invalid input", func(t *testing.T) {
		require.ErrorIs(t, policy.CheckEmail("student@gmail.com"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, policy.CheckEmail("student@ut.edu.evil.com"), errs.ErrValueIsInvalid)
	})

	t.Run("malformed emails rejected", func(t *testing.T) {
		require.ErrorIs(t, policy.CheckEmail("no-at-sign"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, policy.CheckEmail("trailing@"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, policy.CheckEmail("@ut.edu"), errs.ErrValueIsInvalid)
	})

	t.Run("custom allow-list", func(t *testing.T) {
		custom := account.NewSignupPolicy([]string{"example.org"})
		require.NoError(t, custom.CheckEmail("a@example.org"))
		require.Error(t, custom.CheckEmail("a@ut.edu"))
	})
}
