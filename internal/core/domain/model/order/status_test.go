package order_test

import (
	"testing"

	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	for _, s := range []order.Status{order.Sent, order.Received, order.Shipping, order.Delivered} {
		require.NoError(t, s.Validate(), s.String())
	}

	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(99).Validate())
}

func TestStatusFromString(t *testing.T) {
	cases := map[string]order.Status{
		"SENT":      order.Sent,
		"RECEIVED":  order.Received,
		"SHIPPING":  order.Shipping,
		"DELIVERED": order.Delivered,
	}
	for input, want := range cases {
		got, err := order.StatusFromString(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	for _, input := range []string{"", "sent", "PENDING", "CANCELLED"} {
		_, err := order.StatusFromString(input)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid, input)
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "SENT", order.Sent.String())
	assert.Equal(t, "DELIVERED", order.Delivered.String())
	assert.Equal(t, "UNKNOWN", order.Unknown.String())
	assert.Equal(t, "UNKNOWN", order.Status(42).String())
}

func TestStatus_TransitionTo_ForwardOnly(t *testing.T) {
	t.Run("each status advances to its successor only", func(t *testing.T) {
		steps := []struct{ from, to order.Status }{
			{order.Sent, order.Received},
			{order.Received, order.Shipping},
			{order.Shipping, order.Delivered},
		}
		for _, step := range steps {
			got, changed, err := step.from.TransitionTo(step.to)
			require.NoError(t, err)
			assert.True(t, changed)
			assert.Equal(t, step.to, got)
		}
	})

	t.Run("same status is an idempotent no-op", func(t *testing.T) {
		got, changed, err := order.Shipping.TransitionTo(order.Shipping)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, order.Shipping, got)
	})

	t.Run("skips are rejected", func(t *testing.T) {
		_, _, err := order.Sent.TransitionTo(order.Shipping)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, _, err = order.Sent.TransitionTo(order.Delivered)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("backward moves are rejected", func(t *testing.T) {
		_, _, err := order.Shipping.TransitionTo(order.Received)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, _, err = order.Delivered.TransitionTo(order.Sent)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("delivered is terminal", func(t *testing.T) {
		assert.True(t, order.Delivered.IsTerminal())

		_, _, err := order.Delivered.TransitionTo(order.Shipping)
		require.Error(t, err)

		// Idempotent re-delivery is still a harmless no-op.
		_, changed, err := order.Delivered.TransitionTo(order.Delivered)
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("unknown targets are rejected", func(t *testing.T) {
		_, _, err := order.Sent.TransitionTo(order.Unknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, _, err = order.Sent.TransitionTo(order.Status(99))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Next(t *testing.T) {
	next, err := order.Sent.Next()
	require.NoError(t, err)
	assert.Equal(t, order.Received, next)

	next, err = order.Shipping.Next()
	require.NoError(t, err)
	assert.Equal(t, order.Delivered, next)

	_, err = order.Delivered.Next()
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
