package order_test

import (
	"fmt"
	"testing"

	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []order.Status{
	order.Pending,
	order.PickedUp,
	order.Delivered,
	order.Returned,
}

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.PickedUp))
		assert.Equal(t, 3, int(order.Delivered))
		assert.Equal(t, 4, int(order.Returned))
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range allStatuses {
		t.Run(fmt.Sprintf("should validate %s status", status), func(t *testing.T) {
			require.NoError(t, status.Validate())
		})
	}

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject out of range status", func(t *testing.T) {
		require.Error(t, order.Status(99).Validate())
	})
}

func TestStatus_StringAndParse(t *testing.T) {
	tests := []struct {
		status order.Status
		name   string
	}{
		{order.Pending, "pending"},
		{order.PickedUp, "picked_up"},
		{order.Delivered, "delivered"},
		{order.Returned, "returned"},
	}

	for _, tt := range tests {
		t.Run("should round trip "+tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.status.String())

			parsed, err := order.ParseStatus(tt.name)

			require.NoError(t, err)
			assert.Equal(t, tt.status, parsed)
		})
	}

	t.Run("should render unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "unknown", order.Unknown.String())
		assert.Equal(t, "unknown", order.Status(42).String())
	})

	t.Run("should fail to parse unknown name", func(t *testing.T) {
		parsed, err := order.ParseStatus("lost")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Unknown, parsed)
	})
}

func TestStatus_EventKindTo(t *testing.T) {
	edges := map[[2]order.Status]string{
		{order.Pending, order.PickedUp}:   "order.picked_up",
		{order.PickedUp, order.Delivered}: "order.delivered",
		{order.Pending, order.Returned}:   "order.returned",
		{order.PickedUp, order.Returned}:  "order.returned",
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			expected, isEdge := edges[[2]order.Status{from, to}]

			t.Run(fmt.Sprintf("should map %s to %s", from, to), func(t *testing.T) {
				kind, ok := from.EventKindTo(to)

				assert.Equal(t, isEdge, ok)
				assert.Equal(t, isEdge, from.CanTransitionTo(to))
				if isEdge {
					assert.Equal(t, expected, kind.String())
				}
			})
		}
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.PickedUp.IsTerminal())
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Returned.IsTerminal())
}
