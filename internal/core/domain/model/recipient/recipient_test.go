package recipient_test

import (
	"testing"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/recipient"
	"fastfeet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecipient(t *testing.T) {
	id := kernel.NewUUID()
	location, err := kernel.NewLocation(-23.5505, -46.6333)
	require.NoError(t, err)

	t.Run("should create valid recipient", func(t *testing.T) {
		r, err := recipient.NewRecipient(id, "  Ana Souza ", "Rua Augusta, 100", location)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.True(t, r.ID().IsEqual(id))
		assert.Equal(t, "Ana Souza", r.Name())
		assert.Equal(t, "Rua Augusta, 100", r.Address())
		assert.True(t, mustEqual(t, location, r.Location()))
	})

	t.Run("should join every validation error", func(t *testing.T) {
		var invalidLocation kernel.Location

		r, err := recipient.NewRecipient(kernel.UUID{}, " ", "", invalidLocation)

		require.Error(t, err)
		assert.Nil(t, r)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "address")
	})

	t.Run("should compare by identity", func(t *testing.T) {
		a, _ := recipient.NewRecipient(id, "A", "addr", location)
		b, _ := recipient.NewRecipient(id, "B", "other", location)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(nil))
	})

	t.Run("should reject zero value", func(t *testing.T) {
		require.ErrorIs(t, (&recipient.Recipient{}).Validate(), recipient.ErrRecipientIsNotConstructed)
	})
}

func mustEqual(t *testing.T, a, b kernel.Location) bool {
	t.Helper()
	eq, err := a.IsEqual(b)
	require.NoError(t, err)
	return eq
}
