//go:build unit

package room_test

import (
	"strings"
	"testing"

	"innbook/internal/domain/pricing"
	"innbook/internal/domain/room"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roomCase struct {
	name        string
	roomType    string
	basePrice   pricing.Money
	description string
	errIs       error
}

func runCases(t *testing.T, cases []roomCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := room.NewRoom(c.roomType, c.basePrice, c.description)
			if c.errIs != nil {
				assert.ErrorIs(t, err, c.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func TestNewRoom(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := room.NewRoom("Deluxe", pricing.NewMoneyFromFloat(120.00), "Sea view")
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Deluxe", actual.RoomType())
		assert.Equal(t, int64(12000), actual.BasePrice().Cents())
		assert.True(t, actual.IsAvailable(), "new rooms start available")
		assert.Equal(t, "Sea view", actual.Description())
	})

	t.Run("room type validation", func(t *testing.T) {
		runCases(t, []roomCase{
			{name: "empty type", roomType: "", basePrice: pricing.NewMoney(1000), errIs: room.ErrEmptyRoomType},
			{name: "whitespace only type", roomType: "   ", basePrice: pricing.NewMoney(1000), errIs: room.ErrEmptyRoomType},
			{name: "type is trimmed", roomType: "  Suite  ", basePrice: pricing.NewMoney(1000)},
		})
	})

	t.Run("base price validation", func(t *testing.T) {
		runCases(t, []roomCase{
			{name: "zero price allowed", roomType: "Single", basePrice: pricing.NewMoney(0)},
			{name: "negative price rejected", roomType: "Single", basePrice: pricing.NewMoney(-1), errIs: room.ErrNegativeBasePrice},
		})
	})

	t.Run("description validation", func(t *testing.T) {
		runCases(t, []roomCase{
			{name: "max length description", roomType: "Single", basePrice: pricing.NewMoney(1000), description: strings.Repeat("a", room.MaxDescriptionLength)},
			{name: "description too long", roomType: "Single", basePrice: pricing.NewMoney(1000), description: strings.Repeat("a", room.MaxDescriptionLength+1), errIs: room.ErrDescriptionTooLong},
		})
	})
}

func TestApplyEdit(t *testing.T) {
	base, err := room.NewRoom("Single", pricing.NewMoney(8000), "")
	require.NoError(t, err)

	t.Run("replaces editable fields", func(t *testing.T) {
		err := base.ApplyEdit("Double", pricing.NewMoney(9500), false, "Renovated")
		require.NoError(t, err)

		assert.Equal(t, "Double", base.RoomType())
		assert.Equal(t, int64(9500), base.BasePrice().Cents())
		assert.False(t, base.IsAvailable())
		assert.Equal(t, "Renovated", base.Description())
	})

	t.Run("can restore availability", func(t *testing.T) {
		err := base.ApplyEdit("Double", pricing.NewMoney(9500), true, "Renovated")
		require.NoError(t, err)
		assert.True(t, base.IsAvailable())
	})

	t.Run("rejects invalid edit without mutating", func(t *testing.T) {
		before := base.RoomType()
		err := base.ApplyEdit("", pricing.NewMoney(9500), true, "")
		assert.ErrorIs(t, err, room.ErrEmptyRoomType)
		assert.Equal(t, before, base.RoomType())
	})
}
