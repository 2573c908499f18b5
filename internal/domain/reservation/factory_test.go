//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"innbook/internal/domain/pricing"
	"innbook/internal/domain/reservation"
	"innbook/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFactoryAt(t time.Time) *reservation.Factory {
	return reservation.NewFactory(clock.NewMockClock(t), pricing.NewSeasonalCalculator())
}

func TestCreateReservation(t *testing.T) {
	roomID := uuid.New()
	userID := uuid.New()
	stay := reservation.NewStayRange(
		time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 4, 0, 0, 0, 0, time.UTC),
	)

	t.Run("prices the stay at the booking date's seasonal rate", func(t *testing.T) {
		december := time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC)
		factory := newFactoryAt(december)

		res, err := factory.CreateReservation(
			reservation.RoomSpec{ID: roomID, BasePrice: pricing.NewMoneyFromFloat(100.00)},
			userID, stay, "card",
		)
		require.NoError(t, err)

		assert.Equal(t, int64(14000), res.NightlyPrice().Cents())
		assert.Equal(t, int64(3), res.Nights())
		assert.Equal(t, int64(42000), res.Subtotal().Cents())
		assert.Equal(t, int64(4200), res.TaxAmount().Cents())
		assert.Equal(t, int64(46200), res.TotalPrice().Cents())
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
		assert.Equal(t, december, res.CreatedAt())
	})

	t.Run("off-season booking carries no surge", func(t *testing.T) {
		factory := newFactoryAt(time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC))

		res, err := factory.CreateReservation(
			reservation.RoomSpec{ID: roomID, BasePrice: pricing.NewMoneyFromFloat(100.00)},
			userID, stay, "",
		)
		require.NoError(t, err)

		assert.Equal(t, int64(10000), res.NightlyPrice().Cents())
		assert.Equal(t, res.Subtotal().Add(res.TaxAmount()), res.TotalPrice())
	})

	t.Run("payment token marks the reservation paid", func(t *testing.T) {
		factory := newFactoryAt(time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC))
		spec := reservation.RoomSpec{ID: roomID, BasePrice: pricing.NewMoney(5000)}

		paid, err := factory.CreateReservation(spec, userID, stay, "tok_visa")
		require.NoError(t, err)
		assert.True(t, paid.Paid())

		unpaid, err := factory.CreateReservation(spec, userID, stay, "")
		require.NoError(t, err)
		assert.False(t, unpaid.Paid())

		// Only the empty string means "no token"; whitespace counts.
		blank, err := factory.CreateReservation(spec, userID, stay, "   ")
		require.NoError(t, err)
		assert.True(t, blank.Paid())
	})

	t.Run("rejects negative base price", func(t *testing.T) {
		factory := newFactoryAt(time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC))

		_, err := factory.CreateReservation(
			reservation.RoomSpec{ID: roomID, BasePrice: pricing.NewMoney(-1)},
			userID, stay, "",
		)
		assert.ErrorIs(t, err, reservation.ErrNegativePrice)
	})
}

func TestNewReservationInvariants(t *testing.T) {
	stay := reservation.NewStayRange(
		time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 2, 0, 0, 0, 0, time.UTC),
	)
	now := time.Now()

	t.Run("total must equal subtotal plus tax", func(t *testing.T) {
		_, err := reservation.NewReservation(
			uuid.New(), uuid.New(), stay,
			pricing.NewMoney(10000), 1,
			pricing.NewMoney(10000), pricing.NewMoney(1000), pricing.NewMoney(11001),
			false, now,
		)
		assert.ErrorIs(t, err, reservation.ErrBrokenPriceTotal)
	})

	t.Run("nights below one rejected", func(t *testing.T) {
		_, err := reservation.NewReservation(
			uuid.New(), uuid.New(), stay,
			pricing.NewMoney(10000), 0,
			pricing.NewMoney(0), pricing.NewMoney(0), pricing.NewMoney(0),
			false, now,
		)
		assert.ErrorIs(t, err, reservation.ErrInvalidNights)
	})

	t.Run("ids are unique per reservation", func(t *testing.T) {
		mk := func() uuid.UUID {
			r, err := reservation.NewReservation(
				uuid.New(), uuid.New(), stay,
				pricing.NewMoney(10000), 1,
				pricing.NewMoney(10000), pricing.NewMoney(1000), pricing.NewMoney(11000),
				false, now,
			)
			require.NoError(t, err)
			return r.ID()
		}
		assert.NotEqual(t, mk(), mk())
	})
}
