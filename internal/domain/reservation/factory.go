package reservation

import (
	"innbook/internal/domain/pricing"
	"innbook/internal/pkg/clock"

	"github.com/google/uuid"
)

// RoomSpec is the slice of room state the factory needs to price a
// booking. The engine never holds a live reference to the room.
type RoomSpec struct {
	ID        uuid.UUID
	BasePrice pricing.Money
}

// Factory builds priced reservations. The nightly rate is the
// calculator's pre-tax price for the booking date, captured once so
// later rate or season changes cannot retroactively reprice the stay.
type Factory struct {
	clock      clock.Clock
	calculator pricing.Calculator
}

func NewFactory(clk clock.Clock, calculator pricing.Calculator) *Factory {
	return &Factory{
		clock:      clk,
		calculator: calculator,
	}
}

// CreateReservation prices the stay and assembles a confirmed
// reservation. paymentMethod is the opaque token supplied at booking;
// a non-empty token marks the reservation paid, independent of any
// payment records.
func (f *Factory) CreateReservation(
	roomSpec RoomSpec,
	userID uuid.UUID,
	stay StayRange,
	paymentMethod string,
) (*Reservation, error) {
	if roomSpec.BasePrice.IsNegative() {
		return nil, ErrNegativePrice
	}

	now := f.clock.Now()
	nights := stay.Nights()

	nightlyPrice := f.calculator.DynamicPrice(roomSpec.BasePrice, now)
	subtotal := nightlyPrice.MulInt(nights)
	taxAmount := subtotal.MulPercent(pricing.TaxRatePercent)
	totalPrice := subtotal.Add(taxAmount)

	// Any non-empty token counts, whitespace included; the ledger is
	// what actually settles the reservation.
	paid := paymentMethod != ""

	return NewReservation(
		userID,
		roomSpec.ID,
		stay,
		nightlyPrice,
		nights,
		subtotal,
		taxAmount,
		totalPrice,
		paid,
		now,
	)
}
