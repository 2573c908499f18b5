package reservation

import (
	"errors"
	"time"

	"innbook/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrInvalidNights    = errors.New("night count must be at least one")
	ErrBrokenPriceTotal = errors.New("total price must equal subtotal plus tax")
)

// Reservation is a priced booking of one room for a date range. The
// pricing fields are a snapshot captured at booking time and never
// change when the room's rate changes later. Only the paid flag is
// mutated after creation, by the payment ledger.
type Reservation struct {
	id           uuid.UUID
	userID       uuid.UUID
	roomID       uuid.UUID
	stay         StayRange
	nightlyPrice pricing.Money
	nights       int64
	subtotal     pricing.Money
	taxAmount    pricing.Money
	totalPrice   pricing.Money
	status       Status
	paid         bool
	createdAt    time.Time
}

func NewReservation(
	userID, roomID uuid.UUID,
	stay StayRange,
	nightlyPrice pricing.Money,
	nights int64,
	subtotal, taxAmount, totalPrice pricing.Money,
	paid bool,
	createdAt time.Time,
) (*Reservation, error) {
	if nights < 1 {
		return nil, ErrInvalidNights
	}
	if nightlyPrice.IsNegative() || subtotal.IsNegative() || taxAmount.IsNegative() {
		return nil, ErrNegativePrice
	}
	if subtotal.Add(taxAmount) != totalPrice {
		return nil, ErrBrokenPriceTotal
	}

	return &Reservation{
		id:           uuid.New(),
		userID:       userID,
		roomID:       roomID,
		stay:         stay,
		nightlyPrice: nightlyPrice,
		nights:       nights,
		subtotal:     subtotal,
		taxAmount:    taxAmount,
		totalPrice:   totalPrice,
		status:       StatusConfirmed,
		paid:         paid,
		createdAt:    createdAt,
	}, nil
}

func Reconstruct(
	id, userID, roomID uuid.UUID,
	stay StayRange,
	nightlyPrice pricing.Money,
	nights int64,
	subtotal, taxAmount, totalPrice pricing.Money,
	status Status,
	paid bool,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:           id,
		userID:       userID,
		roomID:       roomID,
		stay:         stay,
		nightlyPrice: nightlyPrice,
		nights:       nights,
		subtotal:     subtotal,
		taxAmount:    taxAmount,
		totalPrice:   totalPrice,
		status:       status,
		paid:         paid,
		createdAt:    createdAt,
	}
}

func (r *Reservation) IsConfirmed() bool {
	return r.status == StatusConfirmed
}

func (r *Reservation) ID() uuid.UUID               { return r.id }
func (r *Reservation) UserID() uuid.UUID           { return r.userID }
func (r *Reservation) RoomID() uuid.UUID           { return r.roomID }
func (r *Reservation) Stay() StayRange             { return r.stay }
func (r *Reservation) NightlyPrice() pricing.Money { return r.nightlyPrice }
func (r *Reservation) Nights() int64               { return r.nights }
func (r *Reservation) Subtotal() pricing.Money     { return r.subtotal }
func (r *Reservation) TaxAmount() pricing.Money    { return r.taxAmount }
func (r *Reservation) TotalPrice() pricing.Money   { return r.totalPrice }
func (r *Reservation) Status() Status              { return r.status }
func (r *Reservation) Paid() bool                  { return r.paid }
func (r *Reservation) CreatedAt() time.Time        { return r.createdAt }
