package payment

import (
	"time"

	"innbook/internal/domain/pricing"

	"github.com/google/uuid"
)

const StatusPaid = "paid"

// Payment is one settlement record against a reservation. Records are
// append-only: they are never mutated or deleted, and the amount is
// not checked against the reservation total, so partial and split
// settlements are representable.
type Payment struct {
	id            uuid.UUID
	reservationID uuid.UUID
	amount        pricing.Money
	method        string
	status        string
	createdAt     time.Time
}

func NewPayment(reservationID uuid.UUID, amount pricing.Money, method string, createdAt time.Time) *Payment {
	return &Payment{
		id:            uuid.New(),
		reservationID: reservationID,
		amount:        amount,
		method:        method,
		status:        StatusPaid,
		createdAt:     createdAt,
	}
}

func Reconstruct(
	id, reservationID uuid.UUID,
	amount pricing.Money,
	method, status string,
	createdAt time.Time,
) *Payment {
	return &Payment{
		id:            id,
		reservationID: reservationID,
		amount:        amount,
		method:        method,
		status:        status,
		createdAt:     createdAt,
	}
}

func (p *Payment) ID() uuid.UUID            { return p.id }
func (p *Payment) ReservationID() uuid.UUID { return p.reservationID }
func (p *Payment) Amount() pricing.Money    { return p.amount }
func (p *Payment) Method() string           { return p.method }
func (p *Payment) Status() string           { return p.status }
func (p *Payment) CreatedAt() time.Time     { return p.createdAt }
