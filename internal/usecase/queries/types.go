package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for the read side)
type RoomView struct {
	ID             uuid.UUID `json:"id"`
	RoomType       string    `json:"room_type"`
	BasePriceCents int64     `json:"base_price_cents"`
	IsAvailable    bool      `json:"is_available"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// RoomWithPrice is a RoomView priced for "today"; the projection
// behind room search results.
type RoomWithPrice struct {
	ID              uuid.UUID `json:"id"`
	RoomType        string    `json:"room_type"`
	PriceTodayCents int64     `json:"price_today_cents"`
	Description     string    `json:"description"`
}

type ReservationView struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"user_id"`
	RoomID            uuid.UUID `json:"room_id"`
	RoomType          string    `json:"room_type"`
	CheckIn           time.Time `json:"check_in"`
	CheckOut          time.Time `json:"check_out"`
	NightlyPriceCents int64     `json:"nightly_price_cents"`
	Nights            int64     `json:"nights"`
	SubtotalCents     int64     `json:"subtotal_cents"`
	TaxCents          int64     `json:"tax_cents"`
	TotalCents        int64     `json:"total_cents"`
	Status            string    `json:"status"`
	Paid              bool      `json:"paid"`
	CreatedAt         time.Time `json:"created_at"`
}

type PaymentView struct {
	ID            uuid.UUID `json:"id"`
	ReservationID uuid.UUID `json:"reservation_id"`
	AmountCents   int64     `json:"amount_cents"`
	Method        string    `json:"method"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// InvoiceView bundles everything an invoice needs: the reservation,
// its room when it still exists, and any settlements.
type InvoiceView struct {
	Reservation *ReservationView `json:"reservation"`
	Room        *RoomView        `json:"room,omitempty"`
	Payments    []*PaymentView   `json:"payments"`
}

// Read-side ports implemented by the infra readstores.
type RoomReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	FindAll(ctx context.Context) ([]*RoomView, error)
	FindAvailable(ctx context.Context) ([]*RoomView, error)
	ConfirmedReservationExists(ctx context.Context, roomID uuid.UUID) (bool, error)
}

type ReservationReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
	FindAll(ctx context.Context) ([]*ReservationView, error)
}

type PaymentReader interface {
	FindByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*PaymentView, error)
}

// RoomCache holds the available-room listing between searches. A
// degraded cache must never break search, so implementations report
// misses instead of failing hard.
type RoomCache interface {
	GetAvailable(ctx context.Context) ([]*RoomView, bool, error)
	SetAvailable(ctx context.Context, rooms []*RoomView) error
	Invalidate(ctx context.Context) error
}
