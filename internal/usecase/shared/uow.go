package shared

import (
	"context"

	"innbook/internal/domain/payment"
	"innbook/internal/domain/reservation"
	"innbook/internal/domain/room"
	"innbook/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork scopes multi-step writes to a single store transaction.
// The booking engine leans on it for the one atomicity contract the
// store must honor: reservation insert + room availability flip.
type UnitOfWork interface {
	// Within runs fn in a read-committed transaction, retrying on
	// serialization failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB runs single-query operations using implicit transactions.
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads gives command handlers snapshot reads outside a
	// transaction (precondition checks).
	CommandReads() CommandReads
}

type Tx interface {
	Rooms() RoomRepository
	Reservations() ReservationRepository
	Payments() PaymentRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	// ConfirmedReservationExists backs the room deletion guard.
	ConfirmedReservationExists(ctx context.Context, roomID uuid.UUID) (bool, error)
}

// Minimal snapshots for command-side precondition checks.
type RoomSnapshot struct {
	ID             uuid.UUID
	RoomType       string
	BasePriceCents int64
	IsAvailable    bool
	Description    string
}

type ReservationSnapshot struct {
	ID         uuid.UUID
	RoomID     uuid.UUID
	UserID     uuid.UUID
	Status     string
	Paid       bool
	TotalCents int64
}

type RoomRepository interface {
	Create(ctx context.Context, r *room.Room) (uuid.UUID, error)
	Update(ctx context.Context, r *room.Room) error
	Delete(ctx context.Context, id uuid.UUID) error
	// MarkUnavailable flips is_available true→false as one conditional
	// update and reports whether a row actually flipped. A false return
	// with a live row means another booking won the race.
	MarkUnavailable(ctx context.Context, id uuid.UUID) (bool, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error)
	// MarkPaid idempotently re-affirms the paid flag; it never resets it.
	MarkPaid(ctx context.Context, id uuid.UUID) error
}

type PaymentRepository interface {
	Create(ctx context.Context, p *payment.Payment) (uuid.UUID, error)
}
