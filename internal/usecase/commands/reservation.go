package commands

import (
	"context"
	"log/slog"
	"time"

	"innbook/internal/domain/pricing"
	"innbook/internal/domain/reservation"
	"innbook/internal/infra"
	"innbook/internal/pkg/errs"
	"innbook/internal/usecase/queries"
	"innbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound            = errs.New("room not found")
	ErrRoomUnavailable         = errs.New("room is not available")
	ErrRoomConflict            = errs.New("room was booked concurrently")
	ErrInvalidBooking          = errs.New("invalid booking request")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type BookRoomParams struct {
	RoomID   uuid.UUID
	UserID   uuid.UUID
	CheckIn  time.Time
	CheckOut time.Time
	// PaymentMethod is the opaque token supplied at booking time.
	// Non-empty marks the reservation paid.
	PaymentMethod string
}

type ReservationCommands interface {
	Book(ctx context.Context, params BookRoomParams) (*queries.ReservationView, error)
}

type reservationCommandsImpl struct {
	uow                shared.UnitOfWork
	factory            *reservation.Factory
	reservationQueries queries.ReservationQueries
	roomCache          queries.RoomCache
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	factory *reservation.Factory,
	reservationQueries queries.ReservationQueries,
	roomCache queries.RoomCache,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:                uow,
		factory:            factory,
		reservationQueries: reservationQueries,
		roomCache:          roomCache,
	}
}

// Book converts a room and date range into a priced, confirmed
// reservation. The availability precondition is checked up front for a
// clean error with no side effects, then enforced again inside the
// transaction by the conditional flip, which closes the
// check-then-act race between concurrent bookings.
func (c *reservationCommandsImpl) Book(ctx context.Context, params BookRoomParams) (*queries.ReservationView, error) {
	snap, err := c.uow.CommandReads().RoomByID(ctx, params.RoomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !snap.IsAvailable {
		return nil, ErrRoomUnavailable
	}

	entity, err := c.factory.CreateReservation(
		reservation.RoomSpec{
			ID:        snap.ID,
			BasePrice: pricing.NewMoney(snap.BasePriceCents),
		},
		params.UserID,
		reservation.NewStayRange(params.CheckIn, params.CheckOut),
		params.PaymentMethod,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBooking)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		flipped, err := tx.Rooms().MarkUnavailable(ctx, params.RoomID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !flipped {
			// No available row matched: either the room vanished or
			// another booking won between our check and the update.
			if _, err := tx.Reads().RoomByID(ctx, params.RoomID); err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return ErrRoomNotFound
				}
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			return ErrRoomConflict
		}

		if _, err := tx.Reservations().Create(ctx, entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := c.roomCache.Invalidate(ctx); err != nil {
		slog.Warn("failed to invalidate room cache after booking", "error", err.Error())
	}

	// Read-after-write for the full view.
	view, err := c.reservationQueries.GetByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
