package queries

import (
	"context"

	"innbook/internal/infra"
	"innbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrReservationQuery    = errs.New("reservation query failed")
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	// GetInvoice returns the reservation together with its room and
	// payment records, the data behind the invoice page.
	GetInvoice(ctx context.Context, id uuid.UUID) (*InvoiceView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
	ListAll(ctx context.Context) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	reservations ReservationReader
	rooms        RoomReader
	payments     PaymentReader
}

func NewReservationQueries(reservations ReservationReader, rooms RoomReader, payments PaymentReader) ReservationQueries {
	return &reservationQueriesImpl{
		reservations: reservations,
		rooms:        rooms,
		payments:     payments,
	}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.reservations.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrReservationQuery)
	}
	return view, nil
}

func (q *reservationQueriesImpl) GetInvoice(ctx context.Context, id uuid.UUID) (*InvoiceView, error) {
	resv, err := q.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// The room may have been deleted since; the invoice still renders
	// from the reservation's own snapshot.
	var roomView *RoomView
	if rm, err := q.rooms.FindByID(ctx, resv.RoomID); err == nil {
		roomView = rm
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrReservationQuery)
	}

	pays, err := q.payments.FindByReservationID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrReservationQuery)
	}

	return &InvoiceView{
		Reservation: resv,
		Room:        roomView,
		Payments:    pays,
	}, nil
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error) {
	views, err := q.reservations.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrReservationQuery)
	}
	return views, nil
}

func (q *reservationQueriesImpl) ListAll(ctx context.Context) ([]*ReservationView, error) {
	views, err := q.reservations.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrReservationQuery)
	}
	return views, nil
}
