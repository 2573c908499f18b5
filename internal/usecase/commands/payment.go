package commands

import (
	"context"

	"innbook/internal/domain/payment"
	"innbook/internal/domain/pricing"
	"innbook/internal/infra"
	"innbook/internal/pkg/clock"
	"innbook/internal/pkg/errs"
	"innbook/internal/usecase/queries"
	"innbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrReservationNotFound = errs.New("reservation not found")

type RecordPaymentParams struct {
	ReservationID uuid.UUID
	// Amount is recorded as given, not checked against the
	// reservation total. Partial and split settlements are allowed.
	Amount float64
	Method string
}

type PaymentCommands interface {
	Record(ctx context.Context, params RecordPaymentParams) (*queries.PaymentView, error)
}

type paymentCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPaymentCommands(uow shared.UnitOfWork, clk clock.Clock) PaymentCommands {
	return &paymentCommandsImpl{uow: uow, clock: clk}
}

// Record appends a settlement against the reservation and re-affirms
// its paid flag. Every call adds a row; the flag only ever moves
// false→true.
func (c *paymentCommandsImpl) Record(ctx context.Context, params RecordPaymentParams) (*queries.PaymentView, error) {
	var entity *payment.Payment

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReservationByID(ctx, params.ReservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		entity = payment.NewPayment(
			snap.ID,
			pricing.NewMoneyFromFloat(params.Amount),
			params.Method,
			c.clock.Now(),
		)

		if _, err := tx.Payments().Create(ctx, entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Reservations().MarkPaid(ctx, snap.ID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &queries.PaymentView{
		ID:            entity.ID(),
		ReservationID: entity.ReservationID(),
		AmountCents:   entity.Amount().Cents(),
		Method:        entity.Method(),
		Status:        entity.Status(),
		CreatedAt:     entity.CreatedAt(),
	}, nil
}
