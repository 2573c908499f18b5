package commands

import (
	"context"
	"log/slog"
	"time"

	"innbook/internal/domain/pricing"
	"innbook/internal/domain/room"
	"innbook/internal/infra"
	"innbook/internal/pkg/errs"
	"innbook/internal/usecase/queries"
	"innbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidRoom         = errs.New("invalid room")
	ErrRoomHasReservations = errs.New("room has confirmed reservations")
)

type CreateRoomParams struct {
	RoomType    string
	BasePrice   float64
	Description string
}

type UpdateRoomParams struct {
	RoomType    string
	BasePrice   float64
	IsAvailable bool
	Description string
}

type RoomCommands interface {
	Create(ctx context.Context, params CreateRoomParams) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateRoomParams) error
	// Delete refuses while a confirmed reservation references the room.
	Delete(ctx context.Context, id uuid.UUID) error
}

type roomCommandsImpl struct {
	uow       shared.UnitOfWork
	roomCache queries.RoomCache
}

func NewRoomCommands(uow shared.UnitOfWork, roomCache queries.RoomCache) RoomCommands {
	return &roomCommandsImpl{uow: uow, roomCache: roomCache}
}

func (c *roomCommandsImpl) Create(ctx context.Context, params CreateRoomParams) (uuid.UUID, error) {
	entity, err := room.NewRoom(
		params.RoomType,
		pricing.NewMoneyFromFloat(params.BasePrice),
		params.Description,
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidRoom)
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Rooms().Create(ctx, entity)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		id = created
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	c.invalidateCache(ctx)
	return id, nil
}

func (c *roomCommandsImpl) Update(ctx context.Context, id uuid.UUID, params UpdateRoomParams) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().RoomByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		entity := room.Reconstruct(
			snap.ID,
			snap.RoomType,
			pricing.NewMoney(snap.BasePriceCents),
			snap.IsAvailable,
			snap.Description,
			time.Time{}, time.Time{},
		)
		if err := entity.ApplyEdit(
			params.RoomType,
			pricing.NewMoneyFromFloat(params.BasePrice),
			params.IsAvailable,
			params.Description,
		); err != nil {
			return errs.Mark(err, ErrInvalidRoom)
		}

		if err := tx.Rooms().Update(ctx, entity); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	c.invalidateCache(ctx)
	return nil
}

func (c *roomCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.Reads().ConfirmedReservationExists(ctx, id)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if exists {
			return ErrRoomHasReservations
		}

		if err := tx.Rooms().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	c.invalidateCache(ctx)
	return nil
}

func (c *roomCommandsImpl) invalidateCache(ctx context.Context) {
	if err := c.roomCache.Invalidate(ctx); err != nil {
		slog.Warn("failed to invalidate room cache", "error", err.Error())
	}
}
