package writerepo

import (
	"context"
	"errors"

	"innbook/internal/domain/room"
	"innbook/internal/infra"
	"innbook/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeUniqueViolation = "23505"

type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(dbtx db.DBTX) *RoomRepository {
	return &RoomRepository{db: dbtx}
}

func (r *RoomRepository) Create(ctx context.Context, entity *room.Room) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx,
		`INSERT INTO rooms (id, room_type, base_price_cents, is_available, description)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		entity.ID(),
		entity.RoomType(),
		entity.BasePrice().Cents(),
		entity.IsAvailable(),
		entity.Description(),
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("room already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create room", err)
	}
	return id, nil
}

func (r *RoomRepository) Update(ctx context.Context, entity *room.Room) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE rooms
		    SET room_type = $2, base_price_cents = $3, is_available = $4, description = $5, updated_at = now()
		  WHERE id = $1`,
		entity.ID(),
		entity.RoomType(),
		entity.BasePrice().Cents(),
		entity.IsAvailable(),
		entity.Description(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

// MarkUnavailable is the availability flip of the booking path: a
// single conditional update whose affected-row count decides the race.
// false with no error means no available row matched.
func (r *RoomRepository) MarkUnavailable(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE rooms SET is_available = FALSE, updated_at = now()
		  WHERE id = $1 AND is_available = TRUE`,
		id,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark room unavailable", err)
	}
	return tag.RowsAffected() == 1, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation
}
