package readstore

import (
	"context"

	"innbook/internal/infra"
	"innbook/internal/infra/db"
	"innbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const roomColumns = `id, room_type, base_price_cents, is_available, description, created_at, updated_at`

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+roomColumns+` FROM rooms WHERE id = $1`, id)

	view, err := scanRoom(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return view, nil
}

func (r *RoomReadStore) FindAll(ctx context.Context) ([]*queries.RoomView, error) {
	// Insertion order; the catalog is never re-sorted.
	rows, err := r.db.Query(ctx, `SELECT `+roomColumns+` FROM rooms ORDER BY created_at, id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find all rooms", err)
	}
	defer rows.Close()

	return collectRooms(rows)
}

func (r *RoomReadStore) FindAvailable(ctx context.Context) ([]*queries.RoomView, error) {
	rows, err := r.db.Query(ctx, `SELECT `+roomColumns+` FROM rooms WHERE is_available = TRUE ORDER BY created_at, id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find available rooms", err)
	}
	defer rows.Close()

	return collectRooms(rows)
}

func (r *RoomReadStore) ConfirmedReservationExists(ctx context.Context, roomID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM reservations WHERE room_id = $1 AND status = 'confirmed')`,
		roomID,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check confirmed reservations", err)
	}
	return exists, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoom(row rowScanner) (*queries.RoomView, error) {
	var v queries.RoomView
	err := row.Scan(
		&v.ID,
		&v.RoomType,
		&v.BasePriceCents,
		&v.IsAvailable,
		&v.Description,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func collectRooms(rows pgx.Rows) ([]*queries.RoomView, error) {
	var result []*queries.RoomView
	for rows.Next() {
		v, err := scanRoom(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rows", err)
	}
	return result, nil
}
