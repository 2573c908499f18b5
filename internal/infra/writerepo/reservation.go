package writerepo

import (
	"context"

	"innbook/internal/domain/reservation"
	"innbook/internal/infra"
	"innbook/internal/infra/db"

	"github.com/google/uuid"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx,
		`INSERT INTO reservations
		   (id, user_id, room_id, check_in, check_out,
		    nightly_price_cents, nights, subtotal_cents, tax_cents, total_cents,
		    status, paid, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 RETURNING id`,
		res.ID(),
		res.UserID(),
		res.RoomID(),
		res.Stay().CheckIn(),
		res.Stay().CheckOut(),
		res.NightlyPrice().Cents(),
		res.Nights(),
		res.Subtotal().Cents(),
		res.TaxAmount().Cents(),
		res.TotalPrice().Cents(),
		res.Status().String(),
		res.Paid(),
		res.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) MarkPaid(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `UPDATE reservations SET paid = TRUE WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to mark reservation paid", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
