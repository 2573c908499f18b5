package readstore

import (
	"context"

	"innbook/internal/infra"
	"innbook/internal/infra/db"
	"innbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Reservations join their room's current type label for display; all
// pricing fields come from the reservation's own captured snapshot.
const reservationSelect = `
SELECT r.id, r.user_id, r.room_id, COALESCE(rm.room_type, ''),
       r.check_in, r.check_out,
       r.nightly_price_cents, r.nights,
       r.subtotal_cents, r.tax_cents, r.total_cents,
       r.status, r.paid, r.created_at
  FROM reservations r
  LEFT JOIN rooms rm ON rm.id = r.room_id`

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row := r.db.QueryRow(ctx, reservationSelect+` WHERE r.id = $1`, id)

	view, err := scanReservation(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return view, nil
}

func (r *ReservationReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, reservationSelect+` WHERE r.user_id = $1 ORDER BY r.created_at DESC`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user reservations", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationReadStore) FindAll(ctx context.Context) ([]*queries.ReservationView, error) {
	// Newest first, the admin dashboard ordering.
	rows, err := r.db.Query(ctx, reservationSelect+` ORDER BY r.created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func scanReservation(row rowScanner) (*queries.ReservationView, error) {
	var v queries.ReservationView
	err := row.Scan(
		&v.ID,
		&v.UserID,
		&v.RoomID,
		&v.RoomType,
		&v.CheckIn,
		&v.CheckOut,
		&v.NightlyPriceCents,
		&v.Nights,
		&v.SubtotalCents,
		&v.TaxCents,
		&v.TotalCents,
		&v.Status,
		&v.Paid,
		&v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func collectReservations(rows pgx.Rows) ([]*queries.ReservationView, error) {
	var result []*queries.ReservationView
	for rows.Next() {
		v, err := scanReservation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}
	return result, nil
}
