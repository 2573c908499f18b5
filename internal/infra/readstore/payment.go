package readstore

import (
	"context"

	"innbook/internal/infra"
	"innbook/internal/infra/db"
	"innbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentReadStore struct {
	db db.DBTX
}

func NewPaymentReadStore(dbtx db.DBTX) *PaymentReadStore {
	return &PaymentReadStore{db: dbtx}
}

func (r *PaymentReadStore) FindByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*queries.PaymentView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, reservation_id, amount_cents, method, status, created_at
		   FROM payments
		  WHERE reservation_id = $1
		  ORDER BY created_at, id`,
		reservationID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find payments for reservation", err)
	}
	defer rows.Close()

	var result []*queries.PaymentView
	for rows.Next() {
		var v queries.PaymentView
		if err := rows.Scan(&v.ID, &v.ReservationID, &v.AmountCents, &v.Method, &v.Status, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate payment rows", err)
	}
	return result, nil
}
