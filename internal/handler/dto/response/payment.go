package response

import (
	"time"

	"innbook/internal/domain/pricing"
	"innbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentResponse struct {
	ID            uuid.UUID `json:"id"`
	ReservationID uuid.UUID `json:"reservation_id"`
	Amount        float64   `json:"amount"`
	Method        string    `json:"method"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromPaymentView(rm *queries.PaymentView) *PaymentResponse {
	return &PaymentResponse{
		ID:            rm.ID,
		ReservationID: rm.ReservationID,
		Amount:        pricing.NewMoney(rm.AmountCents).Amount(),
		Method:        rm.Method,
		Status:        rm.Status,
		CreatedAt:     rm.CreatedAt,
	}
}
