package response

import (
	"time"

	"innbook/internal/domain/pricing"
	"innbook/internal/usecase/queries"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type ReservationResponse struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	RoomID       uuid.UUID `json:"room_id"`
	RoomType     string    `json:"room_type"`
	CheckIn      string    `json:"check_in"`
	CheckOut     string    `json:"check_out"`
	NightlyPrice float64   `json:"nightly_price"`
	Nights       int64     `json:"nights"`
	Subtotal     float64   `json:"subtotal"`
	Tax          float64   `json:"tax"`
	TotalPrice   float64   `json:"total_price"`
	Status       string    `json:"status"`
	Paid         bool      `json:"paid"`
	CreatedAt    time.Time `json:"created_at"`
}

type InvoiceResponse struct {
	Reservation *ReservationResponse `json:"reservation"`
	Room        *RoomResponse        `json:"room,omitempty"`
	Payments    []*PaymentResponse   `json:"payments"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:           rm.ID,
		UserID:       rm.UserID,
		RoomID:       rm.RoomID,
		RoomType:     rm.RoomType,
		CheckIn:      rm.CheckIn.Format(dateLayout),
		CheckOut:     rm.CheckOut.Format(dateLayout),
		NightlyPrice: pricing.NewMoney(rm.NightlyPriceCents).Amount(),
		Nights:       rm.Nights,
		Subtotal:     pricing.NewMoney(rm.SubtotalCents).Amount(),
		Tax:          pricing.NewMoney(rm.TaxCents).Amount(),
		TotalPrice:   pricing.NewMoney(rm.TotalCents).Amount(),
		Status:       rm.Status,
		Paid:         rm.Paid,
		CreatedAt:    rm.CreatedAt,
	}
}

func FromInvoiceView(rm *queries.InvoiceView) *InvoiceResponse {
	payments := make([]*PaymentResponse, len(rm.Payments))
	for i, p := range rm.Payments {
		payments[i] = FromPaymentView(p)
	}

	var room *RoomResponse
	if rm.Room != nil {
		room = FromRoomView(rm.Room)
	}

	return &InvoiceResponse{
		Reservation: FromReservationView(rm.Reservation),
		Room:        room,
		Payments:    payments,
	}
}
