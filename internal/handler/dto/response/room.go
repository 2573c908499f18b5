package response

import (
	"time"

	"innbook/internal/domain/pricing"
	"innbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// SearchRoomResponse is the room-search projection. Field names are
// part of the public contract; clients key on them.
type SearchRoomResponse struct {
	RoomID      uuid.UUID `json:"room_id"`
	RoomType    string    `json:"room_type"`
	PriceToday  float64   `json:"price_today"`
	Description string    `json:"description"`
}

type RoomResponse struct {
	ID          uuid.UUID `json:"id"`
	RoomType    string    `json:"room_type"`
	BasePrice   float64   `json:"base_price"`
	IsAvailable bool      `json:"is_available"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromRoomWithPrice(rm *queries.RoomWithPrice) *SearchRoomResponse {
	return &SearchRoomResponse{
		RoomID:      rm.ID,
		RoomType:    rm.RoomType,
		PriceToday:  pricing.NewMoney(rm.PriceTodayCents).Amount(),
		Description: rm.Description,
	}
}

func FromRoomView(rm *queries.RoomView) *RoomResponse {
	resp := &RoomResponse{}
	_ = copier.Copy(resp, rm)
	resp.BasePrice = pricing.NewMoney(rm.BasePriceCents).Amount()
	return resp
}
