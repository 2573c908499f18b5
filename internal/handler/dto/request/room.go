package request

type CreateRoomRequest struct {
	RoomType    string  `json:"room_type" binding:"required"`
	BasePrice   float64 `json:"base_price" binding:"min=0"`
	Description string  `json:"description"`
}

type UpdateRoomRequest struct {
	RoomType    string  `json:"room_type" binding:"required"`
	BasePrice   float64 `json:"base_price" binding:"min=0"`
	IsAvailable bool    `json:"is_available"`
	Description string  `json:"description"`
}
