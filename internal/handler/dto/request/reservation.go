package request

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire format for stay boundaries. Bookings carry
// dates, not instants.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("date must be formatted as YYYY-MM-DD")

type BookRoomRequest struct {
	RoomID   uuid.UUID `json:"room_id" binding:"required"`
	CheckIn  string    `json:"check_in" binding:"required"`
	CheckOut string    `json:"check_out" binding:"required"`
	// PaymentMethod marks the booking paid when non-empty.
	PaymentMethod string `json:"payment_method"`
}

func (r BookRoomRequest) ParseStay() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(DateLayout, r.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}
	checkOut, err = time.Parse(DateLayout, r.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}
	return checkIn, checkOut, nil
}
