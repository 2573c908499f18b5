package room

import (
	"errors"
	"strings"
	"time"

	"innbook/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomType      = errors.New("room type cannot be empty")
	ErrNegativeBasePrice  = errors.New("base price cannot be negative")
	ErrDescriptionTooLong = errors.New("description is too long (max 300 characters)")
)

const MaxDescriptionLength = 300

// Room is one unit of lodging inventory. It is the sole source of
// truth for the current base nightly rate and the availability flag;
// reservations capture their own pricing snapshot at booking time.
type Room struct {
	id          uuid.UUID
	roomType    string
	basePrice   pricing.Money
	isAvailable bool
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewRoom(roomType string, basePrice pricing.Money, description string) (*Room, error) {
	if err := validate(roomType, basePrice, description); err != nil {
		return nil, err
	}

	return &Room{
		id:          uuid.New(),
		roomType:    strings.TrimSpace(roomType),
		basePrice:   basePrice,
		isAvailable: true,
		description: description,
	}, nil
}

// Reconstruct rebuilds a Room from persisted state without re-running
// creation defaults.
func Reconstruct(
	id uuid.UUID,
	roomType string,
	basePrice pricing.Money,
	isAvailable bool,
	description string,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:          id,
		roomType:    roomType,
		basePrice:   basePrice,
		isAvailable: isAvailable,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ApplyEdit replaces the staff-editable fields. This is the only path
// that may flip availability back to true.
func (r *Room) ApplyEdit(roomType string, basePrice pricing.Money, isAvailable bool, description string) error {
	if err := validate(roomType, basePrice, description); err != nil {
		return err
	}

	r.roomType = strings.TrimSpace(roomType)
	r.basePrice = basePrice
	r.isAvailable = isAvailable
	r.description = description
	return nil
}

func validate(roomType string, basePrice pricing.Money, description string) error {
	if strings.TrimSpace(roomType) == "" {
		return ErrEmptyRoomType
	}
	if basePrice.IsNegative() {
		return ErrNegativeBasePrice
	}
	if len(description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}

func (r *Room) ID() uuid.UUID            { return r.id }
func (r *Room) RoomType() string         { return r.roomType }
func (r *Room) BasePrice() pricing.Money { return r.basePrice }
func (r *Room) IsAvailable() bool        { return r.isAvailable }
func (r *Room) Description() string      { return r.description }
func (r *Room) CreatedAt() time.Time     { return r.createdAt }
func (r *Room) UpdatedAt() time.Time     { return r.updatedAt }
