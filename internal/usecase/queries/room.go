package queries

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"innbook/internal/domain/pricing"
	"innbook/internal/infra"
	"innbook/internal/pkg/clock"
	"innbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound = errs.New("room not found")
	ErrRoomQuery    = errs.New("room query failed")
)

// AnyRoomType is the sentinel the search form sends for "no type
// filter"; matched case-insensitively.
const AnyRoomType = "any"

type RoomQueries interface {
	// Search lists available rooms priced for today. typeFilter and
	// maxPrice are raw caller strings; empty means absent and a
	// non-numeric maxPrice is silently ignored, never an error.
	Search(ctx context.Context, typeFilter, maxPrice string) ([]*RoomWithPrice, error)
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	List(ctx context.Context) ([]*RoomView, error)
	// CanDelete is false while any confirmed reservation references the room.
	CanDelete(ctx context.Context, id uuid.UUID) (bool, error)
}

type roomQueriesImpl struct {
	rooms      RoomReader
	cache      RoomCache
	calculator pricing.Calculator
	clock      clock.Clock
}

func NewRoomQueries(rooms RoomReader, cache RoomCache, calculator pricing.Calculator, clk clock.Clock) RoomQueries {
	return &roomQueriesImpl{
		rooms:      rooms,
		cache:      cache,
		calculator: calculator,
		clock:      clk,
	}
}

func (q *roomQueriesImpl) Search(ctx context.Context, typeFilter, maxPrice string) ([]*RoomWithPrice, error) {
	available, err := q.availableRooms(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrRoomQuery)
	}

	today := q.clock.Now()
	maxPriceCents, hasMaxPrice := parseMaxPrice(maxPrice)
	wantType := normalizeTypeFilter(typeFilter)

	result := make([]*RoomWithPrice, 0, len(available))
	for _, rm := range available {
		priceToday := q.calculator.DynamicPrice(pricing.NewMoney(rm.BasePriceCents), today)

		if wantType != "" && rm.RoomType != wantType {
			continue
		}
		if hasMaxPrice && priceToday.Cents() > maxPriceCents {
			continue
		}

		result = append(result, &RoomWithPrice{
			ID:              rm.ID,
			RoomType:        rm.RoomType,
			PriceTodayCents: priceToday.Cents(),
			Description:     rm.Description,
		})
	}
	return result, nil
}

func (q *roomQueriesImpl) availableRooms(ctx context.Context) ([]*RoomView, error) {
	if cached, ok, err := q.cache.GetAvailable(ctx); err == nil && ok {
		return cached, nil
	}

	rooms, err := q.rooms.FindAvailable(ctx)
	if err != nil {
		return nil, err
	}

	if err := q.cache.SetAvailable(ctx, rooms); err != nil {
		slog.Warn("failed to populate room cache", "error", err.Error())
	}
	return rooms, nil
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	view, err := q.rooms.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Mark(err, ErrRoomQuery)
	}
	return view, nil
}

func (q *roomQueriesImpl) List(ctx context.Context) ([]*RoomView, error) {
	rooms, err := q.rooms.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrRoomQuery)
	}
	return rooms, nil
}

func (q *roomQueriesImpl) CanDelete(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := q.rooms.ConfirmedReservationExists(ctx, id)
	if err != nil {
		return false, errs.Mark(err, ErrRoomQuery)
	}
	return !exists, nil
}

func normalizeTypeFilter(typeFilter string) string {
	trimmed := strings.TrimSpace(typeFilter)
	if strings.EqualFold(trimmed, AnyRoomType) {
		return ""
	}
	return trimmed
}

// parseMaxPrice turns the raw filter into a cents ceiling. Malformed
// input disables the filter instead of failing the search; callers
// rely on that.
func parseMaxPrice(maxPrice string) (int64, bool) {
	trimmed := strings.TrimSpace(maxPrice)
	if trimmed == "" {
		return 0, false
	}
	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false
	}
	return pricing.NewMoneyFromFloat(parsed).Cents(), true
}
