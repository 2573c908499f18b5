//go:build unit

package cache

import (
	"context"
	"testing"
	"time"

	"innbook/internal/usecase/queries"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*RoomCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRoomCache(client, time.Minute), mr
}

func sampleRooms() []*queries.RoomView {
	now := time.Date(2025, 12, 10, 9, 0, 0, 0, time.UTC)
	return []*queries.RoomView{
		{
			ID:             uuid.New(),
			RoomType:       "Deluxe",
			BasePriceCents: 10000,
			IsAvailable:    true,
			Description:    "Sea view",
			CreatedAt:      now,
			UpdatedAt:      now,
		},
		{
			ID:             uuid.New(),
			RoomType:       "Single",
			BasePriceCents: 6000,
			IsAvailable:    true,
			CreatedAt:      now,
			UpdatedAt:      now,
		},
	}
}

func TestRoomCacheRoundTrip(t *testing.T) {
	t.Parallel()
	c, _ := newTestCache(t)
	ctx := context.Background()

	rooms, ok, err := c.GetAvailable(ctx)
	require.NoError(t, err)
	require.False(t, ok, "cold cache should miss")
	require.Nil(t, rooms)

	seed := sampleRooms()
	require.NoError(t, c.SetAvailable(ctx, seed))

	got, ok, err := c.GetAvailable(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got, 2)
	require.Equal(t, seed[0].ID, got[0].ID)
	require.Equal(t, "Deluxe", got[0].RoomType)
	require.Equal(t, int64(10000), got[0].BasePriceCents)
	require.True(t, got[0].CreatedAt.Equal(seed[0].CreatedAt))
}

func TestRoomCacheInvalidate(t *testing.T) {
	t.Parallel()
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetAvailable(ctx, sampleRooms()))
	require.NoError(t, c.Invalidate(ctx))

	_, ok, err := c.GetAvailable(ctx)
	require.NoError(t, err)
	require.False(t, ok, "invalidated cache should miss")
}

func TestRoomCacheExpiry(t *testing.T) {
	t.Parallel()
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetAvailable(ctx, sampleRooms()))
	mr.FastForward(2 * time.Minute)

	_, ok, err := c.GetAvailable(ctx)
	require.NoError(t, err)
	require.False(t, ok, "expired entry should miss")
}

func TestRoomCacheCorruptPayload(t *testing.T) {
	t.Parallel()
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("rooms:available", "{not json"))

	_, ok, err := c.GetAvailable(ctx)
	require.NoError(t, err)
	require.False(t, ok, "corrupt payload reads as a miss")
	require.False(t, mr.Exists("rooms:available"), "corrupt payload should be dropped")
}

func TestRoomCacheDegradedBackend(t *testing.T) {
	t.Parallel()
	c, mr := newTestCache(t)
	ctx := context.Background()

	mr.Close()

	_, ok, err := c.GetAvailable(ctx)
	require.NoError(t, err, "an unreachable cache must not surface an error")
	require.False(t, ok)
}
