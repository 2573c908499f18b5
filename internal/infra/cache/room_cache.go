package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"innbook/internal/infra/observability"
	"innbook/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const roomListKey = "rooms:available"

// RoomCache keeps the available-room listing in redis between
// searches. Search filters run after the cache read, so a stale or
// degraded cache can only serve slightly old prices, never wrong
// filter results. Every room mutation and booking invalidates it.
type RoomCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRoomCache(client *redis.Client, ttl time.Duration) *RoomCache {
	return &RoomCache{client: client, ttl: ttl}
}

func (c *RoomCache) GetAvailable(ctx context.Context) ([]*queries.RoomView, bool, error) {
	v, err := c.client.Get(ctx, roomListKey).Bytes()
	if err == redis.Nil {
		observability.ObserveCache("rooms", "miss")
		return nil, false, nil
	}
	if err != nil {
		// A broken cache must not break search.
		slog.Warn("room cache read failed", "error", err.Error())
		observability.ObserveCache("rooms", "miss")
		return nil, false, nil
	}

	var rooms []*queries.RoomView
	if err := json.Unmarshal(v, &rooms); err != nil {
		slog.Warn("room cache payload corrupt, dropping", "error", err.Error())
		_ = c.client.Del(ctx, roomListKey).Err()
		return nil, false, nil
	}

	observability.ObserveCache("rooms", "hit")
	return rooms, true, nil
}

func (c *RoomCache) SetAvailable(ctx context.Context, rooms []*queries.RoomView) error {
	b, err := json.Marshal(rooms)
	if err != nil {
		return err
	}
	observability.ObserveCache("rooms", "set")
	return c.client.Set(ctx, roomListKey, b, c.ttl).Err()
}

func (c *RoomCache) Invalidate(ctx context.Context) error {
	observability.ObserveCache("rooms", "del")
	return c.client.Del(ctx, roomListKey).Err()
}
