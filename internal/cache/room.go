// Package cache keeps read-through copies of room directory entries in Redis.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

func roomKey(id string) string {
	return fmt.Sprintf("room:%s", id)
}

// RoomCache оборачивает справочник номеров. Ошибки Redis не ломают запрос:
// логируем и идём в базу.
type RoomCache struct {
	next   ports.RoomRepo
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewRoomCache(next ports.RoomRepo, rdb *redis.Client, ttl time.Duration, logger logger.Logger) *RoomCache {
	return &RoomCache{next: next, rdb: rdb, ttl: ttl, logger: logger}
}

func (c *RoomCache) GetByIDs(ctx context.Context, ids []string) (map[string]*domain.Room, error) {
	ids = slices.Compact(slices.Sorted(slices.Values(ids)))
	if len(ids) == 0 {
		return map[string]*domain.Room{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = roomKey(id)
	}

	vals, err := c.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		c.logger.Warn("room cache read failed",
			logger.String("error", err.Error()),
		)
		return c.next.GetByIDs(ctx, ids)
	}

	res := make(map[string]*domain.Room, len(ids))
	var missing []string
	for i, v := range vals {
		raw, ok := v.(string)
		if !ok {
			missing = append(missing, ids[i])
			continue
		}
		var room domain.Room
		if err = json.Unmarshal([]byte(raw), &room); err != nil {
			missing = append(missing, ids[i])
			continue
		}
		res[room.ID] = &room
	}

	if len(missing) == 0 {
		return res, nil
	}

	fetched, err := c.next.GetByIDs(ctx, missing)
	if err != nil {
		return nil, err
	}

	pipe := c.rdb.Pipeline()
	for id, room := range fetched {
		res[id] = room
		data, err := json.Marshal(room)
		if err != nil {
			continue
		}
		pipe.Set(ctx, roomKey(id), data, c.ttl)
	}
	if _, err = pipe.Exec(ctx); err != nil {
		c.logger.Warn("room cache write failed",
			logger.Int("rooms", len(fetched)),
			logger.String("error", err.Error()),
		)
	}

	return res, nil
}
