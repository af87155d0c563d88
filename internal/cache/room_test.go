package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newMiniRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestRoomCache_MissFillsCache(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	next := mocks.NewMockRoomRepo(t)
	c := NewRoomCache(next, rdb, time.Minute, newTestLogger(t))

	rooms := map[string]*domain.Room{"r1": {ID: "r1", Name: "Deluxe", Price: 100, MaxOccupancy: 2}}
	next.EXPECT().GetByIDs(mock.Anything, []string{"r1"}).Return(rooms, nil).Once()

	res, err := c.GetByIDs(context.Background(), []string{"r1"})
	require.NoError(t, err)
	assert.Equal(t, rooms, res)

	assert.True(t, mr.Exists(roomKey("r1")))
	assert.Equal(t, time.Minute, mr.TTL(roomKey("r1")))

	// второй запрос обслуживается из кэша, next больше не вызывается
	res, err = c.GetByIDs(context.Background(), []string{"r1"})
	require.NoError(t, err)
	assert.Equal(t, rooms, res)
}

func TestRoomCache_PartialHitFetchesOnlyMissing(t *testing.T) {
	_, rdb := newMiniRedis(t)
	next := mocks.NewMockRoomRepo(t)
	c := NewRoomCache(next, rdb, time.Minute, newTestLogger(t))

	r1 := &domain.Room{ID: "r1", Name: "Deluxe", Price: 100}
	r2 := &domain.Room{ID: "r2", Name: "Suite", Price: 250}
	next.EXPECT().GetByIDs(mock.Anything, []string{"r1"}).Return(map[string]*domain.Room{"r1": r1}, nil).Once()
	next.EXPECT().GetByIDs(mock.Anything, []string{"r2"}).Return(map[string]*domain.Room{"r2": r2}, nil).Once()

	_, err := c.GetByIDs(context.Background(), []string{"r1"})
	require.NoError(t, err)

	res, err := c.GetByIDs(context.Background(), []string{"r2", "r1"})

	require.NoError(t, err)
	assert.Equal(t, map[string]*domain.Room{"r1": r1, "r2": r2}, res)
}

func TestRoomCache_ExpiredEntryRefetched(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	next := mocks.NewMockRoomRepo(t)
	c := NewRoomCache(next, rdb, time.Minute, newTestLogger(t))

	before := map[string]*domain.Room{"r1": {ID: "r1", Name: "Deluxe", Price: 100}}
	after := map[string]*domain.Room{"r1": {ID: "r1", Name: "Deluxe", Price: 120}}
	next.EXPECT().GetByIDs(mock.Anything, []string{"r1"}).Return(before, nil).Once()
	next.EXPECT().GetByIDs(mock.Anything, []string{"r1"}).Return(after, nil).Once()

	_, err := c.GetByIDs(context.Background(), []string{"r1"})
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)
	require.False(t, mr.Exists(roomKey("r1")))

	res, err := c.GetByIDs(context.Background(), []string{"r1"})

	require.NoError(t, err)
	assert.Equal(t, 120.0, res["r1"].Price)
}

func TestRoomCache_CorruptEntryRefetched(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	next := mocks.NewMockRoomRepo(t)
	c := NewRoomCache(next, rdb, time.Minute, newTestLogger(t))

	require.NoError(t, mr.Set(roomKey("r1"), "{not json"))
	rooms := map[string]*domain.Room{"r1": {ID: "r1", Name: "Deluxe", Price: 100}}
	next.EXPECT().GetByIDs(mock.Anything, []string{"r1"}).Return(rooms, nil).Once()

	res, err := c.GetByIDs(context.Background(), []string{"r1"})

	require.NoError(t, err)
	assert.Equal(t, rooms, res)
	raw, err := mr.Get(roomKey("r1"))
	require.NoError(t, err)
	assert.Contains(t, raw, `"name":"Deluxe"`)
}

func TestRoomCache_FallsBackWhenRedisDown(t *testing.T) {
	next := mocks.NewMockRoomRepo(t)
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	c := NewRoomCache(next, rdb, time.Minute, newTestLogger(t))

	rooms := map[string]*domain.Room{"r1": {ID: "r1", Name: "Deluxe", Price: 100}}
	next.EXPECT().GetByIDs(mock.Anything, []string{"r1", "r2"}).Return(rooms, nil)

	res, err := c.GetByIDs(context.Background(), []string{"r2", "r1", "r2"})

	require.NoError(t, err)
	assert.Equal(t, rooms, res)
}

func TestRoomCache_Empty(t *testing.T) {
	next := mocks.NewMockRoomRepo(t)
	c := NewRoomCache(next, nil, time.Minute, newTestLogger(t))

	res, err := c.GetByIDs(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestRoomKey(t *testing.T) {
	assert.Equal(t, "room:abc", roomKey("abc"))
}
