package lock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestRedis_UnreachableServerFails(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	l := NewRedis(rdb, time.Second, 200*time.Millisecond)

	unlock, err := l.Lock(context.Background(), []string{"r1"})

	assert.Error(t, err)
	assert.Nil(t, unlock)
}

func TestRedis_MutualExclusion(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	l := NewRedis(rdb, time.Minute, 100*time.Millisecond)

	unlock, err := l.Lock(context.Background(), []string{"r1"})
	require.NoError(t, err)
	assert.True(t, mr.Exists(keyPrefix+"r1"))
	assert.Equal(t, time.Minute, mr.TTL(keyPrefix+"r1"))

	_, err = l.Lock(context.Background(), []string{"r1"})
	assert.ErrorIs(t, err, ErrLockTimeout)

	unlock()
	assert.False(t, mr.Exists(keyPrefix+"r1"))

	unlock, err = l.Lock(context.Background(), []string{"r1"})
	require.NoError(t, err)
	unlock()
}

func TestRedis_DisjointKeysDoNotBlock(t *testing.T) {
	_, rdb := newMiniRedis(t)
	l := NewRedis(rdb, time.Minute, 100*time.Millisecond)

	unlockA, err := l.Lock(context.Background(), []string{"r1"})
	require.NoError(t, err)
	defer unlockA()

	unlockB, err := l.Lock(context.Background(), []string{"r2"})
	require.NoError(t, err)
	unlockB()
}

func TestRedis_ExpiredHolderDoesNotReleaseNewHolder(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	l := NewRedis(rdb, time.Second, 100*time.Millisecond)

	staleUnlock, err := l.Lock(context.Background(), []string{"r1"})
	require.NoError(t, err)

	// первый держатель завис дольше TTL
	mr.FastForward(2 * time.Second)
	require.False(t, mr.Exists(keyPrefix+"r1"))

	unlock, err := l.Lock(context.Background(), []string{"r1"})
	require.NoError(t, err)
	owner, err := mr.Get(keyPrefix + "r1")
	require.NoError(t, err)

	staleUnlock()

	got, err := mr.Get(keyPrefix + "r1")
	require.NoError(t, err)
	assert.Equal(t, owner, got)

	_, err = l.Lock(context.Background(), []string{"r1"})
	assert.ErrorIs(t, err, ErrLockTimeout)

	unlock()
	assert.False(t, mr.Exists(keyPrefix+"r1"))
}

func TestRedis_PartialAcquireReleased(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	l := NewRedis(rdb, time.Minute, 100*time.Millisecond)

	require.NoError(t, mr.Set(keyPrefix+"r2", "someone-else"))

	_, err := l.Lock(context.Background(), []string{"r2", "r1"})

	assert.ErrorIs(t, err, ErrLockTimeout)
	assert.False(t, mr.Exists(keyPrefix+"r1"))
	got, err := mr.Get(keyPrefix + "r2")
	require.NoError(t, err)
	assert.Equal(t, "someone-else", got)
}
