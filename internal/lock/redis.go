package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "lock:room:"

var ErrLockTimeout = errors.New("timed out waiting for room lock")

// compare-and-delete: снимаем только свой замок
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Redis is a distributed keyed lock built on SET NX PX. The TTL bounds how
// long a crashed holder can block others.
type Redis struct {
	rdb   *redis.Client
	ttl   time.Duration
	wait  time.Duration
	retry time.Duration
}

func NewRedis(rdb *redis.Client, ttl, wait time.Duration) *Redis {
	return &Redis{rdb: rdb, ttl: ttl, wait: wait, retry: 25 * time.Millisecond}
}

func (r *Redis) Lock(ctx context.Context, keys []string) (func(), error) {
	keys = normalize(keys)
	token := uuid.NewString()

	ctx, cancel := context.WithTimeout(ctx, r.wait)
	defer cancel()

	acquired := make([]string, 0, len(keys))
	for _, k := range keys {
		if err := r.acquire(ctx, keyPrefix+k, token); err != nil {
			r.release(acquired, token)
			return nil, err
		}
		acquired = append(acquired, keyPrefix+k)
	}

	return func() { r.release(acquired, token) }, nil
}

func (r *Redis) acquire(ctx context.Context, key, token string) error {
	ticker := time.NewTicker(r.retry)
	defer ticker.Stop()

	for {
		ok, err := r.rdb.SetNX(ctx, key, token, r.ttl).Result()
		if err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("acquire %s: %w", key, err)
		}
		if ok {
			return nil
		}

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return fmt.Errorf("%w: %s", ErrLockTimeout, key)
			}
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (r *Redis) release(keys []string, token string) {
	// снимаем даже если исходный контекст запроса уже отменён
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	for _, k := range keys {
		_ = unlockScript.Run(ctx, r.rdb, []string{k}, token).Err()
	}
}
