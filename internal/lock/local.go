// Package lock provides keyed mutual exclusion for room reservations.
package lock

import (
	"context"
	"slices"
	"sync"
)

type semaphore struct {
	ch   chan struct{}
	refs int
}

// Local is an in-process keyed mutex. It is enough for a single replica;
// several replicas need Redis.
type Local struct {
	mu   sync.Mutex
	sems map[string]*semaphore
}

func NewLocal() *Local {
	return &Local{sems: make(map[string]*semaphore)}
}

func (l *Local) Lock(ctx context.Context, keys []string) (func(), error) {
	keys = normalize(keys)
	acquired := make([]string, 0, len(keys))

	for _, k := range keys {
		s := l.ref(k)
		select {
		case s.ch <- struct{}{}:
			acquired = append(acquired, k)
		case <-ctx.Done():
			l.unref(k)
			l.release(acquired)
			return nil, ctx.Err()
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() { l.release(acquired) })
	}, nil
}

func (l *Local) release(keys []string) {
	for i := len(keys) - 1; i >= 0; i-- {
		l.mu.Lock()
		s := l.sems[keys[i]]
		l.mu.Unlock()
		<-s.ch
		l.unref(keys[i])
	}
}

func (l *Local) ref(key string) *semaphore {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.sems[key]
	if !ok {
		s = &semaphore{ch: make(chan struct{}, 1)}
		l.sems[key] = s
	}
	s.refs++
	return s
}

func (l *Local) unref(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.sems[key]
	if !ok {
		return
	}
	s.refs--
	if s.refs == 0 {
		delete(l.sems, key)
	}
}

// normalize sorts and dedups keys so that every caller takes locks in the
// same order.
func normalize(keys []string) []string {
	out := slices.Clone(keys)
	slices.Sort(out)
	return slices.Compact(out)
}
