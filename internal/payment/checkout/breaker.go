package checkout

import (
	"errors"
	"sync"
	"time"
)

type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

// Breaker перестаёт ходить к провайдеру после maxFailures подряд неудачных
// вызовов и пробует снова через resetTimeout. Ответы 4xx неудачей не считаются.
type Breaker struct {
	maxFailures     int
	resetTimeout    time.Duration
	failureCount    int
	lastFailureTime time.Time
	state           State
	mu              sync.Mutex
	now             func() time.Time
}

func NewBreaker(maxFailures int, resetTimeout time.Duration) *Breaker {
	return &Breaker{
		maxFailures:  maxFailures,
		resetTimeout: resetTimeout,
		state:        StateClosed,
		now:          time.Now,
	}
}

// Execute runs fn unless the circuit is open. isFailure decides which errors
// count against the provider.
func (b *Breaker) Execute(fn func() error, isFailure func(error) bool) error {
	if !b.allow() {
		return ErrCircuitOpen
	}

	err := fn()
	b.record(err != nil && isFailure(err))
	return err
}

func (b *Breaker) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != StateOpen {
		return true
	}
	if b.now().Sub(b.lastFailureTime) > b.resetTimeout {
		b.state = StateHalfOpen
		b.failureCount = 0
		return true
	}
	return false
}

func (b *Breaker) record(failed bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !failed {
		b.state = StateClosed
		b.failureCount = 0
		return
	}

	b.failureCount++
	b.lastFailureTime = b.now()
	if b.failureCount >= b.maxFailures || b.state == StateHalfOpen {
		b.state = StateOpen
	}
}

func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}
