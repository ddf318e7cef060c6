package utils

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrBreakerOpen = errors.New("circuit breaker is open")

type State int

const (
	StateClosed State = iota
	StateHalfOpen
	StateOpen
)

// CircuitBreaker guards a low-volume outbound dependency. It trips after a
// run of consecutive failures and probes again once the cooldown elapses.
type CircuitBreaker struct {
	name        string
	maxFailures uint32
	cooldown    time.Duration

	mutex    sync.Mutex
	state    State
	failures uint32
	openedAt time.Time
}

func NewCircuitBreaker(name string, maxFailures uint32, cooldown time.Duration) *CircuitBreaker {
	if maxFailures == 0 {
		maxFailures = 5
	}
	if cooldown <= 0 {
		cooldown = 30 * time.Second
	}
	return &CircuitBreaker{
		name:        name,
		maxFailures: maxFailures,
		cooldown:    cooldown,
		state:       StateClosed,
	}
}

func (cb *CircuitBreaker) State() State {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()
	return cb.observedState(time.Now())
}

// Execute runs req unless the breaker is open. The request's error passes
// through untouched so callers can still log the underlying failure.
func (cb *CircuitBreaker) Execute(ctx context.Context, req func() error) error {
	if err := cb.beforeRequest(); err != nil {
		return err
	}

	err := req()
	cb.afterRequest(err == nil)
	return err
}

func (cb *CircuitBreaker) beforeRequest() error {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()

	if cb.observedState(time.Now()) == StateOpen {
		return ErrBreakerOpen
	}
	return nil
}

func (cb *CircuitBreaker) afterRequest(success bool) {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()

	if success {
		cb.failures = 0
		cb.state = StateClosed
		return
	}

	cb.failures++
	if cb.failures >= cb.maxFailures {
		cb.state = StateOpen
		cb.openedAt = time.Now()
	}
}

// observedState folds cooldown expiry into the stored state. Callers hold the
// mutex.
func (cb *CircuitBreaker) observedState(now time.Time) State {
	if cb.state == StateOpen && now.Sub(cb.openedAt) >= cb.cooldown {
		cb.state = StateHalfOpen
		cb.failures = cb.maxFailures - 1
	}
	return cb.state
}
