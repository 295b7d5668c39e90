package attr

import (
	"sync"

	"github.com/dmitrymomot/signals/pkg/signal"
)

// SetFunc is the privately held mutation capability of an immutable
// attribute.
type SetFunc[T any] func(value T, opts ...SetOption)

// BroadcastFunc re-announces an immutable attribute's current value on its
// changed signal without mutating it. The get transform is re-applied at
// broadcast time.
type BroadcastFunc func(extra ...any)

// Immutable is a reactive value cell that external holders can only read
// and observe: its changed signal is restricted, and the set and broadcast
// capabilities are returned separately by NewImmutable so the constructing
// scope alone can mutate or publish.
//
// All methods are safe for concurrent use.
type Immutable[T any] struct {
	mu      sync.RWMutex
	value   T
	get     Transform[T]
	equals  func(a, b T) bool
	changed *signal.Restricted[Update[T]]
	fire    signal.FireFunc[Update[T]]
}

// NewImmutable creates an immutable attribute and returns it with the two
// private capabilities: a setter and a broadcaster. Values are stored as
// given; WithSet has no effect on immutable attributes.
func NewImmutable[T any](initial T, opts ...Option[T]) (*Immutable[T], SetFunc[T], BroadcastFunc) {
	cfg := defaultOptions[T]()
	for _, opt := range opts {
		opt(&cfg)
	}

	changed, fire := signal.NewRestricted[Update[T]]()
	a := &Immutable[T]{
		value:   initial,
		get:     cfg.get,
		equals:  cfg.equals,
		changed: changed,
		fire:    fire,
	}
	return a, a.setValue, a.broadcast
}

// Get returns the get transform applied to the current value.
func (a *Immutable[T]) Get(extra ...any) T {
	a.mu.RLock()
	value := a.value
	a.mu.RUnlock()
	return a.get(value, extra...)
}

// Changed returns the restricted changed signal: observe-only for external
// holders.
func (a *Immutable[T]) Changed() *signal.Restricted[Update[T]] {
	return a.changed
}

// setValue is handed out as the SetFunc capability. The value is stored as
// given (no set transform); an equal value is a no-op.
func (a *Immutable[T]) setValue(value T, opts ...SetOption) {
	cfg := applySetOptions(opts)

	a.mu.Lock()
	if a.equals(value, a.value) {
		a.mu.Unlock()
		return
	}
	a.value = value
	a.mu.Unlock()

	if cfg.silent {
		return
	}
	a.broadcast(cfg.extra...)
}

// broadcast is handed out as the BroadcastFunc capability.
func (a *Immutable[T]) broadcast(extra ...any) {
	a.mu.RLock()
	value := a.value
	a.mu.RUnlock()

	a.fire(Update[T]{Value: a.get(value, extra...), Extra: extra})
}
