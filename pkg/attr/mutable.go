package attr

import (
	"sync"

	"github.com/dmitrymomot/signals/pkg/signal"
)

// Mutable is a reactive value cell whose changed signal is a full signal:
// any holder of the attribute may observe it, and any holder of the signal
// may publish on it. Use NewImmutable when observers must not be able to
// mutate or publish.
//
// All methods are safe for concurrent use.
type Mutable[T any] struct {
	mu      sync.RWMutex
	value   T
	get     Transform[T]
	set     Transform[T]
	equals  func(a, b T) bool
	changed *signal.Signal[Change[T]]
}

// NewMutable creates a mutable attribute with the given initial value.
// Transforms default to identity and equality to reflect.DeepEqual.
func NewMutable[T any](initial T, opts ...Option[T]) *Mutable[T] {
	cfg := defaultOptions[T]()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Mutable[T]{
		value:   initial,
		get:     cfg.get,
		set:     cfg.set,
		equals:  cfg.equals,
		changed: signal.New[Change[T]](),
	}
}

// Get returns the get transform applied to the current value. It never
// mutates stored state.
func (a *Mutable[T]) Get(extra ...any) T {
	a.mu.RLock()
	value := a.value
	a.mu.RUnlock()
	return a.get(value, extra...)
}

// Peek returns the stored value without applying the get transform.
func (a *Mutable[T]) Peek() T {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.value
}

// Set runs the set transform on value and stores the result. If the result
// equals the current value nothing happens; otherwise the changed signal
// fires with the new and previous values unless Silent is given.
//
// The set transform runs exactly once per call; its result feeds both the
// equality check and the store.
func (a *Mutable[T]) Set(value T, opts ...SetOption) {
	cfg := applySetOptions(opts)
	a.store(func(T) T { return value }, cfg)
}

// Update reads the current value, applies fn, and routes the result through
// the same transform, equality, and notification path as Set.
func (a *Mutable[T]) Update(fn func(current T) T, opts ...SetOption) {
	cfg := applySetOptions(opts)
	a.store(fn, cfg)
}

// Changed returns the signal fired on every effective value change.
func (a *Mutable[T]) Changed() *signal.Signal[Change[T]] {
	return a.changed
}

func (a *Mutable[T]) store(fn func(current T) T, cfg setOptions) {
	a.mu.Lock()
	next := a.set(fn(a.value), cfg.extra...)
	if a.equals(next, a.value) {
		a.mu.Unlock()
		return
	}
	previous := a.value
	a.value = next
	a.mu.Unlock()

	if cfg.silent {
		return
	}
	a.changed.Fire(Change[T]{Value: next, Previous: previous, Extra: cfg.extra})
}
