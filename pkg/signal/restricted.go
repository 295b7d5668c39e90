package signal

import "context"

// FireFunc is the publish capability of a restricted signal. It is returned
// once at construction and never placed on the restricted facade.
type FireFunc[T any] func(value T)

// Restricted is a subscribe-only facade over a signal: holders may connect,
// wait, and disconnect, but cannot fire. The backing signal is unexported,
// so the capability split is enforced by the type system.
type Restricted[T any] struct {
	signal *Signal[T]
}

// NewRestricted creates a signal and returns its restricted facade together
// with the privately held fire function. A component that wants "others may
// observe, only I may publish" hands out the facade and keeps the fire
// function to itself.
func NewRestricted[T any]() (*Restricted[T], FireFunc[T]) {
	return Restrict(New[T]())
}

// Restrict wraps an existing signal in a restricted facade and returns the
// corresponding fire function. The facade shares the signal's connection
// set; it does not copy it.
func Restrict[T any](s *Signal[T]) (*Restricted[T], FireFunc[T]) {
	return &Restricted[T]{signal: s}, s.Fire
}

// Connect registers a handler on the backing signal.
func (r *Restricted[T]) Connect(handler Handler[T]) *Connection[T] {
	return r.signal.Connect(handler)
}

// Once registers a handler for at most one delivery on the backing signal.
func (r *Restricted[T]) Once(handler Handler[T]) *Connection[T] {
	return r.signal.Once(handler)
}

// Wait blocks until the next fire on the backing signal.
func (r *Restricted[T]) Wait(ctx context.Context) (T, error) {
	return r.signal.Wait(ctx)
}

// DisconnectAll detaches every connection from the backing signal.
func (r *Restricted[T]) DisconnectAll() {
	r.signal.DisconnectAll()
}

// ConnectionCount returns the number of live connections on the backing
// signal.
func (r *Restricted[T]) ConnectionCount() int {
	return r.signal.ConnectionCount()
}
