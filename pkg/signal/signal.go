package signal

import (
	"sync"

	"github.com/google/uuid"
)

// Handler is invoked with each value delivered to a connection.
type Handler[T any] func(value T)

// Signal is an event source. It holds a set of live connections and fans
// every fired value out to them. The zero value is not usable; create
// signals with New.
//
// All methods are safe for concurrent use.
type Signal[T any] struct {
	mu    sync.RWMutex
	conns map[string]*Connection[T]
}

// New creates an empty signal.
func New[T any]() *Signal[T] {
	return &Signal[T]{
		conns: make(map[string]*Connection[T]),
	}
}

// Connect registers a handler and returns its live connection.
// It never fails.
func (s *Signal[T]) Connect(handler Handler[T]) *Connection[T] {
	return s.connect(handler, false)
}

// Once registers a handler that receives at most one delivery. The
// connection disconnects itself immediately before the handler is invoked,
// so a handler that re-fires the same signal cannot run a second time.
func (s *Signal[T]) Once(handler Handler[T]) *Connection[T] {
	return s.connect(handler, true)
}

func (s *Signal[T]) connect(handler Handler[T], once bool) *Connection[T] {
	c := &Connection[T]{
		id:        uuid.New().String(),
		signal:    s,
		handler:   handler,
		once:      once,
		abandoned: make(chan struct{}),
	}
	c.connected.Store(true)

	s.mu.Lock()
	s.conns[c.id] = c
	s.mu.Unlock()

	return c
}

// Fire delivers value to every connection that is live at the moment it is
// visited. Each delivery is queued on the connection's own dispatch
// goroutine; Fire returns as soon as all live connections have been
// scheduled and never waits for handlers to run.
func (s *Signal[T]) Fire(value T) {
	// Copy before notify so handlers can connect and disconnect freely
	// while dispatch is in progress.
	s.mu.RLock()
	conns := make([]*Connection[T], 0, len(s.conns))
	for _, c := range s.conns {
		conns = append(conns, c)
	}
	s.mu.RUnlock()

	for _, c := range conns {
		c.deliver(value)
	}
}

// DisconnectAll detaches every connection at once. Deliveries already queued
// by an earlier Fire still run; no future Fire reaches any connection that
// was in the set. Callers parked in Wait are woken with ErrDisconnected.
func (s *Signal[T]) DisconnectAll() {
	s.mu.Lock()
	detached := s.conns
	s.conns = make(map[string]*Connection[T])
	s.mu.Unlock()

	for _, c := range detached {
		c.connected.Store(false)
		c.abandon()
	}
}

// ConnectionCount returns the number of live connections.
func (s *Signal[T]) ConnectionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.conns)
}

// remove detaches a single connection. Called by Connection.Disconnect.
func (s *Signal[T]) remove(id string) {
	s.mu.Lock()
	delete(s.conns, id)
	s.mu.Unlock()
}
