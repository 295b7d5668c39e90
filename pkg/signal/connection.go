package signal

import (
	"sync"
	"sync/atomic"
)

// Connection links one handler to one signal for the connection's entire
// lifetime. Once disconnected it is permanently inert; there is no
// re-connect.
//
// Deliveries to a connection are queued in FIFO order and drained by a
// dispatch goroutine owned by the connection, started lazily on first
// delivery and stopped when the queue empties. Handlers on different
// connections run independently of each other and of the firer.
type Connection[T any] struct {
	id      string
	signal  *Signal[T]
	handler Handler[T]
	once    bool

	// fired guards at-most-once delivery for Once connections.
	fired     atomic.Bool
	connected atomic.Bool

	mu      sync.Mutex
	pending []T
	running bool

	// abandoned is closed by the owning signal's DisconnectAll; Wait uses
	// it to stop waiting on a signal that was torn down.
	abandonOnce sync.Once
	abandoned   chan struct{}
}

// ID returns the connection's unique identifier.
func (c *Connection[T]) ID() string {
	return c.id
}

// Connected reports whether the connection is still live.
func (c *Connection[T]) Connected() bool {
	return c.connected.Load()
}

// Disconnect removes the connection from its owning signal. It is
// idempotent; second and later calls are no-ops. Deliveries already queued
// for this connection still run.
func (c *Connection[T]) Disconnect() {
	if !c.connected.CompareAndSwap(true, false) {
		return
	}
	c.signal.remove(c.id)
}

// deliver schedules one handler invocation if the connection is live.
func (c *Connection[T]) deliver(value T) {
	if c.once {
		if !c.connected.Load() {
			return
		}
		if !c.fired.CompareAndSwap(false, true) {
			return
		}
		// Disconnect before the handler runs so a re-entrant Fire from
		// inside the handler cannot deliver a second time.
		c.Disconnect()
		c.schedule(value)
		return
	}

	if !c.connected.Load() {
		return
	}
	c.schedule(value)
}

func (c *Connection[T]) schedule(value T) {
	c.mu.Lock()
	c.pending = append(c.pending, value)
	if !c.running {
		c.running = true
		go c.drain()
	}
	c.mu.Unlock()
}

func (c *Connection[T]) drain() {
	for {
		c.mu.Lock()
		if len(c.pending) == 0 {
			c.running = false
			c.mu.Unlock()
			return
		}
		value := c.pending[0]
		c.pending = c.pending[1:]
		c.mu.Unlock()

		c.invoke(value)
	}
}

// invoke runs the handler with panic recovery so a failing handler cannot
// corrupt the firer's control flow or starve the connection's queue.
func (c *Connection[T]) invoke(value T) {
	defer func() {
		_ = recover()
	}()
	c.handler(value)
}

func (c *Connection[T]) abandon() {
	c.abandonOnce.Do(func() {
		close(c.abandoned)
	})
}
