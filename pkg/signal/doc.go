// Package signal provides a lightweight observer primitive for in-process
// event dispatch. A Signal fans a fired value out to a set of revocable
// Connections, each of which runs its handler on its own dispatch goroutine
// so that firing never blocks on handler completion.
//
// The package uses Go generics for type safety: a Signal[T] only accepts and
// delivers values of type T.
//
// Basic usage:
//
//	s := signal.New[string]()
//
//	conn := s.Connect(func(msg string) {
//		fmt.Println("received:", msg)
//	})
//	defer conn.Disconnect()
//
//	s.Fire("hello")
//
// Connections registered with Once are delivered at most one value and
// disconnect themselves before the handler runs, so a handler that re-fires
// the same signal cannot be invoked twice:
//
//	s.Once(func(msg string) {
//		// runs for the next fire only
//	})
//
// Wait blocks the caller until the next fire and returns its payload:
//
//	value, err := s.Wait(ctx)
//
// Delivery guarantees:
//   - Each fire delivers to every connection that is live when it is visited,
//     exactly once per fire.
//   - Deliveries to a single connection preserve fire order. No ordering is
//     guaranteed across different connections.
//   - A panicking handler is recovered at the invocation boundary; it never
//     reaches the firer and does not disturb other connections.
//
// When a value owner wants to expose "subscribe" without exposing "publish",
// NewRestricted returns a subscribe-only facade together with a privately
// held fire function:
//
//	events, fire := signal.NewRestricted[int]()
//	// hand out events; keep fire to yourself
package signal
