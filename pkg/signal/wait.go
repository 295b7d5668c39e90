package signal

import "context"

// Wait blocks until the next Fire after the call and returns its payload.
//
// It returns ctx.Err() if the context is cancelled first, and
// ErrDisconnected if DisconnectAll tears the signal down while waiting.
// With context.Background() and a signal that never fires again, Wait
// blocks forever.
func (s *Signal[T]) Wait(ctx context.Context) (T, error) {
	done := make(chan T, 1)
	conn := s.Once(func(value T) {
		done <- value
	})

	select {
	case value := <-done:
		return value, nil

	case <-conn.abandoned:
		// A fire that already claimed the one-shot connection wins over
		// the teardown; its delivery is queued and not cancelled.
		if conn.fired.Load() {
			return <-done, nil
		}
		var zero T
		return zero, ErrDisconnected

	case <-ctx.Done():
		conn.Disconnect()
		var zero T
		return zero, ctx.Err()
	}
}
