// Package hub provides a named-topic registry over the signal package for
// components that want loosely-coupled events without sharing *signal.Signal
// values directly. Signals are created lazily per topic; firing a topic
// nobody listens on is a no-op, not an error.
//
// Basic usage:
//
//	h := hub.New[string]()
//
//	conn := h.Connect("user.created", func(id string) {
//		fmt.Println("welcome", id)
//	})
//	defer conn.Disconnect()
//
//	h.Fire("user.created", "usr_123")
//
// A hub can report its topics and connection counts, log fires through an
// optional slog.Logger, and notify a metrics callback when connections are
// added through the hub:
//
//	h := hub.New[string](
//		hub.WithLogger(log),
//		hub.WithMetricsCallback(func(topic string, connections int) {
//			gauge.Set(topic, connections)
//		}),
//	)
package hub
