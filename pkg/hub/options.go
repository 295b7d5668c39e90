package hub

import "log/slog"

// Option configures a hub.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	metrics func(topic string, connections int)
}

func defaultOptions() options {
	return options{
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithLogger sets the logger used to debug-log fires. The default logger
// discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetricsCallback registers a callback invoked with the topic and its
// live connection count whenever a connection is added through the hub.
func WithMetricsCallback(fn func(topic string, connections int)) Option {
	return func(o *options) {
		o.metrics = fn
	}
}
