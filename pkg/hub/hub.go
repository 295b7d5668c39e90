package hub

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/signals/pkg/signal"
)

// Hub is a registry of named signals sharing one payload type. Topics are
// created lazily on first use and live until Reset.
//
// All methods are safe for concurrent use.
type Hub[T any] struct {
	mu     sync.RWMutex
	topics map[string]*signal.Signal[T]

	logger  *slog.Logger
	metrics func(topic string, connections int)
}

// New creates an empty hub.
func New[T any](opts ...Option) *Hub[T] {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Hub[T]{
		topics:  make(map[string]*signal.Signal[T]),
		logger:  cfg.logger,
		metrics: cfg.metrics,
	}
}

// Signal returns the signal for topic, creating it if needed.
func (h *Hub[T]) Signal(topic string) *signal.Signal[T] {
	// Fast path: topic already exists.
	h.mu.RLock()
	sig, ok := h.topics[topic]
	h.mu.RUnlock()
	if ok {
		return sig
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	// Double-check: another goroutine may have created it.
	if sig, ok = h.topics[topic]; ok {
		return sig
	}
	sig = signal.New[T]()
	h.topics[topic] = sig
	return sig
}

// Connect registers a handler on topic, creating the topic if needed.
func (h *Hub[T]) Connect(topic string, handler signal.Handler[T]) *signal.Connection[T] {
	sig := h.Signal(topic)
	conn := sig.Connect(handler)
	h.reportMetrics(topic, sig.ConnectionCount())
	return conn
}

// Once registers a handler on topic for at most one delivery.
func (h *Hub[T]) Once(topic string, handler signal.Handler[T]) *signal.Connection[T] {
	sig := h.Signal(topic)
	conn := sig.Once(handler)
	h.reportMetrics(topic, sig.ConnectionCount())
	return conn
}

// Fire delivers value to every connection on topic. Firing a topic that was
// never used is a no-op.
func (h *Hub[T]) Fire(topic string, value T) {
	h.mu.RLock()
	sig, ok := h.topics[topic]
	h.mu.RUnlock()
	if !ok {
		return
	}

	h.logger.Debug("firing signal",
		slog.String("topic", topic),
		slog.Int("connections", sig.ConnectionCount()))
	sig.Fire(value)
}

// Wait blocks until the next fire on topic, creating the topic if needed.
func (h *Hub[T]) Wait(ctx context.Context, topic string) (T, error) {
	return h.Signal(topic).Wait(ctx)
}

// Topics returns the names of all topics seen so far.
func (h *Hub[T]) Topics() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	topics := make([]string, 0, len(h.topics))
	for topic := range h.topics {
		topics = append(topics, topic)
	}
	return topics
}

// ConnectionCount returns the number of live connections on topic, zero if
// the topic does not exist.
func (h *Hub[T]) ConnectionCount(topic string) int {
	h.mu.RLock()
	sig, ok := h.topics[topic]
	h.mu.RUnlock()
	if !ok {
		return 0
	}
	return sig.ConnectionCount()
}

// Reset disconnects every connection on every topic and drops the topic
// map. Callers parked in Wait are woken with signal.ErrDisconnected.
func (h *Hub[T]) Reset() {
	h.mu.Lock()
	dropped := h.topics
	h.topics = make(map[string]*signal.Signal[T])
	h.mu.Unlock()

	for topic, sig := range dropped {
		sig.DisconnectAll()
		h.reportMetrics(topic, 0)
	}
}

func (h *Hub[T]) reportMetrics(topic string, connections int) {
	if h.metrics != nil {
		h.metrics(topic, connections)
	}
}
