package attr

// Option configures an attribute at construction time.
type Option[T any] func(*options[T])

type options[T any] struct {
	get    Transform[T]
	set    Transform[T]
	equals func(a, b T) bool
}

func defaultOptions[T any]() options[T] {
	return options[T]{
		get:    identity[T],
		set:    identity[T],
		equals: defaultEquals[T],
	}
}

// WithGet sets the transform applied on every read. It runs against the
// stored value and must not mutate it.
func WithGet[T any](fn Transform[T]) Option[T] {
	return func(o *options[T]) {
		if fn != nil {
			o.get = fn
		}
	}
}

// WithSet sets the transform applied to incoming values before the equality
// check and store. Immutable attributes store raw values and ignore this
// option.
func WithSet[T any](fn Transform[T]) Option[T] {
	return func(o *options[T]) {
		if fn != nil {
			o.set = fn
		}
	}
}

// WithEquals overrides the equality function used to decide whether a set
// actually changes the value.
func WithEquals[T any](fn func(a, b T) bool) Option[T] {
	return func(o *options[T]) {
		if fn != nil {
			o.equals = fn
		}
	}
}

// SetOption configures a single Set, Update, or owner-set call.
type SetOption func(*setOptions)

type setOptions struct {
	silent bool
	extra  []any
}

func applySetOptions(opts []SetOption) setOptions {
	var cfg setOptions
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Silent stores the value without firing the changed signal.
func Silent() SetOption {
	return func(o *setOptions) {
		o.silent = true
	}
}

// WithExtra forwards extra arguments to the set transform and includes them
// in the fired change payload.
func WithExtra(extra ...any) SetOption {
	return func(o *setOptions) {
		o.extra = extra
	}
}
