package corifier

// Option configures Corify behavior via functional arguments.
type Option func(*Options)

// Options holds the callbacks Corify invokes while labeling vertices.
type Options struct {
	// OnCore is called after a vertex is labeled core, with its index
	// and the recorded highest avatar.
	OnCore func(vertex, uniq int)

	// OnNonCore is called after a vertex is labeled non-core.
	OnNonCore func(vertex int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnCore:    func(int, int) {},
		OnNonCore: func(int) {},
	}
}

// WithOnCore registers a callback to run when a vertex is marked core.
func WithOnCore(fn func(vertex, uniq int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCore = fn
		}
	}
}

// WithOnNonCore registers a callback to run when a vertex is marked
// non-core.
func WithOnNonCore(fn func(vertex int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnNonCore = fn
		}
	}
}
