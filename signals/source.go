package signals

// Source is a manually triggered Signal. It never buffers, values published
// while nobody listens are dropped.
//
// Listen, Publish and Dispose of the returned tokens are safe for concurrent
// use. Handlers run on the publishing goroutine, outside of any lock.
type Source[T any] struct {
	reg        *registry[T]
	latestOnly bool
}

type sourceConfig struct {
	latestOnly bool
}

// SourceOption configures a Source.
type SourceOption func(*sourceConfig)

// LatestOnly makes Publish deliver to the most recently subscribed live
// listener only.
func LatestOnly() SourceOption {
	return func(c *sourceConfig) {
		c.latestOnly = true
	}
}

// NewSource creates a Source.
func NewSource[T any](opts ...SourceOption) *Source[T] {
	cfg := &sourceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Source[T]{
		reg:        newRegistry[T](),
		latestOnly: cfg.latestOnly,
	}
}

func (s *Source[T]) Listen(owner Owner, fn func(T)) Token {
	l := s.reg.add(owner, fn)
	return s.reg.token(l)
}

// Publish delivers v synchronously to the current listeners, most recently
// subscribed first.
func (s *Source[T]) Publish(v T) {
	for _, l := range s.reg.snapshot() {
		if s.reg.deliver(l, v) && s.latestOnly {
			return
		}
	}
}

// Len reports the number of registered listeners.
func (s *Source[T]) Len() int {
	return s.reg.len()
}
