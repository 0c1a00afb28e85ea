package signals

type just[T any] struct {
	v T
}

// Just returns a Signal that is already resolved with v. Every listener
// receives v during Listen.
func Just[T any](v T) Signal[T] {
	return &just[T]{v: v}
}

func (j *just[T]) Listen(owner Owner, fn func(T)) Token {
	if alive(owner) {
		fn(j.v)
	}
	return nopToken
}
