package signals

import "sync"

type replay[T any] struct {
	mu    sync.Mutex
	count int
	buf   []T
}

// Replay keeps the last count values emitted by s, starting now, and hands
// them to every new subscriber before the live values. A count of zero or
// less never replays anything.
func Replay[T any](s Signal[T], count int) Signal[T] {
	return Lift[T, T](s, &replay[T]{count: max(count, 0)})
}

func (r *replay[T]) Attach(upstream Signal[T]) Token {
	return upstream.Listen(nil, r.push)
}

func (r *replay[T]) push(v T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.count == 0 {
		return
	}
	r.buf = append(r.buf, v)
	if over := len(r.buf) - r.count; over > 0 {
		r.buf = append(r.buf[:0], r.buf[over:]...)
	}
}

func (r *replay[T]) snapshot() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]T, len(r.buf))
	copy(out, r.buf)
	return out
}

func (r *replay[T]) Lift(emit func(T)) func(T) {
	for _, v := range r.snapshot() {
		emit(v)
	}
	return emit
}
