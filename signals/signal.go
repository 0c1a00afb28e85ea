package signals

import "weak"

// Signal is a typed producer of a push-based event sequence.
//
// Listen registers fn and returns the Token that ends the subscription. The
// handler receives values in the order the producer emits them and never sees
// values emitted before the call, unless the producer replays (Task, Just,
// Replay). When owner is non-nil it is checked before every delivery.
type Signal[T any] interface {
	Listen(owner Owner, fn func(T)) Token
}

// Subscribe listens to s without an owner.
func Subscribe[T any](s Signal[T], fn func(T)) Token {
	return SubscribeWith(s, nil, fn)
}

// SubscribeWith listens to s for as long as owner is alive.
func SubscribeWith[T any](s Signal[T], owner Owner, fn func(T)) Token {
	mustSignal(s)
	return s.Listen(owner, fn)
}

// SubscribeWeak listens to s for as long as owner has not been garbage
// collected, handing the live owner to fn on every value. Only a weak
// reference to owner is kept, so fn should reach it through its first
// argument rather than capture it.
func SubscribeWeak[L, T any](s Signal[T], owner *L, fn func(*L, T)) Token {
	w := weakOwner[L]{p: weak.Make(owner)}
	return SubscribeWith(s, w, func(v T) {
		if p := w.p.Value(); p != nil {
			fn(p, v)
		}
	})
}

func mustSignal[T any](s Signal[T]) {
	if s == nil {
		panic(ErrNilSignal)
	}
}
