package signals

import "weak"

// Owner is consulted before every delivery to a subscription bound to it.
// Once Alive reports false the handler is skipped and, where the producer
// keeps a listener registry, the entry is pruned.
type Owner interface {
	Alive() bool
}

// OwnerFunc adapts a function to Owner.
type OwnerFunc func() bool

func (f OwnerFunc) Alive() bool { return f() }

type weakOwner[T any] struct {
	p weak.Pointer[T]
}

// Weak returns an Owner that stays alive for as long as p has not been
// garbage collected. The subscription does not keep p reachable, but a handler
// that captures p does; use SubscribeWeak when the handler needs p.
func Weak[T any](p *T) Owner {
	return weakOwner[T]{p: weak.Make(p)}
}

func (w weakOwner[T]) Alive() bool {
	return w.p.Value() != nil
}

func alive(o Owner) bool {
	return o == nil || o.Alive()
}

type weakBag struct {
	p weak.Pointer[Bag]
}

func (w weakBag) Alive() bool {
	b := w.p.Value()
	return b != nil && b.Alive()
}

// holdWeakly swaps a bag owner for a weak handle so that an anchor owning its
// own subscriptions can still be collected.
func holdWeakly(o Owner) Owner {
	if b, ok := o.(*Bag); ok && b != nil {
		return weakBag{p: weak.Make(b)}
	}
	return o
}
