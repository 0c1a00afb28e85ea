package signals

import (
	"sync"
	"sync/atomic"
	"weak"
)

type listener[T any] struct {
	id     uint64
	owner  Owner
	fn     func(T)
	active atomic.Bool
}

// registry is the listener bookkeeping shared by Source and Task. Every id in
// order has an entry in entries; both are only touched under the write lock.
type registry[T any] struct {
	mu      sync.RWMutex
	nextID  uint64
	order   []uint64
	entries map[uint64]*listener[T]
}

func newRegistry[T any]() *registry[T] {
	return &registry[T]{
		entries: map[uint64]*listener[T]{},
	}
}

func (r *registry[T]) add(owner Owner, fn func(T)) *listener[T] {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	l := &listener[T]{id: r.nextID, owner: holdWeakly(owner), fn: fn}
	l.active.Store(true)
	r.order = append(r.order, l.id)
	r.entries[l.id] = l
	return l
}

func (r *registry[T]) remove(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.entries[id]
	if !ok {
		return
	}
	l.active.Store(false)
	delete(r.entries, id)
	for i, other := range r.order {
		if other == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

func (r *registry[T]) clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.order = nil
	r.entries = map[uint64]*listener[T]{}
}

func (r *registry[T]) len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// snapshot returns the listeners most recently added first.
func (r *registry[T]) snapshot() []*listener[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*listener[T], 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		if l, ok := r.entries[r.order[i]]; ok {
			out = append(out, l)
		}
	}
	return out
}

// deliver invokes l unless it was removed after the snapshot was taken or its
// owner is gone, in which case the entry is pruned. It reports whether the
// handler ran.
func (r *registry[T]) deliver(l *listener[T], v T) bool {
	if !l.active.Load() {
		return false
	}
	if !alive(l.owner) {
		r.remove(l.id)
		return false
	}
	l.fn(v)
	return true
}

// token removes l when disposed. It only holds the registry weakly so an
// outstanding token does not keep a dropped producer around.
func (r *registry[T]) token(l *listener[T]) Token {
	wr := weak.Make(r)
	id := l.id
	return NewToken(func() {
		l.active.Store(false)
		if reg := wr.Value(); reg != nil {
			reg.remove(id)
		}
	})
}
