package signals

import (
	"runtime"
	"sync"
)

const maxArity = 8

// slots holds the latest value of every upstream of a combinator. P is one of
// the generated valuesN structs; filled tracks which of its fields were set.
type slots[P any] struct {
	mu     sync.Mutex
	full   uint8
	filled uint8
	reset  bool
	vals   P
}

func newSlots[P any](arity int, reset bool) *slots[P] {
	return &slots[P]{full: uint8(1<<arity - 1), reset: reset}
}

// insert stores a value through set and, once every slot is filled, returns a
// copy of all of them. A zip clears the slots in the same step so the values
// are consumed exactly once.
func (s *slots[P]) insert(i int, set func(*P)) (P, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set(&s.vals)
	s.filled |= 1 << i
	if s.filled != s.full {
		var zero P
		return zero, false
	}
	out := s.vals
	if s.reset {
		var zero P
		s.vals = zero
		s.filled = 0
	}
	return out, true
}

func (s *slots[P]) clone() *slots[P] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &slots[P]{full: s.full, filled: s.filled, reset: s.reset, vals: s.vals}
}

// attachFunc subscribes a single upstream so that its values land in one slot.
type attachFunc[P any] func(owner Owner, s *slots[P], emit func(P)) Token

type combinator[P, Out any] struct {
	pre       *slots[P]
	transform func(P) Out
	attach    []attachFunc[P]
}

// newCombinator listens to every upstream straight away so that values
// published before the first subscription still count. Every subscription
// starts from a copy of those values and fills its own slots from then on.
func newCombinator[P, Out any](reset bool, transform func(P) Out, attach ...attachFunc[P]) *combinator[P, Out] {
	if len(attach) < 2 || len(attach) > maxArity {
		panic(ErrArity)
	}
	c := &combinator[P, Out]{
		pre:       newSlots[P](len(attach), reset),
		transform: transform,
		attach:    attach,
	}

	pre := c.pre
	tokens := make([]Token, 0, len(attach))
	for _, a := range attach {
		tokens = append(tokens, a(nil, pre, func(P) {}))
	}
	runtime.AddCleanup(c, func(t Token) { t.Dispose() }, Token(newBag(tokens...)))
	return c
}

func (c *combinator[P, Out]) Listen(owner Owner, fn func(Out)) Token {
	if !alive(owner) {
		return nopToken
	}
	s := c.pre.clone()
	transform := c.transform
	emit := func(p P) {
		fn(transform(p))
	}

	tokens := make([]Token, 0, len(c.attach))
	for _, a := range c.attach {
		tokens = append(tokens, a(owner, s, emit))
	}
	return newBag(tokens...)
}
