package signals

import (
	"runtime"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
)

// Token represents a live subscription. Dispose unsubscribes; calling it
// again, from any goroutine, does nothing.
type Token interface {
	Dispose()
}

type funcToken struct {
	mu       sync.Mutex
	disposed bool
	fn       func()
}

// NewToken returns a Token that runs fn the first time it is disposed.
func NewToken(fn func()) Token {
	return &funcToken{fn: fn}
}

func (t *funcToken) Dispose() {
	t.mu.Lock()
	if t.disposed {
		t.mu.Unlock()
		return
	}
	t.disposed = true
	fn := t.fn
	t.fn = nil
	t.mu.Unlock()

	if fn != nil {
		fn()
	}
}

type noopToken struct {
	_ byte
}

func (*noopToken) Dispose() {}

// returned by producers that already delivered everything they ever will
var nopToken Token = &noopToken{}

// Bag groups tokens so their lifetimes end together. Disposing a bag disposes
// every token it holds, and tokens added afterwards are disposed on the spot.
//
// A bag created with NewBag also acts as a lifetime anchor: once it becomes
// unreachable the garbage collector disposes its contents.
type Bag struct {
	*bagState
}

type bagState struct {
	mu       sync.Mutex
	disposed bool
	tokens   mapset.Set[Token]
}

// NewBag returns an anchor bag holding tokens.
func NewBag(tokens ...Token) *Bag {
	b := newBag(tokens...)
	runtime.AddCleanup(b, func(s *bagState) { s.Dispose() }, b.bagState)
	return b
}

// newBag is the internal grouping used by operators. It is not tied to the
// garbage collector, its owner decides when it is disposed.
func newBag(tokens ...Token) *Bag {
	b := &Bag{bagState: &bagState{
		tokens: mapset.NewThreadUnsafeSet[Token](),
	}}
	b.Add(tokens...)
	return b
}

// Add binds the lifetime of tokens to the bag.
func (s *bagState) Add(tokens ...Token) {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		for _, t := range tokens {
			if t != nil {
				t.Dispose()
			}
		}
		return
	}
	for _, t := range tokens {
		if t != nil {
			s.tokens.Add(t)
		}
	}
	s.mu.Unlock()
}

// Len reports how many tokens the bag currently holds.
func (s *bagState) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens.Cardinality()
}

// Alive reports whether the bag has not been disposed yet, which makes a bag
// usable as the Owner of a subscription. Subscriptions only hold their bag
// owner weakly, so an anchor may own the subscriptions it holds.
func (s *bagState) Alive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.disposed
}

func (s *bagState) Dispose() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.disposed = true
	tokens := s.tokens.ToSlice()
	s.tokens.Clear()
	s.mu.Unlock()

	for _, t := range tokens {
		t.Dispose()
	}
}
