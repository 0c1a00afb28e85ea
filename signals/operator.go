package signals

import (
	"runtime"
	"sync"
)

// Operator turns a downstream handler into the handler installed upstream.
// Lift runs once per subscription, so whatever state it closes over belongs
// to that subscription alone.
type Operator[In, Out any] interface {
	Lift(emit func(Out)) func(In)
}

// OperatorFunc adapts a function to Operator.
type OperatorFunc[In, Out any] func(emit func(Out)) func(In)

func (f OperatorFunc[In, Out]) Lift(emit func(Out)) func(In) {
	return f(emit)
}

// Attacher is implemented by operators that need a standing subscription to
// their upstream, independent of downstream subscribers. Attach is called
// once when the operator is lifted; the returned token is disposed when the
// lifted signal is garbage collected.
type Attacher[In any] interface {
	Attach(upstream Signal[In]) Token
}

type lifted[In, Out any] struct {
	upstream Signal[In]
	op       Operator[In, Out]
}

// Lift builds a Signal that forwards every subscription to upstream through
// op.
func Lift[In, Out any](upstream Signal[In], op Operator[In, Out]) Signal[Out] {
	mustSignal(upstream)
	l := &lifted[In, Out]{upstream: upstream, op: op}
	if a, ok := op.(Attacher[In]); ok {
		tok := a.Attach(upstream)
		runtime.AddCleanup(l, func(t Token) { t.Dispose() }, tok)
	}
	return l
}

func (l *lifted[In, Out]) Listen(owner Owner, fn func(Out)) Token {
	if !alive(owner) {
		return nopToken
	}
	return l.upstream.Listen(owner, l.op.Lift(fn))
}

// Map applies fn to every value.
func Map[In, Out any](s Signal[In], fn func(In) Out) Signal[Out] {
	return Lift[In, Out](s, OperatorFunc[In, Out](func(emit func(Out)) func(In) {
		return func(v In) {
			emit(fn(v))
		}
	}))
}

// Filter forwards the values for which keep reports true.
func Filter[T any](s Signal[T], keep func(T) bool) Signal[T] {
	return Lift[T, T](s, OperatorFunc[T, T](func(emit func(T)) func(T) {
		return func(v T) {
			if keep(v) {
				emit(v)
			}
		}
	}))
}

// Distinct drops values equal to the previous one. Each subscription tracks
// its own previous value, starting from none.
func Distinct[T comparable](s Signal[T]) Signal[T] {
	return DistinctFunc(s, func(a, b T) bool { return a == b })
}

// DistinctFunc is Distinct with a caller supplied equality.
func DistinctFunc[T any](s Signal[T], equal func(a, b T) bool) Signal[T] {
	return Lift[T, T](s, OperatorFunc[T, T](func(emit func(T)) func(T) {
		var (
			mu   sync.Mutex
			prev T
			seen bool
		)
		return func(v T) {
			duplicate := func() bool {
				mu.Lock()
				defer mu.Unlock()
				if seen && equal(prev, v) {
					return true
				}
				prev, seen = v, true
				return false
			}()
			if !duplicate {
				emit(v)
			}
		}
	}))
}
