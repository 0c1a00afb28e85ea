package signals

import "sync"

// Task is a Signal that resolves exactly once. Listeners registered before
// Finish receive the value as it resolves, later ones receive it immediately.
type Task[T any] struct {
	mu    sync.Mutex
	reg   *registry[T]
	done  bool
	value T
}

// NewTask creates an unresolved Task.
func NewTask[T any]() *Task[T] {
	return &Task[T]{reg: newRegistry[T]()}
}

func (t *Task[T]) Listen(owner Owner, fn func(T)) Token {
	t.mu.Lock()
	if t.done {
		v := t.value
		t.mu.Unlock()
		if alive(owner) {
			fn(v)
		}
		return nopToken
	}
	l := t.reg.add(owner, fn)
	t.mu.Unlock()

	return t.reg.token(l)
}

// Finish resolves the task with v. Calling it twice panics with
// ErrTaskFinished.
func (t *Task[T]) Finish(v T) {
	t.mu.Lock()
	if t.done {
		t.mu.Unlock()
		panic(ErrTaskFinished)
	}
	t.done = true
	t.value = v
	listeners := t.reg.snapshot()
	t.reg.clear()
	t.mu.Unlock()

	for _, l := range listeners {
		t.reg.deliver(l, v)
	}
}

// Done reports whether Finish has been called.
func (t *Task[T]) Done() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.done
}

// Value returns the resolved value, if any.
func (t *Task[T]) Value() (v T, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.value, t.done
}
