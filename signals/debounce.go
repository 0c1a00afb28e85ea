package signals

import (
	"sync"
	"time"
)

type debounced[T any] struct {
	upstream Signal[T]
	delay    time.Duration
	sched    Scheduler
}

// Debounce delivers a value once delay has passed without a newer one
// arriving. Disposing the subscription drops a pending value. A nil sched
// uses NewScheduler.
func Debounce[T any](s Signal[T], delay time.Duration, sched Scheduler) Signal[T] {
	mustSignal(s)
	if sched == nil {
		sched = NewScheduler()
	}
	return &debounced[T]{upstream: s, delay: delay, sched: sched}
}

func (d *debounced[T]) Listen(owner Owner, fn func(T)) Token {
	owner = holdWeakly(owner)
	var (
		mu      sync.Mutex
		seq     uint64
		pending Timer
		stopped bool
	)

	up := d.upstream.Listen(owner, func(v T) {
		mu.Lock()
		defer mu.Unlock()

		if stopped {
			return
		}
		if pending != nil {
			pending.Stop()
		}
		seq++
		current := seq
		pending = d.sched.After(d.delay, func() {
			mu.Lock()
			if stopped || seq != current {
				mu.Unlock()
				return
			}
			pending = nil
			mu.Unlock()

			if alive(owner) {
				fn(v)
			}
		})
	})

	cancel := NewToken(func() {
		mu.Lock()
		defer mu.Unlock()
		stopped = true
		if pending != nil {
			pending.Stop()
			pending = nil
		}
	})
	return newBag(up, cancel)
}
