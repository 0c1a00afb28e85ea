package signals

import (
	"sync"
	"time"
)

// Timer is a callback scheduled on a Scheduler.
type Timer interface {
	// Stop prevents the callback from running. It reports false if the
	// callback already ran or the timer was already stopped.
	Stop() bool
}

// Scheduler runs callbacks after a delay. Debounce and Delay take one so
// tests can drive time by hand.
type Scheduler interface {
	After(d time.Duration, fn func()) Timer
}

type timerScheduler struct {
	run sync.Mutex
}

// NewScheduler returns a wall clock Scheduler. Callbacks scheduled on the same
// scheduler never run concurrently with each other.
func NewScheduler() Scheduler {
	return &timerScheduler{}
}

type wallTimer struct {
	mu      sync.Mutex
	stopped bool
	fired   bool
	t       *time.Timer
}

func (s *timerScheduler) After(d time.Duration, fn func()) Timer {
	wt := &wallTimer{}
	wt.mu.Lock()
	defer wt.mu.Unlock()

	wt.t = time.AfterFunc(d, func() {
		s.run.Lock()
		defer s.run.Unlock()

		wt.mu.Lock()
		if wt.stopped {
			wt.mu.Unlock()
			return
		}
		wt.fired = true
		wt.mu.Unlock()

		fn()
	})
	return wt
}

func (wt *wallTimer) Stop() bool {
	wt.mu.Lock()
	defer wt.mu.Unlock()

	if wt.stopped || wt.fired {
		return false
	}
	wt.stopped = true
	wt.t.Stop()
	return true
}

// VirtualScheduler is a Scheduler driven by Advance instead of the wall
// clock. Callbacks run on the goroutine calling Advance, ordered by due time
// and then by scheduling order.
type VirtualScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	seq    uint64
	timers []*virtualTimer
}

type virtualTimer struct {
	s   *VirtualScheduler
	due time.Duration
	seq uint64
	fn  func()
}

// NewVirtualScheduler returns a VirtualScheduler at time zero.
func NewVirtualScheduler() *VirtualScheduler {
	return &VirtualScheduler{}
}

func (s *VirtualScheduler) After(d time.Duration, fn func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	vt := &virtualTimer{s: s, due: s.now + max(d, 0), seq: s.seq, fn: fn}
	s.timers = append(s.timers, vt)
	return vt
}

// Advance moves the clock forward by d, running every callback that comes due
// on the way, including ones scheduled by callbacks. It returns how many ran.
func (s *VirtualScheduler) Advance(d time.Duration) int {
	s.mu.Lock()
	target := s.now + max(d, 0)
	s.mu.Unlock()

	ran := 0
	for {
		s.mu.Lock()
		next := -1
		for i, vt := range s.timers {
			if vt.due > target {
				continue
			}
			if next < 0 || vt.due < s.timers[next].due ||
				(vt.due == s.timers[next].due && vt.seq < s.timers[next].seq) {
				next = i
			}
		}
		if next < 0 {
			s.now = target
			s.mu.Unlock()
			return ran
		}
		vt := s.timers[next]
		s.timers = append(s.timers[:next], s.timers[next+1:]...)
		s.now = vt.due
		s.mu.Unlock()

		vt.fn()
		ran++
	}
}

// Now is the virtual time elapsed since the scheduler was created.
func (s *VirtualScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Pending reports how many callbacks are waiting to run.
func (s *VirtualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

func (vt *virtualTimer) Stop() bool {
	s := vt.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, other := range s.timers {
		if other == vt {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return true
		}
	}
	return false
}
