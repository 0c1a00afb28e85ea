package signals

import "time"

// Delay returns a Task that resolves once d has passed on sched, or on a new
// NewScheduler when sched is nil.
func Delay(d time.Duration, sched Scheduler) *Task[struct{}] {
	if sched == nil {
		sched = NewScheduler()
	}
	t := NewTask[struct{}]()
	sched.After(d, func() {
		t.Finish(struct{}{})
	})
	return t
}
