package signals

import "errors"

// Programmer faults. They are raised with panic, never returned, so recover
// and compare with errors.Is when asserting on them.
var (
	// ErrNilSignal is raised when subscribing to, or building an operator on,
	// a nil Signal.
	ErrNilSignal = errors.New("signals: nil signal")

	// ErrTaskFinished is raised when Finish is called on a Task that already
	// resolved.
	ErrTaskFinished = errors.New("signals: task already finished")

	// ErrArity is raised when a combinator is built with fewer than two or more
	// than eight upstreams.
	ErrArity = errors.New("signals: unsupported combinator arity")
)
