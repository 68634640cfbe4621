// Package runner executes learner-submitted snippets. Each supported
// language has an adapter behind the narrow Runner interface; decorators add
// timeouts and logging without the adapters knowing.
package runner

import (
	"context"
	"errors"
)

var (
	// ErrNotReady is returned while a runner's environment is still starting.
	ErrNotReady = errors.New("environment is still loading")

	// ErrUnavailable is returned when a runner's environment failed to start.
	ErrUnavailable = errors.New("environment unavailable")

	// ErrTimeout is returned when execution exceeds its time limit.
	ErrTimeout = errors.New("execution timed out")
)

// Runner executes source text and returns whatever it printed.
type Runner interface {
	// Language names the runner, e.g. "javascript".
	Language() string

	// Execute runs source until it finishes or ctx is done. Errors raised by
	// the submitted code are returned as *ExecError.
	Execute(ctx context.Context, source string) (string, error)
}

// ExecError is an error raised by the submitted code itself, as opposed to a
// failure of the runner.
type ExecError struct {
	Message string
}

func (e *ExecError) Error() string {
	return e.Message
}

// Status describes whether a runner can accept work.
type Status int

const (
	StatusReady Status = iota
	StatusLoading
	StatusUnavailable
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusLoading:
		return "loading"
	case StatusUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// WaitReady blocks until r's environment finished starting, looking through
// decorators. Runners without a startup phase return nil immediately.
func WaitReady(ctx context.Context, r Runner) error {
	for r != nil {
		if w, ok := r.(interface{ Wait(context.Context) error }); ok {
			return w.Wait(ctx)
		}
		u, ok := r.(interface{ Unwrap() Runner })
		if !ok {
			break
		}
		r = u.Unwrap()
	}
	return nil
}

// StatusOf reports the status of r, looking through decorators. Runners that
// do not report a status are always ready.
func StatusOf(r Runner) Status {
	for r != nil {
		if s, ok := r.(interface{ Status() Status }); ok {
			return s.Status()
		}
		u, ok := r.(interface{ Unwrap() Runner })
		if !ok {
			break
		}
		r = u.Unwrap()
	}
	return StatusReady
}
