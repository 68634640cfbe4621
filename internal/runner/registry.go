package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/abhisek/learncode/internal/catalog"
)

// Registry maps course tracks to runners.
type Registry struct {
	runners map[catalog.Track]Runner
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{runners: make(map[catalog.Track]Runner)}
}

// Register binds r to track, replacing any previous binding.
func (r *Registry) Register(track catalog.Track, rn Runner) {
	r.runners[track] = rn
}

// For returns the runner for track.
func (r *Registry) For(track catalog.Track) (Runner, error) {
	rn, ok := r.runners[track]
	if !ok {
		return nil, fmt.Errorf("no runner for track %q", track)
	}
	return rn, nil
}

// Run executes source on track's runner and renders the result for display.
func (r *Registry) Run(ctx context.Context, track catalog.Track, source string) string {
	rn, err := r.For(track)
	if err != nil {
		return Output("", err)
	}
	return Output(rn.Execute(ctx, source))
}

// Status reports the status of track's runner.
func (r *Registry) Status(track catalog.Track) Status {
	rn, ok := r.runners[track]
	if !ok {
		return StatusUnavailable
	}
	return StatusOf(rn)
}

// Wait blocks until track's runner is ready to accept work.
func (r *Registry) Wait(ctx context.Context, track catalog.Track) error {
	rn, err := r.For(track)
	if err != nil {
		return err
	}
	return WaitReady(ctx, rn)
}

// Options configures DefaultRegistry.
type Options struct {
	Timeout time.Duration
	Python  string
	Logger  *slog.Logger
}

// DefaultRegistry builds the standard runners for every track, each bounded
// by opts.Timeout, and starts the Python probe in the background.
func DefaultRegistry(ctx context.Context, opts Options) *Registry {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	python := NewPython(opts.Python)
	python.Start(ctx)

	reg := NewRegistry()
	for track, rn := range map[catalog.Track]Runner{
		catalog.TrackJavaScript: NewJavaScript(),
		catalog.TrackPython:     python,
		catalog.TrackMarkup:     NewMarkup(),
	} {
		reg.Register(track, WithLogging(WithTimeout(rn, opts.Timeout), logger))
	}
	return reg
}
