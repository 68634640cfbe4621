package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"
)

// probeTimeout bounds the startup check of the interpreter.
const probeTimeout = 10 * time.Second

// Python runs snippets with an external interpreter. The interpreter is
// probed once by Start; until the probe finishes Execute returns ErrNotReady,
// and if it fails Execute returns ErrUnavailable.
type Python struct {
	binary string

	once    sync.Once
	ready   chan struct{}
	mu      sync.RWMutex
	version string
	err     error
}

// NewPython creates a Python runner for the given interpreter binary.
func NewPython(binary string) *Python {
	return &Python{binary: binary, ready: make(chan struct{})}
}

func (p *Python) Language() string { return "python" }

// Start probes the interpreter in the background. Calling it again is a no-op.
func (p *Python) Start(ctx context.Context) {
	p.once.Do(func() {
		go func() {
			version, err := p.probe(ctx)
			p.mu.Lock()
			p.version, p.err = version, err
			p.mu.Unlock()
			close(p.ready)
		}()
	})
}

// Wait blocks until the probe finishes and returns its error.
func (p *Python) Wait(ctx context.Context) error {
	select {
	case <-p.ready:
	case <-ctx.Done():
		return ctx.Err()
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.err
}

// Version returns the interpreter's version string once the probe succeeded.
func (p *Python) Version() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.version
}

// Status reports whether the interpreter is usable.
func (p *Python) Status() Status {
	select {
	case <-p.ready:
	default:
		return StatusLoading
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.err != nil {
		return StatusUnavailable
	}
	return StatusReady
}

func (p *Python) probe(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, p.binary, "-c", "import sys; print(sys.version.split()[0])").Output()
	if err != nil {
		return "", fmt.Errorf("probe %s: %w", p.binary, err)
	}
	return strings.TrimSpace(string(out)), nil
}

func (p *Python) Execute(ctx context.Context, source string) (string, error) {
	switch p.Status() {
	case StatusLoading:
		return "", ErrNotReady
	case StatusUnavailable:
		p.mu.RLock()
		probeErr := p.err
		p.mu.RUnlock()
		return "", fmt.Errorf("%w: %v", ErrUnavailable, probeErr)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, p.binary, "-u", "-")
	cmd.Stdin = strings.NewReader(source)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &ExecError{Message: lastLine(stderr.String(), exitErr.Error())}
		}
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return stdout.String(), nil
}

// lastLine returns the last non-blank line of s, which for a Python
// traceback is the exception summary.
func lastLine(s, fallback string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			return l
		}
	}
	return fallback
}
