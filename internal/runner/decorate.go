package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// TimeoutRunner is a decorator that bounds every execution.
type TimeoutRunner struct {
	inner Runner
	limit time.Duration
}

// WithTimeout wraps r so each Execute runs under a deadline of limit.
func WithTimeout(r Runner, limit time.Duration) Runner {
	return &TimeoutRunner{inner: r, limit: limit}
}

func (t *TimeoutRunner) Execute(ctx context.Context, source string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.limit)
	defer cancel()

	out, err := t.inner.Execute(ctx, source)
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return "", fmt.Errorf("%w after %s", ErrTimeout, t.limit)
	}
	return out, err
}

func (t *TimeoutRunner) Language() string { return t.inner.Language() }

func (t *TimeoutRunner) Unwrap() Runner { return t.inner }

// LoggingRunner is a decorator that logs every execution at debug level.
type LoggingRunner struct {
	inner  Runner
	logger *slog.Logger
}

// WithLogging wraps r with execution logging.
func WithLogging(r Runner, logger *slog.Logger) Runner {
	return &LoggingRunner{inner: r, logger: logger}
}

func (l *LoggingRunner) Execute(ctx context.Context, source string) (string, error) {
	start := time.Now()
	out, err := l.inner.Execute(ctx, source)

	attrs := []any{
		"language", l.inner.Language(),
		"source_bytes", len(source),
		"output_bytes", len(out),
		"latency_ms", time.Since(start).Milliseconds(),
	}
	var execErr *ExecError
	switch {
	case err == nil:
		l.logger.Debug("snippet executed", attrs...)
	case errors.As(err, &execErr):
		l.logger.Debug("snippet raised an error", append(attrs, "error", err)...)
	default:
		l.logger.Warn("snippet execution failed", append(attrs, "error", err)...)
	}
	return out, err
}

func (l *LoggingRunner) Language() string { return l.inner.Language() }

func (l *LoggingRunner) Unwrap() Runner { return l.inner }
