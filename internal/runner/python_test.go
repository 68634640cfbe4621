package runner

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requirePython(t *testing.T) *Python {
	t.Helper()
	if _, err := exec.LookPath("python3"); err != nil {
		t.Skip("python3 not installed")
	}
	p := NewPython("python3")
	p.Start(context.Background())
	require.NoError(t, p.Wait(context.Background()))
	return p
}

func TestPython_NotStarted(t *testing.T) {
	p := NewPython("python3")
	assert.Equal(t, StatusLoading, p.Status())

	_, err := p.Execute(context.Background(), `print(1)`)
	assert.ErrorIs(t, err, ErrNotReady)
	assert.Equal(t, LoadingMessage, Output("", err))
}

func TestPython_MissingInterpreter(t *testing.T) {
	p := NewPython("definitely-not-a-python-binary")
	p.Start(context.Background())
	require.Error(t, p.Wait(context.Background()))
	assert.Equal(t, StatusUnavailable, p.Status())

	_, err := p.Execute(context.Background(), `print(1)`)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, Output("", err), "Error: environment unavailable")
}

func TestPython_Execute(t *testing.T) {
	p := requirePython(t)
	assert.Equal(t, StatusReady, p.Status())
	assert.NotEmpty(t, p.Version())

	out, err := p.Execute(context.Background(), "name = 'Ada'\nprint(f'Hello, {name}!')\nprint(1 + 2)")
	require.NoError(t, err)
	assert.Equal(t, "Hello, Ada!\n3\n", out)

	out, err = p.Execute(context.Background(), "x = 1")
	require.NoError(t, err)
	assert.Equal(t, NoOutputMessage, Output(out, err))
}

func TestPython_Error(t *testing.T) {
	p := requirePython(t)

	_, err := p.Execute(context.Background(), "print(undefined_name)")
	require.Error(t, err)
	var execErr *ExecError
	require.True(t, errors.As(err, &execErr))
	assert.Equal(t, "NameError: name 'undefined_name' is not defined", execErr.Message)
}

func TestPython_Timeout(t *testing.T) {
	p := requirePython(t)
	r := WithTimeout(p, 200*time.Millisecond)

	_, err := r.Execute(context.Background(), "while True:\n    pass\n")
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, StatusReady, StatusOf(r))
}

func TestLastLine(t *testing.T) {
	assert.Equal(t, "ValueError: bad", lastLine("Traceback (most recent call last):\n  File \"<stdin>\", line 1\nValueError: bad\n\n", "x"))
	assert.Equal(t, "fallback", lastLine("  \n", "fallback"))
}
