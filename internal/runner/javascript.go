package runner

import (
	"context"
	"errors"
	"strings"

	"github.com/dop251/goja"
)

// JavaScript runs snippets in a fresh embedded VM per execution. The source
// is evaluated as a function body, so a top-level return value is allowed
// and is appended to the output when it is not undefined.
type JavaScript struct{}

// NewJavaScript creates a JavaScript runner.
func NewJavaScript() *JavaScript {
	return &JavaScript{}
}

func (j *JavaScript) Language() string { return "javascript" }

func (j *JavaScript) Execute(ctx context.Context, source string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	vm := goja.New()
	var out strings.Builder
	if err := installConsole(vm, &out); err != nil {
		return "", err
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			vm.Interrupt(ctx.Err())
		case <-done:
		}
	}()

	result, err := vm.RunString("(function() {\n" + source + "\n})()")
	if err != nil {
		var interrupted *goja.InterruptedError
		if errors.As(err, &interrupted) {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return "", ctxErr
			}
			return "", err
		}
		var ex *goja.Exception
		if errors.As(err, &ex) {
			return "", &ExecError{Message: exceptionMessage(ex)}
		}
		return "", &ExecError{Message: err.Error()}
	}

	if result != nil && !goja.IsUndefined(result) {
		out.WriteString(result.String())
	}
	return out.String(), nil
}

// installConsole binds console.log and friends to append to out. Arguments
// are joined with single spaces; undefined and null print as empty strings.
func installConsole(vm *goja.Runtime, out *strings.Builder) error {
	write := func(call goja.FunctionCall) goja.Value {
		parts := make([]string, len(call.Arguments))
		for i, arg := range call.Arguments {
			if goja.IsUndefined(arg) || goja.IsNull(arg) {
				continue
			}
			parts[i] = arg.String()
		}
		out.WriteString(strings.Join(parts, " "))
		out.WriteByte('\n')
		return goja.Undefined()
	}

	console := vm.NewObject()
	for _, name := range []string{"log", "info", "warn", "error", "debug"} {
		if err := console.Set(name, write); err != nil {
			return err
		}
	}
	return vm.Set("console", console)
}

// exceptionMessage returns the thrown value's message property when it has
// one, and its string form otherwise.
func exceptionMessage(ex *goja.Exception) string {
	v := ex.Value()
	if v == nil {
		return ex.Error()
	}
	if obj, ok := v.(*goja.Object); ok {
		if msg := obj.Get("message"); msg != nil && !goja.IsUndefined(msg) {
			return msg.String()
		}
	}
	return v.String()
}
