package runner

import "errors"

// Messages shown in the output panel.
const (
	NoOutputMessage = "Code executed successfully (no output)"
	LoadingMessage  = "Python environment is still loading. Please wait..."
	PreviewMessage  = "Code updated! Check the preview above."
)

// Output renders an Execute result for display.
func Output(out string, err error) string {
	switch {
	case err == nil && out == "":
		return NoOutputMessage
	case err == nil:
		return out
	case errors.Is(err, ErrNotReady):
		return LoadingMessage
	default:
		return "Error: " + err.Error()
	}
}
