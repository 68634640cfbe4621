package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/abhisek/learncode/internal/progress"
)

// StateFilename is the default download name of a state snapshot.
const StateFilename = "learncode-progress.json"

// WriteState writes st in the persisted JSON layout, indented.
func WriteState(w io.Writer, st progress.State) error {
	data, err := progress.Marshal(st)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return fmt.Errorf("indent state: %w", err)
	}
	buf.WriteByte('\n')
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

// ReadState parses a snapshot written by WriteState or taken from storage.
func ReadState(r io.Reader) (progress.State, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return progress.State{}, fmt.Errorf("read state: %w", err)
	}
	return progress.Unmarshal(data)
}
