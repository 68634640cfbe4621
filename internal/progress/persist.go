package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/abhisek/learncode/internal/store"
)

// StorageKey is the key the state snapshot is stored under.
const StorageKey = "learning-app-progress"

// Marshal serializes s in the persisted JSON layout.
func Marshal(s State) ([]byte, error) {
	data, err := json.Marshal(normalize(s))
	if err != nil {
		return nil, fmt.Errorf("marshal progress: %w", err)
	}
	return data, nil
}

// Unmarshal parses a persisted snapshot. No validation is applied beyond
// a successful parse.
func Unmarshal(data []byte) (State, error) {
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return State{}, fmt.Errorf("unmarshal progress: %w", err)
	}
	return normalize(s), nil
}

// SaveTo returns a PersistFunc that writes the snapshot to kv under StorageKey.
func SaveTo(kv store.KVRepo) PersistFunc {
	return func(ctx context.Context, s State) error {
		data, err := Marshal(s)
		if err != nil {
			return err
		}
		if err := kv.Put(ctx, StorageKey, data); err != nil {
			return fmt.Errorf("save progress: %w", err)
		}
		return nil
	}
}

// Rehydrate reads the snapshot from kv. An absent key yields the empty
// state. Read and parse failures are logged and also yield the empty state.
func Rehydrate(ctx context.Context, kv store.KVRepo, logger *slog.Logger) State {
	data, err := kv.Get(ctx, StorageKey)
	if err != nil {
		logger.Warn("failed to read saved progress", "key", StorageKey, "error", err)
		return NewState()
	}
	if data == nil {
		return NewState()
	}

	s, err := Unmarshal(data)
	if err != nil {
		logger.Error("failed to parse saved progress", "key", StorageKey, "error", err)
		return NewState()
	}
	return s
}
