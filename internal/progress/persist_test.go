package progress

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockKV struct {
	data   map[string][]byte
	getErr error
	putErr error
}

func newMockKV() *mockKV {
	return &mockKV{data: map[string][]byte{}}
}

func (m *mockKV) Get(_ context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.data[key], nil
}

func (m *mockKV) Put(_ context.Context, key string, value []byte) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.data[key] = value
	return nil
}

func TestRehydrate_Absent(t *testing.T) {
	s := Rehydrate(context.Background(), newMockKV(), slog.Default())
	assert.Equal(t, NewState(), s)
}

func TestRehydrate_Parses(t *testing.T) {
	kv := newMockKV()
	kv.data[StorageKey] = []byte(`{
		"progress": [{"courseId":"html","lessonId":"html-basics","completed":true,"score":90,"completedAt":"2026-05-14T10:30:00Z"}],
		"certificates": ["html"],
		"totalXP": 250,
		"streak": 3,
		"lastStudyDate": "2026-05-14"
	}`)

	s := Rehydrate(context.Background(), kv, slog.Default())
	require.Len(t, s.Progress, 1)
	assert.Equal(t, 90, *s.Progress[0].Score)
	assert.Equal(t, []string{"html"}, s.Certificates)
	assert.Equal(t, 250, s.TotalXP)
	assert.Equal(t, 3, s.Streak)
	assert.Equal(t, "2026-05-14", s.LastStudyDate)
}

func TestRehydrate_MissingArraysBecomeEmpty(t *testing.T) {
	kv := newMockKV()
	kv.data[StorageKey] = []byte(`{"totalXP": 10}`)

	s := Rehydrate(context.Background(), kv, slog.Default())
	assert.Equal(t, 10, s.TotalXP)
	assert.NotNil(t, s.Progress)
	assert.NotNil(t, s.Certificates)
}

func TestRehydrate_ParseFailureFallsBack(t *testing.T) {
	var logs bytes.Buffer
	kv := newMockKV()
	kv.data[StorageKey] = []byte(`{not json`)

	s := Rehydrate(context.Background(), kv, slog.New(slog.NewTextHandler(&logs, nil)))
	assert.Equal(t, NewState(), s)
	assert.Contains(t, logs.String(), "level=ERROR")
	assert.Contains(t, logs.String(), "failed to parse saved progress")
}

func TestRehydrate_ReadFailureFallsBack(t *testing.T) {
	var logs bytes.Buffer
	kv := newMockKV()
	kv.getErr = errors.New("io error")

	s := Rehydrate(context.Background(), kv, slog.New(slog.NewTextHandler(&logs, nil)))
	assert.Equal(t, NewState(), s)
	assert.Contains(t, logs.String(), "failed to read saved progress")
}

func TestSaveTo(t *testing.T) {
	kv := newMockKV()
	s := Reduce(NewState(), CompleteLesson{CourseID: "html", LessonID: "html-basics"}, today)

	require.NoError(t, SaveTo(kv)(context.Background(), s))
	assert.Contains(t, string(kv.data[StorageKey]), `"courseId":"html"`)

	back := Rehydrate(context.Background(), kv, slog.Default())
	assert.Equal(t, s, back)
}

func TestSaveTo_Error(t *testing.T) {
	kv := newMockKV()
	kv.putErr = errors.New("read-only")

	err := SaveTo(kv)(context.Background(), NewState())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read-only")
}

func TestMarshalEmptyStateUsesArrays(t *testing.T) {
	data, err := Marshal(State{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"progress":[],"certificates":[],"totalXP":0,"streak":0}`, string(data))
}

func TestUnmarshalError(t *testing.T) {
	_, err := Unmarshal([]byte(`[]`))
	require.Error(t, err)
}
