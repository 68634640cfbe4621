package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCommand(t *testing.T, dbPath string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	c.Flags().String("db", "", "")
	c.Flags().String("catalog", "", "")
	require.NoError(t, c.Flags().Set("db", dbPath))
	return c
}

func TestOpenEnvWith_LogToFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	t.Setenv("LEARNCODE_LOG_LEVEL", "warn")

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "learncode.db")

	e, err := openEnvWith(testCommand(t, dbPath), envOptions{logToFile: true})
	require.NoError(t, err)
	e.logger.Warn("snippet execution failed", "language", "python")
	require.NoError(t, e.Close())

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "snippet execution failed")
	assert.Contains(t, string(data), "language=python")
}

func TestOpenEnv_NoLogFileByDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	t.Setenv("LEARNCODE_LOG_LEVEL", "error")

	dir := t.TempDir()
	e, err := openEnv(testCommand(t, filepath.Join(dir, "learncode.db")), false)
	require.NoError(t, err)
	require.NoError(t, e.Close())

	_, err = os.Stat(filepath.Join(dir, logFileName))
	assert.True(t, os.IsNotExist(err))
}
