package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultLearnerName is the certificate recipient when none is configured.
const DefaultLearnerName = "Student Developer"

// Config holds learncode's runtime configuration.
type Config struct {
	// DBPath is the SQLite database file. Empty means the default
	// XDG data location.
	DBPath string

	// CatalogPath is an optional course catalog JSON file. Empty means the
	// built-in catalog.
	CatalogPath string

	Runner RunnerConfig
	Export ExportConfig

	// LogLevel is one of debug, info, warn, error. Default: warn.
	LogLevel string
}

// RunnerConfig configures code execution.
type RunnerConfig struct {
	// Timeout bounds a single snippet execution. Default: 5s.
	Timeout time.Duration

	// Python is the interpreter binary. Default: "python3".
	Python string
}

// ExportConfig configures generated documents.
type ExportConfig struct {
	LearnerName string // Default: "Student Developer"
	OutDir      string // Default: "."
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Runner: RunnerConfig{
			Timeout: 5 * time.Second,
			Python:  "python3",
		},
		Export: ExportConfig{
			LearnerName: DefaultLearnerName,
			OutDir:      ".",
		},
		LogLevel: "warn",
	}
}

// LoadDotEnv loads .env from the working directory into the process
// environment. Variables already set win. A missing file is not an error.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values. It fails only on values that cannot be
// parsed; call Validate for range checks.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if p := os.Getenv("LEARNCODE_DB"); p != "" {
		cfg.DBPath = p
	}
	if p := os.Getenv("LEARNCODE_CATALOG"); p != "" {
		cfg.CatalogPath = p
	}

	if v := os.Getenv("LEARNCODE_EXEC_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("LEARNCODE_EXEC_TIMEOUT: %w", err)
		}
		cfg.Runner.Timeout = d
	}
	if p := os.Getenv("LEARNCODE_PYTHON"); p != "" {
		cfg.Runner.Python = p
	}

	if n := os.Getenv("LEARNCODE_LEARNER_NAME"); n != "" {
		cfg.Export.LearnerName = n
	}
	if d := os.Getenv("LEARNCODE_OUT_DIR"); d != "" {
		cfg.Export.OutDir = d
	}

	if l := os.Getenv("LEARNCODE_LOG_LEVEL"); l != "" {
		cfg.LogLevel = strings.ToLower(l)
	}

	return cfg, nil
}

// Validate checks every field and reports all problems at once.
func (c Config) Validate() error {
	var errs []string

	if c.Runner.Timeout <= 0 {
		errs = append(errs, fmt.Sprintf("LEARNCODE_EXEC_TIMEOUT must be positive, got %s", c.Runner.Timeout))
	}
	if strings.TrimSpace(c.Runner.Python) == "" {
		errs = append(errs, "LEARNCODE_PYTHON must not be empty")
	}
	if strings.TrimSpace(c.Export.LearnerName) == "" {
		errs = append(errs, "LEARNCODE_LEARNER_NAME must not be blank")
	}
	if c.Export.OutDir == "" {
		errs = append(errs, "LEARNCODE_OUT_DIR must not be empty")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("LEARNCODE_LOG_LEVEL: unknown level %q", c.LogLevel))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
