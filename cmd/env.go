package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/learncode/internal/catalog"
	"github.com/abhisek/learncode/internal/config"
	"github.com/abhisek/learncode/internal/learning"
	"github.com/abhisek/learncode/internal/logging"
	"github.com/abhisek/learncode/internal/progress"
	"github.com/abhisek/learncode/internal/runner"
	"github.com/abhisek/learncode/internal/store"
)

// logFileName is the TUI log, kept next to the database.
const logFileName = "learncode.log"

// env holds the dependencies shared by commands.
type env struct {
	cfg     config.Config
	logger  *slog.Logger
	store   *store.Store
	service *learning.Service
	logFile io.Closer
}

type envOptions struct {
	// runners starts the code runners; most commands never execute code.
	runners bool

	// logToFile sends logs to logFileName instead of stderr. The TUI owns
	// the terminal, so anything written to stderr would land on screen.
	logToFile bool
}

// openEnv loads configuration, opens the database, rehydrates progress, and
// builds the learning service. Runners are started only when withRunners is
// set.
func openEnv(cmd *cobra.Command, withRunners bool) (*env, error) {
	return openEnvWith(cmd, envOptions{runners: withRunners})
}

func openEnvWith(cmd *cobra.Command, eo envOptions) (*env, error) {
	ctx := commandContext(cmd)

	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}
	cfg, err := config.ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	if p, _ := cmd.Flags().GetString("catalog"); p != "" {
		cfg.CatalogPath = p
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}

	var (
		logOut  io.Writer = os.Stderr
		logFile io.Closer
	)
	if eo.logToFile {
		f, err := openLogFile(dbPath)
		if err != nil {
			return nil, err
		}
		logOut, logFile = f, f
	}
	closeLog := func() {
		if logFile != nil {
			logFile.Close()
		}
	}

	logger, err := logging.New(logOut, cfg.LogLevel)
	if err != nil {
		closeLog()
		return nil, err
	}

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("open store: %w", err)
	}
	logger.Debug("store opened", "path", dbPath, "catalog_version", cat.Version())

	kv := st.KV()
	initial := progress.Rehydrate(ctx, kv, logger)
	ps := progress.NewStore(initial,
		progress.WithPersist(progress.SaveTo(kv)),
		progress.WithJournal(st.EventRepo()),
		progress.WithLogger(logger),
	)

	opts := learning.Options{
		Catalog:     cat,
		Progress:    ps,
		LearnerName: cfg.Export.LearnerName,
	}
	if eo.runners {
		opts.Runners = runner.DefaultRegistry(ctx, runner.Options{
			Timeout: cfg.Runner.Timeout,
			Python:  cfg.Runner.Python,
			Logger:  logger,
		})
	}

	return &env{
		cfg:     cfg,
		logger:  logger,
		store:   st,
		service: learning.NewService(opts),
		logFile: logFile,
	}, nil
}

func (e *env) Close() error {
	err := e.store.Close()
	if e.logFile != nil {
		if cerr := e.logFile.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// openLogFile opens logFileName in the database's directory for appending.
func openLogFile(dbPath string) (*os.File, error) {
	path := filepath.Join(filepath.Dir(dbPath), logFileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
