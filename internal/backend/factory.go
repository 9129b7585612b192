package backend

import (
	"context"
	"fmt"
	"log/slog"

	"salesboard/internal/source"
	"salesboard/internal/source/memory"
	"salesboard/internal/source/sheets"
	"salesboard/internal/storage"
)

// Type names a record source backend.
type Type string

const (
	MemoryBackend Type = "memory"
	SQLiteBackend Type = "sqlite"
	SheetsBackend Type = "sheets"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is known.
func (t Type) IsValid() bool {
	switch t {
	case MemoryBackend, SQLiteBackend, SheetsBackend:
		return true
	default:
		return false
	}
}

// CleanupFunc releases backend resources.
type CleanupFunc func() error

// Result carries the selected source, the rewriter when the backend
// supports the in-place date migration, and an optional cleanup.
type Result struct {
	Source   source.OrderSource
	Rewriter source.DateRewriter
	Cleanup  CleanupFunc
}

// Config holds what the factory needs to build a source.
type Config struct {
	Type          Type
	SQLiteDBPath  string
	DataDirectory string
}

// Factory creates order sources based on configuration.
type Factory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

// Create builds the configured backend. Only the sqlite backend carries a
// rewriter; the other backends hand documents over as fetched.
func (f *Factory) Create(ctx context.Context, cfg Config) (*Result, error) {
	if !cfg.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", cfg.Type)
	}

	switch cfg.Type {
	case SQLiteBackend:
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite repository: %w", err)
		}
		f.logger.Info("Initialized SQLite backend", "db_path", cfg.SQLiteDBPath)
		return &Result{Source: repo, Rewriter: repo, Cleanup: repo.Close}, nil

	case SheetsBackend:
		cli, err := sheets.NewFromEnv(ctx)
		if err != nil {
			return nil, fmt.Errorf("initialize Google Sheets source: %w", err)
		}
		f.logger.Info("Initialized Google Sheets backend")
		return &Result{Source: cli}, nil

	default:
		dataDir := cfg.DataDirectory
		if dataDir == "" {
			dataDir = "data"
		}
		store := memory.NewFromFiles(dataDir)
		f.logger.Info("Initialized memory backend", "data_directory", dataDir)
		return &Result{Source: store}, nil
	}
}
