package config

import (
	"fmt"
	"log/slog"
	"os"

	"my-admin/internal/repository"
	"my-admin/internal/repository/memory"
	"my-admin/internal/repository/sqlite"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// GetEnvironment reads MYADMIN_ENV. Anything unrecognized is production.
func GetEnvironment() Environment {
	switch Environment(os.Getenv("MYADMIN_ENV")) {
	case Development:
		return Development
	case Testing:
		return Testing
	default:
		return Production
	}
}

// MediumFactory creates the persistence medium for an environment
type MediumFactory struct {
	config *Config
	env    Environment
	logger *slog.Logger
}

// NewMediumFactory creates a new medium factory
func NewMediumFactory(cfg *Config, env Environment, logger *slog.Logger) *MediumFactory {
	return &MediumFactory{config: cfg, env: env, logger: logger}
}

// CreateMedium opens the medium selected by the storage backend. The sqlite
// backend uses a file in the working directory for development, an in-memory
// database for testing and the configured data directory otherwise.
func (f *MediumFactory) CreateMedium() (repository.ClosableMedium, error) {
	switch f.config.Storage.Backend {
	case BackendMemory:
		return memory.New(), nil
	case BackendNone:
		return repository.Unavailable(), nil
	}

	var dbPath string
	switch f.env {
	case Development:
		dbPath = f.config.Storage.Filename
	case Testing:
		dbPath = sqlite.MemoryPath
	default:
		dbPath = f.config.GetDatabasePath()
	}

	medium, err := sqlite.NewWithOptions(dbPath, f.sqliteOptions(), f.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s database: %w", f.env, err)
	}
	return medium, nil
}

func (f *MediumFactory) sqliteOptions() sqlite.Options {
	opts := sqlite.DefaultOptions()
	opts.QueryTimeout = f.config.Storage.QueryTimeout
	opts.WriteTimeout = f.config.Storage.WriteTimeout
	opts.DirPermissions = os.FileMode(f.config.Storage.DirPermissions)
	if opts.BusyTimeout > opts.WriteTimeout {
		opts.BusyTimeout = opts.WriteTimeout
	}
	return opts
}
