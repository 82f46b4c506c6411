// Package sqlite stores record collections in a single SQLite table.
package sqlite

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"my-admin/internal/errors"
	"my-admin/internal/logging"
	"my-admin/internal/repository"
	"my-admin/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// Options tunes the medium.
type Options struct {
	QueryTimeout   time.Duration
	WriteTimeout   time.Duration
	DirPermissions os.FileMode
	BusyTimeout    time.Duration
}

// DefaultOptions returns the options used by New.
func DefaultOptions() Options {
	return Options{
		QueryTimeout:   10 * time.Second,
		WriteTimeout:   5 * time.Second,
		DirPermissions: 0o755,
		BusyTimeout:    5 * time.Second,
	}
}

// Medium is a repository.Medium backed by the collections table.
type Medium struct {
	db     *sql.DB
	path   string
	opts   Options
	logger *slog.Logger
}

var (
	_ repository.ClosableMedium = (*Medium)(nil)
	_ repository.Describer      = (*Medium)(nil)
)

// New opens (creating if needed) the database at dbPath with default options.
func New(dbPath string) (*Medium, error) {
	return NewWithOptions(dbPath, DefaultOptions(), nil)
}

// NewWithOptions opens the database at dbPath, creating its directory, and
// applies pending migrations.
func NewWithOptions(dbPath string, opts Options, logger *slog.Logger) (*Medium, error) {
	logger = logging.WithComponent(logger, logging.ComponentSQLite)

	if dbPath != MemoryPath {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, opts.DirPermissions); err != nil {
			if stderrors.Is(err, os.ErrPermission) {
				return nil, errors.NewPermissionError("create directory", dir)
			}
			return nil, errors.NewDatabaseError("create database directory", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}
	// One connection keeps an in-memory database alive and serializes writers.
	db.SetMaxOpenConns(1)

	if opts.BusyTimeout > 0 {
		if _, err := db.Exec(fmt.Sprintf("PRAGMA busy_timeout = %d", opts.BusyTimeout.Milliseconds())); err != nil {
			db.Close()
			return nil, errors.NewDatabaseError("set busy timeout", err)
		}
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	logger.Debug("database ready", "path", dbPath)
	return &Medium{db: db, path: dbPath, opts: opts, logger: logger}, nil
}

// Path returns the database location.
func (m *Medium) Path() string {
	return m.path
}

// Close closes the database connection
func (m *Medium) Close() error {
	return m.db.Close()
}

// Read returns the collection stored under key.
func (m *Medium) Read(ctx context.Context, key string) (string, bool, error) {
	ctx, cancel := m.withTimeout(ctx, m.opts.QueryTimeout)
	defer cancel()

	row, err := QuerySingle(ctx, m.db,
		`SELECT key, value, updated_at FROM collections WHERE key = ?`,
		ScanCollection, "collection", key, key)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return row.Value, true, nil
}

// Write replaces the collection stored under key in one statement.
func (m *Medium) Write(ctx context.Context, key string, text string) error {
	ctx, cancel := m.withTimeout(ctx, m.opts.WriteTimeout)
	defer cancel()

	query := `
	INSERT INTO collections (key, value, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	_, err := ExecuteWithRowsAffected(ctx, m.db, "write collection", query, key, text, FormatTimeForDB(timeNow()))
	return err
}

// Remove deletes the collection stored under key.
func (m *Medium) Remove(ctx context.Context, key string) error {
	ctx, cancel := m.withTimeout(ctx, m.opts.WriteTimeout)
	defer cancel()

	n, err := ExecuteWithRowsAffected(ctx, m.db, "remove collection", `DELETE FROM collections WHERE key = ?`, key)
	if err != nil {
		return err
	}
	m.logger.Debug("collection removed", logging.FieldKey, key, logging.FieldCount, n)
	return nil
}

// Collections lists every stored collection ordered by key.
func (m *Medium) Collections(ctx context.Context) ([]*CollectionRow, error) {
	ctx, cancel := m.withTimeout(ctx, m.opts.QueryTimeout)
	defer cancel()

	return QueryMultiple(ctx, m.db,
		`SELECT key, value, updated_at FROM collections ORDER BY key`,
		ScanCollections, "collections")
}

// Describe reports the database location, its schema version and every
// stored collection.
func (m *Medium) Describe(ctx context.Context) (repository.StorageInfo, error) {
	info := repository.StorageInfo{Backend: "sqlite", Location: m.path}

	version, dirty, err := migrations.Version(m.db)
	if err != nil {
		return repository.StorageInfo{}, errors.NewDatabaseError("read schema version", err)
	}
	if dirty {
		m.logger.Warn("schema is in a dirty migration state", "version", version)
	}
	info.SchemaVersion = &version

	rows, err := m.Collections(ctx)
	if err != nil {
		return repository.StorageInfo{}, err
	}
	for _, row := range rows {
		updatedAt := row.UpdatedAt
		info.Collections = append(info.Collections, repository.CollectionInfo{
			Key:       row.Key,
			Bytes:     len(row.Value),
			UpdatedAt: &updatedAt,
		})
	}
	return info, nil
}

func (m *Medium) withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
