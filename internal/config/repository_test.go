package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"my-admin/internal/errors"
	"my-admin/internal/logging"
	"my-admin/internal/repository/memory"
	"my-admin/internal/repository/sqlite"
)

func TestMediumFactory_CreateMedium(t *testing.T) {
	ctx := context.Background()

	t.Run("production sqlite uses the data directory", func(t *testing.T) {
		cfg := NewConfig()
		cfg.Storage.Dir = filepath.Join(t.TempDir(), "nested")

		medium, err := NewMediumFactory(cfg, Production, logging.Discard()).CreateMedium()
		require.NoError(t, err)
		defer medium.Close()

		sqliteMedium, ok := medium.(*sqlite.Medium)
		require.True(t, ok)
		assert.Equal(t, cfg.GetDatabasePath(), sqliteMedium.Path())
		_, err = os.Stat(cfg.GetDatabasePath())
		assert.NoError(t, err)

		require.NoError(t, medium.Write(ctx, "k", "v"))
		text, found, err := medium.Read(ctx, "k")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "v", text)
	})

	t.Run("testing sqlite is in memory", func(t *testing.T) {
		medium, err := NewMediumFactory(NewConfig(), Testing, nil).CreateMedium()
		require.NoError(t, err)
		defer medium.Close()

		sqliteMedium, ok := medium.(*sqlite.Medium)
		require.True(t, ok)
		assert.Equal(t, sqlite.MemoryPath, sqliteMedium.Path())
	})

	t.Run("memory backend", func(t *testing.T) {
		cfg := NewConfig()
		cfg.Storage.Backend = BackendMemory

		medium, err := NewMediumFactory(cfg, Production, nil).CreateMedium()
		require.NoError(t, err)
		_, ok := medium.(*memory.Medium)
		assert.True(t, ok)
	})

	t.Run("none backend is unavailable", func(t *testing.T) {
		cfg := NewConfig()
		cfg.Storage.Backend = BackendNone

		medium, err := NewMediumFactory(cfg, Production, nil).CreateMedium()
		require.NoError(t, err)

		err = medium.Write(ctx, "k", "v")
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeUnavailable))
	})
}

func TestGetEnvironment(t *testing.T) {
	tests := []struct {
		value    string
		expected Environment
	}{
		{"development", Development},
		{"testing", Testing},
		{"production", Production},
		{"", Production},
		{"staging", Production},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("MYADMIN_ENV", tt.value)
			assert.Equal(t, tt.expected, GetEnvironment())
		})
	}
}
