package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"my-admin/internal/config"
	"my-admin/internal/timer"
)

func TestContainerFactory_Backends(t *testing.T) {
	tests := []struct {
		name    string
		backend config.Backend
		env     config.Environment
	}{
		{"memory", config.BackendMemory, config.Production},
		{"none", config.BackendNone, config.Production},
		{"sqlite in memory", config.BackendSQLite, config.Testing},
		{"sqlite on disk", config.BackendSQLite, config.Production},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewConfig()
			cfg.Storage.Backend = tt.backend
			cfg.Storage.Dir = t.TempDir()
			cfg.Time.Timezone = "UTC"

			container, release, err := newContainerFactory(tt.env)(context.Background(), cfg)
			require.NoError(t, err)
			defer func() { assert.NoError(t, release()) }()

			assert.Equal(t, timer.Idle, container.Timer.State())
			_, err = container.TaskService.CreateTask(context.Background(), "Smoke test", nil)
			require.NoError(t, err)
		})
	}
}

func TestContainerFactory_PersistsAcrossOpens(t *testing.T) {
	ctx := context.Background()
	cfg := config.NewConfig()
	cfg.Storage.Dir = t.TempDir()
	cfg.Time.Timezone = "UTC"
	factory := newContainerFactory(config.Production)

	first, release, err := factory(ctx, cfg)
	require.NoError(t, err)
	_, err = first.Timer.Start(ctx, "Survives restarts", "Development")
	require.NoError(t, err)
	require.NoError(t, release())

	second, release, err := factory(ctx, cfg)
	require.NoError(t, err)
	defer func() { assert.NoError(t, release()) }()

	active, running := second.Timer.Active()
	require.True(t, running)
	assert.Equal(t, "Survives restarts", active.Title)
}

func TestContainerFactory_BadTimezone(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Storage.Backend = config.BackendMemory
	cfg.Time.Timezone = "Mars/Olympus"

	_, _, err := newContainerFactory(config.Production)(context.Background(), cfg)
	assert.Error(t, err)
}
