package main

import (
	"context"
	"fmt"
	"log/slog"

	"my-admin/internal/cli"
	"my-admin/internal/clock"
	"my-admin/internal/config"
	"my-admin/internal/repository"
	"my-admin/internal/services"
	"my-admin/internal/validation"
)

// newContainerFactory opens the medium chosen by the environment and the
// storage backend, then wires the services over it. The release func closes
// the medium.
func newContainerFactory(env config.Environment) cli.ContainerFactory {
	return func(ctx context.Context, cfg *config.Config) (*services.ServiceContainer, func() error, error) {
		logger := slog.Default()

		loc, err := cfg.Location()
		if err != nil {
			return nil, nil, fmt.Errorf("invalid timezone: %w", err)
		}

		medium, err := config.NewMediumFactory(cfg, env, logger).CreateMedium()
		if err != nil {
			return nil, nil, err
		}

		stores := repository.NewStores(medium, logger)
		container, err := services.NewServiceContainer(ctx, stores, services.Options{
			Clock:     clock.System(),
			Location:  loc,
			Validator: validation.NewValidatorWithConfig(cfg),
			Logger:    logger,
		})
		if err != nil {
			_ = medium.Close()
			return nil, nil, fmt.Errorf("failed to recover timer state: %w", err)
		}

		logger.Debug("storage ready", "backend", cfg.Storage.Backend, "environment", env)
		return container, medium.Close, nil
	}
}
