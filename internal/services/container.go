package services

import (
	"context"
	"log/slog"
	"time"

	"my-admin/internal/clock"
	"my-admin/internal/repository"
	"my-admin/internal/timer"
	"my-admin/internal/validation"
)

// Options configures the service container.
type Options struct {
	Clock     clock.Clock
	Location  *time.Location
	Validator *validation.Validator
	Logger    *slog.Logger
}

// NewServiceContainer recovers the timer from stores and wires every service to it.
func NewServiceContainer(ctx context.Context, stores *repository.Stores, opts Options) (*ServiceContainer, error) {
	if opts.Clock == nil {
		opts.Clock = clock.System()
	}
	if opts.Validator == nil {
		opts.Validator = validation.NewValidator()
	}

	machine, err := timer.NewMachine(ctx, stores.TimeEntries, opts.Clock, opts.Logger)
	if err != nil {
		return nil, err
	}

	return &ServiceContainer{
		TimeService:         NewTimeService(stores.TimeEntries, machine, opts.Clock, opts.Validator, opts.Location, opts.Logger),
		TaskService:         NewTaskService(stores.Tasks, opts.Clock, opts.Validator, opts.Location, opts.Logger),
		SubscriptionService: NewSubscriptionService(stores.Subscriptions, opts.Clock, opts.Validator, opts.Location, opts.Logger),
		ReportingService:    NewReportingService(stores, machine, opts.Clock, opts.Validator, opts.Location, opts.Logger),
		Timer:               machine,
	}, nil
}
