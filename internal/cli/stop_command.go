package cli

import (
	"context"

	"my-admin/internal/domain"
)

// StopCommand handles the stop and pause commands. Pausing closes the entry
// exactly like stopping; a later start opens a new one.
type StopCommand struct {
	app   *App
	pause bool
}

// NewStopCommand creates a new stop command handler
func NewStopCommand(app *App) *StopCommand {
	return &StopCommand{app: app}
}

// NewPauseCommand creates a new pause command handler
func NewPauseCommand(app *App) *StopCommand {
	return &StopCommand{app: app, pause: true}
}

// Execute runs the stop command
func (c *StopCommand) Execute(ctx context.Context, args []string) error {
	var (
		entry domain.TimeEntry
		found bool
		err   error
	)
	if c.pause {
		entry, found, err = c.app.services.Timer.Pause(ctx)
	} else {
		entry, found, err = c.app.services.Timer.Stop(ctx)
	}
	if err != nil {
		return c.app.errorHandler.Handle(c.verb()+" timer", err)
	}

	if !found {
		c.app.println("No timer is running")
		return nil
	}

	past := "Stopped"
	if c.pause {
		past = "Paused"
	}
	c.app.printf("%s: %s (%s)\n", past, entry.Title, c.app.services.TimeService.FormatDuration(entry.Minutes()))
	return nil
}

func (c *StopCommand) verb() string {
	if c.pause {
		return "pause"
	}
	return "stop"
}
