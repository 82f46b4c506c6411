package cli

import (
	"context"
	stderrors "errors"
)

// CurrentCommand handles the current command
type CurrentCommand struct {
	app   *App
	watch bool
}

// NewCurrentCommand creates a new current command handler
func NewCurrentCommand(app *App) *CurrentCommand {
	return &CurrentCommand{app: app}
}

// Execute runs the current command
func (c *CurrentCommand) Execute(ctx context.Context, args []string) error {
	return c.showCurrentTimer(ctx)
}

// showCurrentTimer displays the running entry, refreshing the elapsed time
// every watch interval until ctx ends when watching.
func (c *CurrentCommand) showCurrentTimer(ctx context.Context) error {
	timer := c.app.services.Timer
	entry, running := timer.Active()
	if !running {
		c.app.println("No timer is running")
		return nil
	}

	c.app.printf("Current: %s [%s] since %s\n", entry.Title, entry.Category, c.app.formatTime(entry.StartTime))
	if !c.watch {
		c.app.printf("Elapsed: %s\n", timer.ElapsedTime())
		return nil
	}

	err := timer.Watch(ctx, c.app.config.Application.WatchInterval, func(elapsed string) {
		c.app.printf("\rElapsed: %s", elapsed)
	})
	c.app.println()
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
