package cli

import (
	"context"
	"strings"

	"my-admin/internal/errors"
)

// DefaultCategory is used when start is not given --category.
const DefaultCategory = "Development"

// StartCommand handles the start command
type StartCommand struct {
	app      *App
	category string
}

// NewStartCommand creates a new start command handler
func NewStartCommand(app *App) *StartCommand {
	return &StartCommand{app: app, category: DefaultCategory}
}

// Execute runs the start command
func (c *StartCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "start", "usage: myadmin start \"your text here\"")
	}
	title := strings.TrimSpace(strings.Join(args, " "))
	category := strings.TrimSpace(c.category)
	return c.startTimer(ctx, title, category)
}

// startTimer validates the input and starts the timer. A running timer is
// never replaced; the user has to stop it first.
func (c *StartCommand) startTimer(ctx context.Context, title, category string) error {
	if err := c.app.entryValidator.ValidateStart(title, category); err != nil {
		return c.app.errorHandler.Handle("start timer", err)
	}

	entry, err := c.app.services.Timer.Start(ctx, title, category)
	if err != nil {
		return c.app.errorHandler.Handle("start timer", err)
	}

	c.app.printf("Started: %s [%s] at %s\n", entry.Title, entry.Category, c.app.formatTime(entry.StartTime))
	return nil
}
