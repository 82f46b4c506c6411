package cli

import (
	"context"
	"strings"
)

// LogAddCommand handles the log add command, recording a finished entry by hand
type LogAddCommand struct {
	app      *App
	title    string
	category string
	start    string
	end      string
}

// NewLogAddCommand creates a new log add command handler
func NewLogAddCommand(app *App) *LogAddCommand {
	return &LogAddCommand{app: app, category: DefaultCategory}
}

// Execute runs the log add command. Positional arguments form the title when
// --title is not given.
func (c *LogAddCommand) Execute(ctx context.Context, args []string) error {
	title := c.title
	if title == "" {
		title = strings.Join(args, " ")
	}

	start, err := parseDateTime("start", c.start, c.app.loc)
	if err != nil {
		return c.app.errorHandler.Handle("add time entry", err)
	}
	end, err := parseDateTime("end", c.end, c.app.loc)
	if err != nil {
		return c.app.errorHandler.Handle("add time entry", err)
	}

	entry, err := c.app.services.TimeService.CreateEntry(ctx, title, c.category, start, end)
	if err != nil {
		return c.app.errorHandler.Handle("add time entry", err)
	}

	id, _ := entry.Identity()
	c.app.printf("Added entry %d: %s [%s] (%s)\n", id, entry.Title, entry.Category,
		c.app.services.TimeService.FormatDuration(entry.Minutes()))
	return nil
}

// LogEditCommand handles the log edit command. Nil fields keep their stored value.
type LogEditCommand struct {
	app      *App
	title    *string
	category *string
	start    *string
	end      *string
}

// NewLogEditCommand creates a new log edit command handler
func NewLogEditCommand(app *App) *LogEditCommand {
	return &LogEditCommand{app: app}
}

// Execute runs the log edit command. The first argument is the entry id.
func (c *LogEditCommand) Execute(ctx context.Context, args []string) error {
	const operation = "edit time entry"
	if c.title == nil && c.category == nil && c.start == nil && c.end == nil {
		return c.app.errorHandler.Handle(operation, errNothingToChange())
	}
	id, err := parseID("id", firstArg(args))
	if err != nil {
		return c.app.errorHandler.Handle(operation, err)
	}

	entry, err := c.app.services.TimeService.GetEntry(ctx, id)
	if err != nil {
		return c.app.errorHandler.Handle(operation, err)
	}
	if c.title != nil {
		entry.Title = *c.title
	}
	if c.category != nil {
		entry.Category = *c.category
	}
	if c.start != nil {
		if entry.StartTime, err = parseDateTime("start", *c.start, c.app.loc); err != nil {
			return c.app.errorHandler.Handle(operation, err)
		}
	}
	if c.end != nil {
		end, err := parseDateTime("end", *c.end, c.app.loc)
		if err != nil {
			return c.app.errorHandler.Handle(operation, err)
		}
		entry.EndTime = &end
	}

	updated, err := c.app.services.TimeService.UpdateEntry(ctx, entry)
	if err != nil {
		return c.app.errorHandler.Handle(operation, err)
	}
	c.app.printf("Updated entry %d: %s [%s] (%s)\n", id, updated.Title, updated.Category,
		c.app.services.TimeService.FormatDuration(updated.Minutes()))
	return nil
}
