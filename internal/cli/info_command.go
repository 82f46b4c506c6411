package cli

import (
	"context"
	"strconv"
)

// InfoCommand handles the info command
type InfoCommand struct {
	app *App
}

// NewInfoCommand creates a new info command handler
func NewInfoCommand(app *App) *InfoCommand {
	return &InfoCommand{app: app}
}

// Execute prints the storage backend and the size of every stored collection.
func (c *InfoCommand) Execute(ctx context.Context, args []string) error {
	info, err := c.app.services.ReportingService.StorageInfo(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("show storage info", err)
	}

	version := "n/a"
	if info.SchemaVersion != nil {
		version = strconv.FormatUint(uint64(*info.SchemaVersion), 10)
	}
	c.app.printf("%-16s %s\n", "Backend:", info.Backend)
	c.app.printf("%-16s %s\n", "Location:", info.Location)
	c.app.printf("%-16s %s\n", "Schema version:", version)

	if len(info.Collections) == 0 {
		c.app.println("No collections stored")
		return nil
	}
	c.app.println(c.app.rule("-"))
	c.app.printf("%-16s %10s  %s\n", "Collection", "Bytes", "Updated")
	for _, col := range info.Collections {
		updated := "-"
		if col.UpdatedAt != nil {
			updated = c.app.formatTime(*col.UpdatedAt)
		}
		c.app.printf("%-16s %10d  %s\n", col.Key, col.Bytes, updated)
	}
	return nil
}
