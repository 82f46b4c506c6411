package cli

import (
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"my-admin/internal/errors"
)

// OutputCommand handles the output command
type OutputCommand struct {
	app *App
}

// NewOutputCommand creates a new output command handler
func NewOutputCommand(app *App) *OutputCommand {
	return &OutputCommand{app: app}
}

// Execute runs the output command
func (c *OutputCommand) Execute(ctx context.Context, args []string) error {
	return c.outputEntries(ctx, args)
}

// outputEntries outputs time entries in the specified format
func (c *OutputCommand) outputEntries(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.NewInvalidInputError("command", "output", "usage: myadmin output format=csv")
	}

	format := args[0]
	if !strings.HasPrefix(format, "format=") {
		return errors.NewInvalidInputError("format", format, "invalid format option")
	}

	format = strings.TrimPrefix(format, "format=")
	switch format {
	case "csv":
		return c.outputCSV(ctx)
	default:
		return errors.NewInvalidInputError("format", format, "unsupported format")
	}
}

// outputCSV writes every time entry, newest first. Running entries have an
// empty end time and no minutes.
func (c *OutputCommand) outputCSV(ctx context.Context) error {
	entries, err := c.app.services.TimeService.ListEntries(ctx, nil)
	if err != nil {
		return c.app.errorHandler.Handle("export time entries", err)
	}

	writer := csv.NewWriter(c.app.out)

	header := []string{"ID", "Title", "Category", "Start Time", "End Time", "Elapsed Minutes", "Duration (hours)"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, entry := range entries {
		id, _ := entry.Identity()

		var endTime, minutes, hours string
		if entry.EndTime != nil {
			endTime = entry.EndTime.Format(time.RFC3339)
			minutes = strconv.Itoa(entry.Minutes())
			hours = fmt.Sprintf("%.2f", float64(entry.Minutes())/60)
		}

		row := []string{
			strconv.FormatInt(id, 10),
			entry.Title,
			entry.Category,
			entry.StartTime.Format(time.RFC3339),
			endTime,
			minutes,
			hours,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
