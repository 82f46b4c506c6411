package cli

import (
	"context"
	"fmt"

	"my-admin/internal/errors"
)

// recordKind names what a DeleteCommand removes.
type recordKind string

const (
	kindEntry        recordKind = "time entry"
	kindTask         recordKind = "task"
	kindSubscription recordKind = "subscription"
)

// DeleteCommand handles log delete, task delete and sub delete. It describes
// the record and asks for confirmation unless --yes was given.
type DeleteCommand struct {
	app  *App
	kind recordKind
	yes  bool
}

// NewDeleteCommand creates a new delete command handler for kind
func NewDeleteCommand(app *App, kind recordKind) *DeleteCommand {
	return &DeleteCommand{app: app, kind: kind}
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "delete", fmt.Sprintf("usage: delete <%s id>", c.kind))
	}
	operation := "delete " + string(c.kind)

	id, err := parseID("id", args[0])
	if err != nil {
		return c.app.errorHandler.Handle(operation, err)
	}

	description, err := c.describe(ctx, id)
	if err != nil {
		return c.app.errorHandler.Handle(operation, err)
	}

	if !c.yes && !c.app.confirm(fmt.Sprintf("Delete %s %d (%s)?", c.kind, id, description)) {
		c.app.println("Delete cancelled.")
		return nil
	}

	if err := c.remove(ctx, id); err != nil {
		return c.app.errorHandler.Handle(operation, err)
	}
	c.app.printf("Deleted %s %d: %s\n", c.kind, id, description)
	return nil
}

// describe loads the record so the prompt can name it. Missing ids fail here,
// before the user is asked anything.
func (c *DeleteCommand) describe(ctx context.Context, id int64) (string, error) {
	svc := c.app.services
	switch c.kind {
	case kindEntry:
		entry, err := svc.TimeService.GetEntry(ctx, id)
		if err != nil {
			return "", err
		}
		return entry.Title, nil
	case kindTask:
		task, err := svc.TaskService.GetTask(ctx, id)
		if err != nil {
			return "", err
		}
		return task.Title, nil
	case kindSubscription:
		plan, err := svc.SubscriptionService.GetSubscription(ctx, id)
		if err != nil {
			return "", err
		}
		return plan.ServiceName, nil
	}
	return "", fmt.Errorf("unknown record kind %q", c.kind)
}

func (c *DeleteCommand) remove(ctx context.Context, id int64) error {
	svc := c.app.services
	switch c.kind {
	case kindEntry:
		return svc.TimeService.DeleteEntry(ctx, id)
	case kindTask:
		return svc.TaskService.DeleteTask(ctx, id)
	case kindSubscription:
		return svc.SubscriptionService.DeleteSubscription(ctx, id)
	}
	return fmt.Errorf("unknown record kind %q", c.kind)
}
