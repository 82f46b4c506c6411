package cli

import (
	"context"
	"strconv"
	"strings"

	"my-admin/internal/domain"
	"my-admin/internal/errors"
	"my-admin/internal/services"
)

// TaskAddCommand handles the task add command
type TaskAddCommand struct {
	app *App
	due string
}

// NewTaskAddCommand creates a new task add command handler
func NewTaskAddCommand(app *App) *TaskAddCommand {
	return &TaskAddCommand{app: app}
}

// Execute runs the task add command
func (c *TaskAddCommand) Execute(ctx context.Context, args []string) error {
	due, err := parseDate("due", c.due)
	if err != nil {
		return c.app.errorHandler.Handle("add task", err)
	}

	task, err := c.app.services.TaskService.CreateTask(ctx, strings.Join(args, " "), due)
	if err != nil {
		return c.app.errorHandler.Handle("add task", err)
	}

	id, _ := task.Identity()
	c.app.printf("Added task %d: %s\n", id, task.Title)
	return nil
}

// TaskListCommand handles the task list command
type TaskListCommand struct {
	app    *App
	status string
}

// NewTaskListCommand creates a new task list command handler
func NewTaskListCommand(app *App) *TaskListCommand {
	return &TaskListCommand{app: app}
}

// Execute runs the task list command
func (c *TaskListCommand) Execute(ctx context.Context, args []string) error {
	var filter *domain.TaskStatus
	if c.status != "" {
		status := domain.TaskStatus(c.status)
		filter = &status
	}

	tasks, err := c.app.services.TaskService.ListTasks(ctx, filter)
	if err != nil {
		return c.app.errorHandler.Handle("list tasks", err)
	}

	if len(tasks) == 0 {
		c.app.println("No tasks found")
		return nil
	}

	svc := c.app.services.TaskService
	c.app.printf("%-5s %-12s %-11s %-13s %s\n", "ID", "Status", "Due", "When", "Title")
	c.app.println(c.app.rule("-"))
	for _, task := range tasks {
		id, _ := task.Identity()
		when := "-"
		if !task.IsCompleted() {
			when = dueLabel(svc.DueUrgency(task))
		}
		c.app.printf("%-5d %-12s %-11s %-13s %s\n", id, task.Status, dueText(task), when, task.Title)
	}

	counts, err := c.app.services.TaskService.CountByStatus(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("list tasks", err)
	}
	c.app.println(c.app.rule("-"))
	c.app.printf("%d pending, %d in progress, %d completed\n", counts.Pending, counts.InProgress, counts.Completed)
	return nil
}

// taskAction is a single-task transition such as toggling completion.
type taskAction func(ctx context.Context, id int64) (domain.Task, error)

// TaskUpdateCommand handles task status, task toggle and task work
type TaskUpdateCommand struct {
	app       *App
	operation string
	action    func(ctx context.Context, id int64, args []string) (domain.Task, error)
}

// NewTaskStatusCommand sets a task's status explicitly
func NewTaskStatusCommand(app *App) *TaskUpdateCommand {
	return &TaskUpdateCommand{
		app:       app,
		operation: "set task status",
		action: func(ctx context.Context, id int64, args []string) (domain.Task, error) {
			if len(args) != 1 {
				return domain.Task{}, errors.NewInvalidInputError("status", "", "usage: myadmin task status <id> <pending|in_progress|completed>")
			}
			return app.services.TaskService.SetStatus(ctx, id, domain.TaskStatus(args[0]))
		},
	}
}

// NewTaskToggleCommand flips a task between completed and pending
func NewTaskToggleCommand(app *App) *TaskUpdateCommand {
	return newSimpleTaskUpdate(app, "toggle task", app.services.TaskService.ToggleComplete)
}

// NewTaskWorkCommand starts or pauses work on a task
func NewTaskWorkCommand(app *App) *TaskUpdateCommand {
	return newSimpleTaskUpdate(app, "toggle task work", app.services.TaskService.ToggleWork)
}

func newSimpleTaskUpdate(app *App, operation string, action taskAction) *TaskUpdateCommand {
	return &TaskUpdateCommand{
		app:       app,
		operation: operation,
		action: func(ctx context.Context, id int64, _ []string) (domain.Task, error) {
			return action(ctx, id)
		},
	}
}

// Execute runs the task update command. The first argument is the task id.
func (c *TaskUpdateCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("id", "", "a task id is required")
	}
	id, err := parseID("id", args[0])
	if err != nil {
		return c.app.errorHandler.Handle(c.operation, err)
	}

	task, err := c.action(ctx, id, args[1:])
	if err != nil {
		return c.app.errorHandler.Handle(c.operation, err)
	}
	c.app.printf("Task %d is now %s: %s\n", id, task.Status, task.Title)
	return nil
}

// TaskEditCommand handles the task edit command. An empty due date clears it.
type TaskEditCommand struct {
	app   *App
	title *string
	due   *string
}

// NewTaskEditCommand creates a new task edit command handler
func NewTaskEditCommand(app *App) *TaskEditCommand {
	return &TaskEditCommand{app: app}
}

// Execute runs the task edit command. The first argument is the task id.
func (c *TaskEditCommand) Execute(ctx context.Context, args []string) error {
	const operation = "edit task"
	if c.title == nil && c.due == nil {
		return c.app.errorHandler.Handle(operation, errNothingToChange())
	}
	id, err := parseID("id", firstArg(args))
	if err != nil {
		return c.app.errorHandler.Handle(operation, err)
	}

	task, err := c.app.services.TaskService.GetTask(ctx, id)
	if err != nil {
		return c.app.errorHandler.Handle(operation, err)
	}
	if c.title != nil {
		task.Title = *c.title
	}
	if c.due != nil {
		if task.DueDate, err = parseDate("due", *c.due); err != nil {
			return c.app.errorHandler.Handle(operation, err)
		}
	}

	updated, err := c.app.services.TaskService.UpdateTask(ctx, task)
	if err != nil {
		return c.app.errorHandler.Handle(operation, err)
	}
	c.app.printf("Updated task %d: %s (due %s)\n", id, updated.Title, dueText(updated))
	return nil
}

func dueText(task domain.Task) string {
	if task.DueDate == nil {
		return "-"
	}
	return task.DueDate.String()
}

// dueLabel describes how far away an open task's due date is.
func dueLabel(urgency services.Urgency, daysLeft int) string {
	switch {
	case urgency == services.UrgencyNone:
		return "-"
	case daysLeft < 0:
		return "overdue " + strconv.Itoa(-daysLeft) + "d"
	case daysLeft == 0:
		return "due today"
	case daysLeft == 1:
		return "due tomorrow"
	}
	return "in " + strconv.Itoa(daysLeft) + " days"
}
