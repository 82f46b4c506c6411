package services

import (
	"context"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"my-admin/internal/clock"
	"my-admin/internal/domain"
	"my-admin/internal/errors"
	"my-admin/internal/logging"
	"my-admin/internal/repository"
	"my-admin/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	store         *repository.Store[domain.Task]
	clock         clock.Clock
	loc           *time.Location
	taskValidator *validation.TaskValidator
	logger        *slog.Logger
}

// NewTaskService creates a new TaskService instance
func NewTaskService(store *repository.Store[domain.Task], clk clock.Clock, v *validation.Validator, loc *time.Location, logger *slog.Logger) TaskService {
	if clk == nil {
		clk = clock.System()
	}
	if v == nil {
		v = validation.NewValidator()
	}
	return &taskServiceImpl{
		store:         store,
		clock:         clk,
		loc:           loc,
		taskValidator: validation.NewTaskValidatorWith(v),
		logger:        logging.WithComponent(logger, logging.ComponentServices),
	}
}

// CreateTask adds a pending task
func (s *taskServiceImpl) CreateTask(ctx context.Context, title string, due *domain.Date) (domain.Task, error) {
	cleanTitle, err := s.taskValidator.GetValidTaskTitle(title)
	if err != nil {
		return domain.Task{}, err
	}

	task := domain.NewTask(cleanTitle)
	task.DueDate = due

	saved, err := s.store.Save(ctx, task)
	if err != nil {
		return domain.Task{}, err
	}
	id, _ := saved.Identity()
	s.logger.Debug("task created", logging.FieldID, id)
	return saved, nil
}

// GetTask retrieves a task by ID
func (s *taskServiceImpl) GetTask(ctx context.Context, id int64) (domain.Task, error) {
	if err := s.taskValidator.ValidateTaskID(id); err != nil {
		return domain.Task{}, err
	}
	task, found, err := s.store.GetByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	if !found {
		return domain.Task{}, errors.NewNotFoundError("task", strconv.FormatInt(id, 10))
	}
	return task, nil
}

// ListTasks returns tasks with a due date first, soonest first, then the rest
// newest first. A nil status lists every task.
func (s *taskServiceImpl) ListTasks(ctx context.Context, status *domain.TaskStatus) ([]domain.Task, error) {
	if status != nil {
		if err := s.taskValidator.ValidateStatus(*status); err != nil {
			return nil, err
		}
	}

	tasks, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := tasks[:0]
	for _, task := range tasks {
		if status == nil || task.Status == *status {
			filtered = append(filtered, task)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		switch {
		case a.DueDate != nil && b.DueDate != nil:
			return a.DueDate.Before(*b.DueDate)
		case a.DueDate != nil:
			return true
		case b.DueDate != nil:
			return false
		}
		idA, _ := a.Identity()
		idB, _ := b.Identity()
		return idA > idB
	})
	return filtered, nil
}

// UpdateTask re-saves an existing task under its own identity.
func (s *taskServiceImpl) UpdateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	id, ok := task.Identity()
	if !ok {
		return domain.Task{}, errors.NewInvalidInputError("id", nil, "an existing task is required")
	}
	task.Title = strings.TrimSpace(task.Title)
	if err := s.taskValidator.ValidateTask(task); err != nil {
		return domain.Task{}, err
	}
	if _, err := s.GetTask(ctx, id); err != nil {
		return domain.Task{}, err
	}

	saved, err := s.store.Save(ctx, task)
	if err != nil {
		return domain.Task{}, err
	}
	s.logger.Debug("task updated", logging.FieldID, id)
	return saved, nil
}

// SetStatus moves a task to status
func (s *taskServiceImpl) SetStatus(ctx context.Context, id int64, status domain.TaskStatus) (domain.Task, error) {
	if err := s.taskValidator.ValidateStatus(status); err != nil {
		return domain.Task{}, err
	}
	task, err := s.GetTask(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	task.Status = status
	return s.store.Save(ctx, task)
}

// ToggleComplete flips a task between completed and pending
func (s *taskServiceImpl) ToggleComplete(ctx context.Context, id int64) (domain.Task, error) {
	task, err := s.GetTask(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	if task.IsCompleted() {
		task.Status = domain.TaskStatusPending
	} else {
		task.Status = domain.TaskStatusCompleted
	}
	return s.store.Save(ctx, task)
}

// ToggleWork starts work on a pending task or pauses an in-progress one.
// Completed tasks must be reopened first.
func (s *taskServiceImpl) ToggleWork(ctx context.Context, id int64) (domain.Task, error) {
	task, err := s.GetTask(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	switch task.Status {
	case domain.TaskStatusPending:
		task.Status = domain.TaskStatusInProgress
	case domain.TaskStatusInProgress:
		task.Status = domain.TaskStatusPending
	default:
		return domain.Task{}, errors.NewConflictError("start task", "the task is already completed")
	}
	return s.store.Save(ctx, task)
}

// DeleteTask removes a task
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	if err := s.taskValidator.ValidateTaskID(id); err != nil {
		return err
	}
	removed, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return errors.NewNotFoundError("task", strconv.FormatInt(id, 10))
	}
	s.logger.Debug("task deleted", logging.FieldID, id)
	return nil
}

// CountByStatus counts tasks per status
func (s *taskServiceImpl) CountByStatus(ctx context.Context) (TaskCounts, error) {
	tasks, err := s.store.GetAll(ctx)
	if err != nil {
		return TaskCounts{}, err
	}
	return countTasks(tasks), nil
}

// UpcomingDeadlines returns open tasks due within windowDays, overdue ones
// included, soonest first and at most limit of them.
func (s *taskServiceImpl) UpcomingDeadlines(ctx context.Context, windowDays, limit int) ([]Deadline, error) {
	tasks, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return upcomingDeadlines(tasks, s.today(), windowDays, limit), nil
}

// DueUrgency classifies a task's due date relative to today and returns the
// days left, negative once the date has passed.
func (s *taskServiceImpl) DueUrgency(task domain.Task) (Urgency, int) {
	return dueUrgency(task, s.today())
}

func (s *taskServiceImpl) today() domain.Date {
	return domain.DateOf(s.clock.Now(), s.loc)
}

func dueUrgency(task domain.Task, today domain.Date) (Urgency, int) {
	if task.DueDate == nil {
		return UrgencyNone, 0
	}
	daysLeft := today.DaysUntil(*task.DueDate)

	switch {
	case daysLeft < 0:
		return UrgencyOverdue, daysLeft
	case daysLeft <= imminentDays:
		return UrgencyImminent, daysLeft
	case daysLeft <= dueSoonDays:
		return UrgencySoon, daysLeft
	default:
		return UrgencyLater, daysLeft
	}
}

func upcomingDeadlines(tasks []domain.Task, today domain.Date, windowDays, limit int) []Deadline {
	deadlines := make([]Deadline, 0)
	for _, task := range tasks {
		if task.IsCompleted() {
			continue
		}
		urgency, daysLeft := dueUrgency(task, today)
		if urgency == UrgencyNone || daysLeft > windowDays {
			continue
		}
		deadlines = append(deadlines, Deadline{Task: task, DaysLeft: daysLeft, Urgency: urgency})
	}

	sort.SliceStable(deadlines, func(i, j int) bool {
		return deadlines[i].DaysLeft < deadlines[j].DaysLeft
	})
	if limit > 0 && len(deadlines) > limit {
		deadlines = deadlines[:limit]
	}
	return deadlines
}
