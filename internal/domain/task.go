package domain

// TaskStatus is the workflow state of a task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// TaskStatuses lists every status in display order.
var TaskStatuses = []TaskStatus{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted}

// IsValid reports whether s is a known status.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// Task is a to-do item.
type Task struct {
	ID      *int64     `json:"id,omitempty"`
	Title   string     `json:"title"`
	Status  TaskStatus `json:"status"`
	DueDate *Date      `json:"due_date,omitempty"`
}

// NewTask creates a pending task with the given title.
func NewTask(title string) Task {
	return Task{
		Title:  title,
		Status: TaskStatusPending,
	}
}

// Identity returns the store-assigned id, if any.
func (t Task) Identity() (int64, bool) {
	if t.ID == nil {
		return 0, false
	}
	return *t.ID, true
}

// WithIdentity returns a copy of the task carrying id.
func (t Task) WithIdentity(id int64) Task {
	t.ID = &id
	return t
}

// IsValid checks if the task has a known status.
func (t Task) IsValid() bool {
	return t.Status.IsValid()
}

// IsCompleted reports whether the task is done.
func (t Task) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}
