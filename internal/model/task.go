package model

// Priority is the qualitative tier shared by tasks, scores and extracted drafts.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Status is the lifecycle state of a task in the dashboard store.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// Task is a student task as kept by the dashboard store.
type Task struct {
	ID          string
	Title       string
	Course      string
	Description string
	DueDate     string // YYYY-MM-DD
	DueTime     string // HH:MM
	Priority    Priority
	Status      Status
}
