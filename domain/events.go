package domain

const (
	TaskCreated   = "task-created"
	TaskCompleted = "task-completed"
	TaskReopened  = "task-reopened"
	TaskDeleted   = "task-deleted"

	EntityTypeTask = "task"
)

// Event describes a change applied to the task store. Task holds the state
// after the change, or the removed task for TaskDeleted.
type Event struct {
	ID         string `json:"id"`
	EntityID   string `json:"entityId"`
	EntityType string `json:"entityType"`
	Type       string `json:"type"`
	Task       Task   `json:"task"`
	Time       int64  `json:"time"`
}
