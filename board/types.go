package board

import "tasklist/domain"

// TaskStore abstracts the task collection the board mutates and reads.
type TaskStore interface {
	Add(title string, priority domain.Priority) (domain.Task, error)
	Toggle(id string) (domain.Task, bool)
	Delete(id string) bool
	Tasks() []domain.Task
}

// Counts summarises the whole collection regardless of the active filter.
type Counts struct {
	Total int
	Open  int
	Done  int
}
