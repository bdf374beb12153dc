package board

import (
	"fmt"
	"strings"

	"tasklist/domain"
)

// Draft is the not yet submitted title and priority of a new task.
type Draft struct {
	title    string
	priority domain.Priority
}

// NewDraft returns an empty draft preset to priority. Invalid priorities fall
// back to domain.DefaultPriority.
func NewDraft(priority domain.Priority) Draft {
	if !priority.Valid() {
		priority = domain.DefaultPriority
	}
	return Draft{priority: priority}
}

func (d Draft) Title() string { return d.title }

func (d Draft) Priority() domain.Priority {
	if d.priority == "" {
		return domain.DefaultPriority
	}
	return d.priority
}

// SubmitDisabled reports whether the trimmed title is empty.
func (d Draft) SubmitDisabled() bool {
	return strings.TrimSpace(d.title) == ""
}

func (d *Draft) SetTitle(title string) {
	d.title = title
}

func (d *Draft) SetPriority(p domain.Priority) error {
	if !p.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidPriority, p)
	}
	d.priority = p
	return nil
}
