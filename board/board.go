package board

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"tasklist/domain"
)

// EmptyBoardMessage is shown when there are no tasks at all.
const EmptyBoardMessage = "Nothing to do! Add your first task."

// Board composes the task store with the filter selection and the draft of
// the next task. Presentation layers send intents to it and re-read the
// derived state after every call.
type Board struct {
	store  TaskStore
	filter FilterState
	draft  Draft
	logger *log.Logger
}

type Option func(*Board)

func WithLogger(logger *log.Logger) Option {
	return func(b *Board) { b.logger = logger }
}

// WithDraftPriority presets the priority of the first draft.
func WithDraftPriority(p domain.Priority) Option {
	return func(b *Board) { b.draft = NewDraft(p) }
}

// New creates a board over store with filter all and an empty medium draft.
func New(store TaskStore, opts ...Option) *Board {
	if store == nil {
		panic("board.New: store is nil")
	}
	b := &Board{
		store:  store,
		draft:  NewDraft(domain.DefaultPriority),
		logger: log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = log.StandardLogger()
	}
	return b
}

func (b *Board) track(op string) *operationMetrics {
	m, _ := newOperationMetrics(context.Background(), b.logger, op)
	return m
}

// Add creates a task directly, bypassing the draft.
func (b *Board) Add(title string, priority domain.Priority) (task domain.Task, err error) {
	m := b.track("add")
	defer func() {
		m.SetVisible(len(b.Visible()))
		m.Log(err)
	}()

	task, err = b.store.Add(title, priority)
	if err != nil {
		return domain.Task{}, err
	}
	m.SetTaskID(task.ID)
	return task, nil
}

// Toggle flips a task between open and done. Unknown ids are ignored.
func (b *Board) Toggle(id string) bool {
	m := b.track("toggle")
	m.SetTaskID(id)
	_, ok := b.store.Toggle(id)
	if !ok {
		m.SetNoop()
	}
	m.SetVisible(len(b.Visible()))
	m.Log(nil)
	return ok
}

// Delete removes a task. Unknown ids are ignored.
func (b *Board) Delete(id string) bool {
	m := b.track("delete")
	m.SetTaskID(id)
	ok := b.store.Delete(id)
	if !ok {
		m.SetNoop()
	}
	m.SetVisible(len(b.Visible()))
	m.Log(nil)
	return ok
}

// SelectFilter changes which priority is visible. The store is not touched.
func (b *Board) SelectFilter(f domain.Filter) (err error) {
	m := b.track("select_filter")
	defer func() {
		m.SetVisible(len(b.Visible()))
		m.Log(err)
	}()
	return b.filter.Select(f)
}

// CycleFilter advances the filter to the next value and returns it.
func (b *Board) CycleFilter() domain.Filter {
	m := b.track("cycle_filter")
	next := b.filter.Next()
	m.SetVisible(len(b.Visible()))
	m.Log(nil)
	return next
}

func (b *Board) SetDraftTitle(title string) {
	b.draft.SetTitle(title)
}

func (b *Board) SetDraftPriority(p domain.Priority) error {
	return b.draft.SetPriority(p)
}

// CycleDraftPriority advances the draft priority and returns the new value.
func (b *Board) CycleDraftPriority() domain.Priority {
	next := b.draft.Priority().Next()
	_ = b.draft.SetPriority(next)
	return next
}

// Submit creates a task from the draft. A blank draft is left untouched and
// nothing is created. On success the title is cleared and the priority kept.
func (b *Board) Submit() (domain.Task, bool) {
	task, err := b.Add(b.draft.Title(), b.draft.Priority())
	if err != nil {
		if !errors.Is(err, domain.ErrEmptyTitle) {
			b.logger.WithError(err).Warn("submit draft")
		}
		return domain.Task{}, false
	}
	b.draft.SetTitle("")
	return task, true
}

// Visible returns the projection of the store under the current filter.
func (b *Board) Visible() []domain.Task {
	return domain.Project(b.store.Tasks(), b.filter.Value())
}

func (b *Board) Draft() Draft { return b.draft }

func (b *Board) Filter() domain.Filter { return b.filter.Value() }

// SubmitDisabled reports whether Submit would be rejected for a blank title.
func (b *Board) SubmitDisabled() bool { return b.draft.SubmitDisabled() }

func (b *Board) Counts() Counts {
	var c Counts
	for _, t := range b.store.Tasks() {
		c.Total++
		if t.Done {
			c.Done++
		} else {
			c.Open++
		}
	}
	return c
}

// EmptyMessage returns the text to show instead of the list, or "" when there
// are visible tasks.
func (b *Board) EmptyMessage() string {
	if len(b.Visible()) > 0 {
		return ""
	}
	if len(b.store.Tasks()) == 0 {
		return EmptyBoardMessage
	}
	return fmt.Sprintf("No %s priority tasks.", b.filter.Value())
}
