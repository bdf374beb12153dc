package store

import (
	"slices"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"tasklist/domain"
)

// Store owns the in-memory task collection. Tasks are kept in insertion
// order; display order is computed by domain.Project.
type Store struct {
	mu     sync.Mutex
	tasks  []domain.Task
	index  map[string]int
	clock  func() int64
	newID  func() string
	logger *log.Logger

	subMu  sync.Mutex
	subSeq int
	subs   map[int]func(domain.Event)
}

// Option customises a Store.
type Option func(*Store)

// WithClock overrides the creation timestamp source.
func WithClock(clock func() int64) Option {
	return func(s *Store) { s.clock = clock }
}

// WithIDGenerator overrides how task ids are produced.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

func WithLogger(logger *log.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		index:  map[string]int{},
		clock:  nextTimestamp,
		newID:  newID,
		logger: log.StandardLogger(),
		subs:   map[int]func(domain.Event){},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.StandardLogger()
	}
	return s
}

// Add creates a task from title and priority. The title is trimmed and must
// not be empty; an empty priority selects domain.DefaultPriority.
func (s *Store) Add(title string, priority domain.Priority) (domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Task{}, domain.ErrEmptyTitle
	}
	if priority == "" {
		priority = domain.DefaultPriority
	}
	if !priority.Valid() {
		return domain.Task{}, domain.ErrInvalidPriority
	}

	s.mu.Lock()
	task := domain.Task{
		ID:        s.newID(),
		Title:     title,
		Done:      false,
		CreatedAt: s.clock(),
		Priority:  priority,
	}
	s.index[task.ID] = len(s.tasks)
	s.tasks = append(s.tasks, task)
	s.mu.Unlock()

	s.logger.WithFields(log.Fields{"task": task.ID, "priority": task.Priority}).Debug("task created")
	s.publish(domain.TaskCreated, task)
	return task, nil
}

// Toggle flips the completion flag of the task with the given id. It returns
// false when no such task exists.
func (s *Store) Toggle(id string) (domain.Task, bool) {
	s.mu.Lock()
	i, ok := s.index[id]
	if !ok {
		s.mu.Unlock()
		s.logger.WithField("task", id).Debug("toggle for missing task ignored")
		return domain.Task{}, false
	}
	s.tasks[i].Done = !s.tasks[i].Done
	task := s.tasks[i]
	s.mu.Unlock()

	evType := domain.TaskReopened
	if task.Done {
		evType = domain.TaskCompleted
	}
	s.publish(evType, task)
	return task, true
}

// Delete removes the task with the given id. It returns false when no such
// task exists.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	i, ok := s.index[id]
	if !ok {
		s.mu.Unlock()
		s.logger.WithField("task", id).Debug("delete for missing task ignored")
		return false
	}
	task := s.tasks[i]
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.tasks); j++ {
		s.index[s.tasks[j].ID] = j
	}
	s.mu.Unlock()

	s.logger.WithField("task", id).Debug("task deleted")
	s.publish(domain.TaskDeleted, task)
	return true
}

// Get returns the task with the given id.
func (s *Store) Get(id string) (domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok {
		return domain.Task{}, false
	}
	return s.tasks[i], true
}

// Tasks returns a copy of all tasks in insertion order.
func (s *Store) Tasks() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Task(nil), s.tasks...)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Subscribe registers fn to receive an event after every successful
// mutation. The returned function removes the subscription.
func (s *Store) Subscribe(fn func(domain.Event)) func() {
	s.subMu.Lock()
	id := s.subSeq
	s.subSeq++
	s.subs[id] = fn
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
		})
	}
}

func (s *Store) publish(evType string, task domain.Task) {
	s.subMu.Lock()
	if len(s.subs) == 0 {
		s.subMu.Unlock()
		return
	}
	keys := make([]int, 0, len(s.subs))
	for k := range s.subs {
		keys = append(keys, k)
	}
	fns := make([]func(domain.Event), 0, len(keys))
	slices.Sort(keys)
	for _, k := range keys {
		fns = append(fns, s.subs[k])
	}
	s.subMu.Unlock()

	ev := domain.Event{
		ID:         newID(),
		EntityID:   task.ID,
		EntityType: domain.EntityTypeTask,
		Type:       evType,
		Task:       task,
		Time:       time.Now().UnixMilli(),
	}
	for _, fn := range fns {
		fn(ev)
	}
}
