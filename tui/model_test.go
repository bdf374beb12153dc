package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus/hooks/test"

	"tasklist/board"
	"tasklist/domain"
	"tasklist/store"
)

func newTestModel(t *testing.T) (Model, *store.Store) {
	t.Helper()
	logger, _ := test.NewNullLogger()
	st := store.New(store.WithLogger(logger))
	return New(board.New(st, board.WithLogger(logger)), logger), st
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(Model)
	}
	return m, cmd
}

func TestTypingAndEnterAddsTask(t *testing.T) {
	m, st := newTestModel(t)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, runes("  Buy milk "), tea.KeyMsg{Type: tea.KeyEnter})

	tasks := st.Tasks()
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].Title != "Buy milk" || tasks[0].Priority != domain.PriorityLow {
		t.Fatalf("unexpected task: %+v", tasks[0])
	}
	if m.input.Value() != "" {
		t.Fatalf("input not cleared: %q", m.input.Value())
	}
	if m.board.Draft().Priority() != domain.PriorityLow {
		t.Fatalf("draft priority not kept: %s", m.board.Draft().Priority())
	}
}

func TestEnterOnBlankInputKeepsDraft(t *testing.T) {
	m, st := newTestModel(t)
	m, _ = press(t, m, runes("   "), tea.KeyMsg{Type: tea.KeyEnter})
	if st.Len() != 0 {
		t.Fatalf("blank input created a task")
	}
	if m.status != "Title cannot be empty" {
		t.Fatalf("unexpected status: %q", m.status)
	}
	if m.input.Value() != "   " {
		t.Fatalf("input changed on rejected submit: %q", m.input.Value())
	}
}

func TestListKeysToggleDeleteAndFilter(t *testing.T) {
	m, st := newTestModel(t)
	m, _ = press(t, m,
		runes("older"), tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab},
		runes("newer"), tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyEsc},
	)
	if m.focus != focusList {
		t.Fatalf("esc should focus the list")
	}
	if got := m.board.Visible(); len(got) != 2 || got[0].Title != "newer" {
		t.Fatalf("unexpected visible order: %+v", got)
	}

	// toggling the top row moves it below the open task
	m, _ = press(t, m, runes(" "))
	visible := m.board.Visible()
	if visible[0].Title != "older" || !visible[1].Done {
		t.Fatalf("unexpected order after toggle: %+v", visible)
	}

	m, _ = press(t, m, runes("2"))
	if m.board.Filter() != domain.FilterMedium {
		t.Fatalf("expected medium filter, got %s", m.board.Filter())
	}
	if got := m.board.Visible(); len(got) != 1 || got[0].Title != "older" {
		t.Fatalf("unexpected medium projection: %+v", got)
	}

	m, _ = press(t, m, runes("d"))
	if st.Len() != 1 {
		t.Fatalf("expected delete to leave 1 task, got %d", st.Len())
	}
	if !strings.Contains(m.View(), "No medium priority tasks.") {
		t.Fatalf("expected filtered empty message in view")
	}

	m, _ = press(t, m, runes("f"))
	if m.board.Filter() != domain.FilterLow {
		t.Fatalf("f should cycle to low, got %s", m.board.Filter())
	}
	if m.cursor != 0 {
		t.Fatalf("cursor not reset: %d", m.cursor)
	}
}

func TestCursorIsClamped(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = press(t, m, runes("only"), tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = press(t, m, runes("j"), runes("j"), runes("j"))
	if m.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", m.cursor)
	}
	m, _ = press(t, m, runes("k"))
	if m.cursor != 0 {
		t.Fatalf("cursor = %d after up, want 0", m.cursor)
	}
}

func TestEmptyViewShowsMessage(t *testing.T) {
	m, _ := newTestModel(t)
	if !strings.Contains(m.View(), board.EmptyBoardMessage) {
		t.Fatalf("expected empty-state message in view:\n%s", m.View())
	}
}

func TestQuitFromList(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	_, cmd := press(t, m, runes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestClampCursor(t *testing.T) {
	tests := []struct{ cursor, length, want int }{
		{cursor: 0, length: 0, want: 0},
		{cursor: -1, length: 3, want: 0},
		{cursor: 5, length: 3, want: 2},
		{cursor: 1, length: 3, want: 1},
	}
	for _, tt := range tests {
		if got := clampCursor(tt.cursor, tt.length); got != tt.want {
			t.Fatalf("clampCursor(%d, %d) = %d, want %d", tt.cursor, tt.length, got, tt.want)
		}
	}
}
