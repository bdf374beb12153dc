package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"tasklist/board"
	"tasklist/domain"
)

type focus int

const (
	focusInput focus = iota
	focusList
)

const inputPlaceholder = "Add a task..."

// Model renders a Board and turns key presses into board intents.
type Model struct {
	board  *board.Board
	logger *log.Logger
	input  textinput.Model
	focus  focus
	cursor int
	status string
	width  int
}

// New builds the initial model with the add bar focused.
func New(b *board.Board, logger *log.Logger) Model {
	if logger == nil {
		logger = log.StandardLogger()
	}
	ti := textinput.New()
	ti.Placeholder = inputPlaceholder
	ti.CharLimit = 256
	ti.Width = 40
	ti.SetValue(b.Draft().Title())
	ti.Focus()

	return Model{
		board:  b,
		logger: logger,
		input:  ti,
		focus:  focusInput,
		status: "enter add • tab priority • esc list",
	}
}

// Run starts the terminal program and blocks until the user quits.
func Run(b *board.Board, logger *log.Logger) error {
	_, err := tea.NewProgram(New(b, logger), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if w := msg.Width - 24; w > 10 {
			m.input.Width = w
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		if m.focus == focusInput {
			m, cmd = m.updateInput(msg)
		} else {
			m, cmd = m.updateList(msg)
		}
		m.cursor = clampCursor(m.cursor, len(m.board.Visible()))
		return m, cmd
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.board.SetDraftTitle(m.input.Value())
		task, ok := m.board.Submit()
		if !ok {
			m.status = "Title cannot be empty"
			return m, nil
		}
		m.input.SetValue(m.board.Draft().Title())
		m.cursor = 0
		m.status = fmt.Sprintf("Added %q (%s)", task.Title, task.Priority)
		return m, nil
	case "tab":
		p := m.board.CycleDraftPriority()
		m.status = fmt.Sprintf("New tasks: %s priority", p)
		return m, nil
	case "esc", "down":
		m.focus = focusList
		m.input.Blur()
		m.status = "space toggle • d delete • f filter • i add • q quit"
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.board.SetDraftTitle(m.input.Value())
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (Model, tea.Cmd) {
	visible := m.board.Visible()
	switch key := msg.String(); key {
	case "q":
		return m, tea.Quit
	case "i", "a", "esc":
		m.focus = focusInput
		m.status = "enter add • tab priority • esc list"
		return m, m.input.Focus()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		m.cursor++
	case " ", "x":
		if len(visible) == 0 {
			return m, nil
		}
		task := visible[clampCursor(m.cursor, len(visible))]
		if m.board.Toggle(task.ID) {
			state := "open"
			if !task.Done {
				state = "done"
			}
			m.status = fmt.Sprintf("Marked %q %s", task.Title, state)
		}
	case "d", "delete", "backspace":
		if len(visible) == 0 {
			return m, nil
		}
		task := visible[clampCursor(m.cursor, len(visible))]
		if m.board.Delete(task.ID) {
			m.status = fmt.Sprintf("Deleted %q", task.Title)
		}
	case "f":
		f := m.board.CycleFilter()
		m.cursor = 0
		m.status = fmt.Sprintf("Showing %s", f)
	case "0", "1", "2", "3":
		f := domain.Filters[int(key[0]-'0')]
		if err := m.board.SelectFilter(f); err != nil {
			m.logger.WithError(err).Warn("select filter")
			return m, nil
		}
		m.cursor = 0
		m.status = fmt.Sprintf("Showing %s", f)
	}
	return m, nil
}

func clampCursor(cursor, length int) int {
	if length == 0 || cursor < 0 {
		return 0
	}
	if cursor >= length {
		return length - 1
	}
	return cursor
}
