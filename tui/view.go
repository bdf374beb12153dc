package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tasklist/domain"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F5F1E8")).
			Background(lipgloss.Color("#0B1B3B")).Padding(0, 1)
	inputStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#2A3A66")).Padding(0, 1)
	buttonStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0B1B3B")).
			Background(lipgloss.Color("#EADBC0")).Padding(0, 2)
	buttonDisabledStyle = buttonStyle.Foreground(lipgloss.Color("#3B4A75")).
				Background(lipgloss.Color("#CFC7B8"))
	chipStyle         = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#8A8F9C"))
	chipSelectedStyle = chipStyle.Bold(true).Foreground(lipgloss.Color("#0B1B3B")).
				Background(lipgloss.Color("#EADBC0"))
	doneTitleStyle = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	cursorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#EADBC0")).Bold(true)
	checkDoneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#659977"))
	emptyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#BBBBBB")).Italic(true).Padding(1, 2)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8A8F9C"))

	priorityColors = map[domain.Priority]lipgloss.Color{
		domain.PriorityHigh:   lipgloss.Color("#E5484D"),
		domain.PriorityMedium: lipgloss.Color("#F5A524"),
		domain.PriorityLow:    lipgloss.Color("#46A758"),
	}
)

func priorityBadge(p domain.Priority) string {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0B1B3B")).
		Background(priorityColors[p]).Padding(0, 1).Render(string(p))
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Tasks"))
	b.WriteString("\n\n")
	b.WriteString(m.addBar())
	b.WriteString("\n")
	b.WriteString(m.filterChips())
	b.WriteString("\n\n")
	b.WriteString(m.list())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m Model) addBar() string {
	draft := m.board.Draft()
	button := buttonStyle.Render("Add")
	if m.board.SubmitDisabled() {
		button = buttonDisabledStyle.Render("Add")
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		priorityBadge(draft.Priority()), " ",
		inputStyle.Render(m.input.View()), " ",
		button,
	)
}

func (m Model) filterChips() string {
	current := m.board.Filter()
	chips := make([]string, 0, len(domain.Filters))
	for i, f := range domain.Filters {
		label := fmt.Sprintf("%d %s", i, f)
		if f == current {
			chips = append(chips, chipSelectedStyle.Render(label))
			continue
		}
		chips = append(chips, chipStyle.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

func (m Model) list() string {
	if msg := m.board.EmptyMessage(); msg != "" {
		return emptyStyle.Render(msg)
	}
	visible := m.board.Visible()
	rows := make([]string, 0, len(visible))
	for i, t := range visible {
		marker := "  "
		if m.focus == focusList && i == m.cursor {
			marker = cursorStyle.Render("> ")
		}
		check := "[ ]"
		title := t.Title
		if t.Done {
			check = checkDoneStyle.Render("[x]")
			title = doneTitleStyle.Render(title)
		}
		rows = append(rows, fmt.Sprintf("%s%s %s %s", marker, check, title, priorityBadge(t.Priority)))
	}
	return strings.Join(rows, "\n")
}

func (m Model) statusLine() string {
	c := m.board.Counts()
	counts := fmt.Sprintf("%d open • %d done", c.Open, c.Done)
	return statusStyle.Render(counts + " │ " + m.status)
}
