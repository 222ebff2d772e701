// Package tui is the live preview: type a line, see it uwu-ified, recall
// earlier lines with the arrow keys.
package tui

import (
	"strings"
	"time"

	"github.com/Utility-Gods/uwuify/internal/app"
	"github.com/Utility-Gods/uwuify/internal/db"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// historySize is how many entries stay on screen
const historySize = 10

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	inputStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	outputStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the bubbletea model for the live preview
type Model struct {
	app     *app.App
	store   *db.Store
	input   textinput.Model
	entries []db.Entry
	recall  int
	err     error
}

// New creates the preview model. store may be nil, in which case history is
// only kept in the model.
func New(a *app.App, store *db.Store) Model {
	ti := textinput.New()
	ti.Placeholder = "type something cute"
	ti.Prompt = "> "
	ti.Focus()

	m := Model{
		app:   a,
		store: store,
		input: ti,
	}

	// Pick up what earlier previews in this session left in the journal.
	if store != nil {
		entries, err := store.RecentEntries(historySize)
		if err != nil {
			m.err = err
		}
		m.entries = entries
		m.recall = len(entries)
	}
	return m
}

// Run starts the preview and blocks until the user quits
func Run(a *app.App, store *db.Store) error {
	_, err := tea.NewProgram(New(a, store)).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit(), nil
		case tea.KeyUp:
			return m.recallEntry(-1), nil
		case tea.KeyDown:
			return m.recallEntry(1), nil
		case tea.KeyTab:
			return m.cycleStyle(), nil
		case tea.KeyCtrlL:
			return m.clearHistory(), nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() Model {
	line := m.input.Value()
	style := m.app.Selected().Shortcut
	out := m.app.Transform(line)

	m.err = nil
	if m.store != nil {
		if _, err := m.store.AddEntry(style, line, out); err != nil {
			m.err = err
		}
	}

	m.entries = append(m.entries, db.Entry{Style: style, Input: line, Output: out, CreatedAt: time.Now()})
	if m.store != nil && m.err == nil {
		if entries, err := m.store.RecentEntries(historySize); err == nil {
			m.entries = entries
		}
	}
	if len(m.entries) > historySize {
		m.entries = m.entries[len(m.entries)-historySize:]
	}

	m.recall = len(m.entries)
	m.input.Reset()
	return m
}

// recallEntry walks the on-screen history. Moving past the newest entry
// clears the input.
func (m Model) recallEntry(delta int) Model {
	if len(m.entries) == 0 {
		return m
	}

	m.recall += delta
	if m.recall < 0 {
		m.recall = 0
	}
	if m.recall >= len(m.entries) {
		m.recall = len(m.entries)
		m.input.SetValue("")
		return m
	}

	m.input.SetValue(m.entries[m.recall].Input)
	m.input.CursorEnd()
	return m
}

// clearHistory empties the on-screen history and the journal behind it
func (m Model) clearHistory() Model {
	m.err = nil
	if m.store != nil {
		if err := m.store.Flush(); err != nil {
			m.err = err
			return m
		}
	}
	m.entries = nil
	m.recall = 0
	m.input.Reset()
	return m
}

func (m Model) cycleStyle() Model {
	styles := m.app.GetAvailableStyles()
	current := m.app.Selected().Shortcut
	for i, style := range styles {
		if style.Shortcut == current {
			next := styles[(i+1)%len(styles)]
			if err := m.app.Select(next.Shortcut); err != nil {
				m.err = err
			}
			break
		}
	}
	return m
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("uwuify"))
	b.WriteString(" ")
	b.WriteString(dimStyle.Render("style: " + m.app.Selected().Name))
	b.WriteString("\n\n")

	for _, e := range m.entries {
		b.WriteString(inputStyle.Render(e.Input))
		b.WriteString("\n")
		b.WriteString(outputStyle.Render(e.Output))
		b.WriteString("\n\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("journal: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render("enter: uwuify • ↑/↓: recall • tab: style • ctrl+l: clear • esc: quit"))
	return b.String()
}

// Entries returns the entries currently on screen, oldest first
func (m Model) Entries() []db.Entry {
	return m.entries
}

// Value returns the text in the input box
func (m Model) Value() string {
	return m.input.Value()
}
