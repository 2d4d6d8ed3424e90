// Package picker provides a terminal single-select list used for the
// enumerated configuration prompts.
package picker

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	spinerrors "github.com/spinup-cli/spinup/internal/errors"
)

// Option is one selectable entry in the list.
type Option struct {
	// Value is returned when the option is selected.
	Value string

	// Hint is a short description rendered next to the value.
	Hint string
}

// Model is the bubbletea model for the single-select list.
type Model struct {
	title    string
	options  []Option
	cursor   int
	width    int
	quitting bool

	choice    string
	cancelled bool

	styles Styles
}

// New creates a picker model. When def matches an option value the cursor
// starts on it.
func New(title string, options []Option, def string) Model {
	m := Model{
		title:   title,
		options: options,
		styles:  DefaultStyles(),
	}
	for i, opt := range options {
		if opt.Value == def {
			m.cursor = i
			break
		}
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			m.cancelled = true
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "j":
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}
			return m, nil

		case "enter":
			if len(m.options) == 0 {
				return m, nil
			}
			m.quitting = true
			m.choice = m.options[m.cursor].Value
			return m, tea.Quit
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(" ")
	b.WriteString(m.styles.Title.Render(m.title))
	b.WriteString("\n\n")

	for i, opt := range m.options {
		if i == m.cursor {
			b.WriteString(m.styles.Cursor.Render(" > "))
			b.WriteString(m.styles.Selected.Render(opt.Value))
		} else {
			b.WriteString("   ")
			b.WriteString(m.styles.Option.Render(opt.Value))
		}
		if opt.Hint != "" {
			b.WriteString(m.styles.Hint.Render("  " + opt.Hint))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(" up/down navigate  enter select  q cancel"))
	b.WriteString("\n")

	return b.String()
}

// Choice returns the selected value. Call after the model has quit.
// ok is false when the user cancelled.
func (m Model) Choice() (value string, ok bool) {
	return m.choice, !m.cancelled && m.choice != ""
}

// Run executes the picker and returns the selected value.
// Cancelling the picker returns ErrCancelled.
func Run(title string, options []Option, def string) (string, error) {
	p := tea.NewProgram(New(title, options, def))
	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}
	choice, ok := finalModel.(Model).Choice()
	if !ok {
		return "", spinerrors.ErrCancelled
	}
	return choice, nil
}
