package tui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/bondsim/internal/algebra"
	"github.com/san-kum/bondsim/internal/bondgraph"
	"github.com/san-kum/bondsim/internal/viz"
)

type model struct {
	title   string
	derived []bondgraph.Derived
	styles  viz.Styles
	markup  bool

	cursor  int
	target  int
	symbols []algebra.Symbol

	result *algebra.Equation
	err    error

	width  int
	height int
}

func newModel(title string, derived []bondgraph.Derived, styles viz.Styles) model {
	m := model{
		title:   title,
		derived: derived,
		styles:  styles,
		width:   80,
		height:  24,
	}
	m.selectEquation(0)
	return m
}

// Run opens the browser over the derived equations of one model.
func Run(title string, derived []bondgraph.Derived, styles viz.Styles) error {
	if len(derived) == 0 {
		return errors.New("no equations to browse")
	}
	_, err := tea.NewProgram(newModel(title, derived, styles), tea.WithAltScreen()).Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.selectEquation(m.cursor - 1)
		}
	case "down", "j":
		if m.cursor < len(m.derived)-1 {
			m.selectEquation(m.cursor + 1)
		}
	case "tab", "right", "l":
		if len(m.symbols) > 0 {
			m.target = (m.target + 1) % len(m.symbols)
			m.clearResult()
		}
	case "shift+tab", "left", "h":
		if len(m.symbols) > 0 {
			m.target = (m.target + len(m.symbols) - 1) % len(m.symbols)
			m.clearResult()
		}
	case "m":
		m.markup = !m.markup
	case "enter", " ":
		m.solve()
	}
	return m, nil
}

func (m *model) selectEquation(i int) {
	m.cursor = i
	m.target = 0
	m.symbols = m.derived[i].Equation.Symbols()
	m.clearResult()
}

func (m *model) clearResult() {
	m.result = nil
	m.err = nil
}

func (m *model) solve() {
	m.clearResult()
	if len(m.symbols) == 0 {
		return
	}
	eq, err := algebra.Solve(m.symbols[m.target], m.derived[m.cursor].Equation)
	if err != nil {
		m.err = err
		return
	}
	m.result = &eq
}

func (m model) View() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.Title.Render(m.title))
	b.WriteString("\n")
	b.WriteString(viz.Separator(s, min(m.width, 60)))
	b.WriteString("\n\n")

	for i, d := range m.derived {
		text := viz.EquationText(d, m.markup)
		if i == m.cursor {
			b.WriteString(s.Selected.Render("▸ " + text))
		} else {
			b.WriteString("  " + s.Equation.Render(text))
		}
		b.WriteString("  " + s.Muted.Render(d.Element))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.Panel.Render(m.solvePanel()))
	b.WriteString("\n")
	b.WriteString(s.Muted.Render("↑↓ equation  ←→ target  enter solve  m markup  q quit"))
	return b.String()
}

func (m model) solvePanel() string {
	s := m.styles
	if len(m.symbols) == 0 {
		return s.Muted.Render("no symbols")
	}

	names := make([]string, len(m.symbols))
	for i, sym := range m.symbols {
		if i == m.target {
			names[i] = s.Selected.Render("[" + sym.String() + "]")
		} else {
			names[i] = s.Muted.Render(sym.String())
		}
	}
	lines := []string{"solve for " + strings.Join(names, " ")}

	switch {
	case m.err != nil:
		lines = append(lines, viz.RenderError(s, m.err))
	case m.result != nil:
		text := m.result.String()
		if m.markup {
			text = m.result.Markup()
		}
		lines = append(lines, s.Success.Render(text))
	}
	return strings.Join(lines, "\n")
}
