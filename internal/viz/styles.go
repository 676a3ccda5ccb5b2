package viz

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/bondsim/internal/algebra"
	"github.com/san-kum/bondsim/internal/bondgraph"
)

// Styles are the lipgloss styles derived from one theme.
type Styles struct {
	Title    lipgloss.Style
	Element  lipgloss.Style
	Equation lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Panel    lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return NewStylesWithRenderer(lipgloss.DefaultRenderer(), t)
}

// NewStylesWithRenderer builds styles bound to r, so callers can render for
// a writer other than stdout.
func NewStylesWithRenderer(r *lipgloss.Renderer, t Theme) Styles {
	return Styles{
		Title:    r.NewStyle().Bold(true).Foreground(t.Secondary),
		Element:  r.NewStyle().Foreground(t.Accent),
		Equation: r.NewStyle().Foreground(t.Text),
		Selected: r.NewStyle().Bold(true).Foreground(t.Primary),
		Muted:    r.NewStyle().Foreground(t.Muted),
		Success:  r.NewStyle().Bold(true).Foreground(t.Success),
		Error:    r.NewStyle().Bold(true).Foreground(t.Error),
		Panel: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
	}
}

// EquationText returns the plain or markup rendering of one equation.
func EquationText(d bondgraph.Derived, markup bool) string {
	if markup {
		return d.Equation.Markup()
	}
	return d.Equation.String()
}

// RenderEquations lists equations under a title, labelling each run of
// equations with the element that produced it.
func RenderEquations(s Styles, title string, derived []bondgraph.Derived, markup bool) string {
	width := 0
	for _, d := range derived {
		if n := lipgloss.Width(d.Element); n > width {
			width = n
		}
	}

	var b strings.Builder
	b.WriteString(s.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(Separator(s, 40))
	b.WriteString("\n")

	prev := ""
	for _, d := range derived {
		label := ""
		if d.Element != prev {
			label = d.Element
			prev = d.Element
		}
		pad := strings.Repeat(" ", width-lipgloss.Width(label))
		fmt.Fprintf(&b, "  %s%s  %s\n", s.Element.Render(label), pad, s.Equation.Render(EquationText(d, markup)))
	}
	return b.String()
}

// RenderError reports a failure. Algebraic dead ends read as an unsolvable
// equation; anything else is a plain error line.
func RenderError(s Styles, err error) string {
	prefix := "error: "
	if errors.Is(err, algebra.ErrSymbolInDenominator) || errors.Is(err, algebra.ErrDivideByZero) {
		prefix = "cannot be solved: "
	}
	return s.Error.Render(prefix) + s.Muted.Render(err.Error())
}

// Separator draws a muted divider.
func Separator(s Styles, width int) string {
	width = max(width, 8)
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return s.Muted.Render(left + " ◆ " + right)
}
