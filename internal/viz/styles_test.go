package viz

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/san-kum/bondsim/internal/algebra"
	"github.com/san-kum/bondsim/internal/bondgraph"
)

func plainStyles() Styles {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return NewStylesWithRenderer(r, ThemeMinimal)
}

func derived(t *testing.T) []bondgraph.Derived {
	t.Helper()
	m := bondgraph.NewModel("rc")
	m.AddElement(bondgraph.KindEffortSource, "src")
	m.AddElement(bondgraph.KindCapacitor, "cap")
	if _, err := m.Connect("src", "cap", ""); err != nil {
		t.Fatal(err)
	}
	ds, err := m.Derive()
	if err != nil {
		t.Fatal(err)
	}
	return ds
}

func TestRenderEquations(t *testing.T) {
	out := RenderEquations(plainStyles(), "rc", derived(t), false)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d:\n%s", len(lines), out)
	}
	if lines[0] != "rc" {
		t.Errorf("unexpected title %q", lines[0])
	}
	if lines[2] != "  src  e₁ = E₁" {
		t.Errorf("unexpected line %q", lines[2])
	}
	if lines[3] != "  cap  e₁ = q₁/C₁" {
		t.Errorf("unexpected line %q", lines[3])
	}
	if !strings.HasPrefix(lines[4], "       ") {
		t.Errorf("expected repeated element label to be blank: %q", lines[4])
	}
}

func TestRenderEquationsMarkup(t *testing.T) {
	out := RenderEquations(plainStyles(), "rc", derived(t), true)
	if !strings.Contains(out, "e<sub>1</sub> = E<sub>1</sub>") {
		t.Errorf("expected markup output, got:\n%s", out)
	}
}

func TestRenderError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		prefix string
	}{
		{"plain", errors.New("no model"), "error: "},
		{"denominator", fmt.Errorf("cap: %w", algebra.ErrSymbolInDenominator), "cannot be solved: "},
		{"divide by zero", fmt.Errorf("cap: %w", algebra.ErrDivideByZero), "cannot be solved: "},
		{"unknown symbol", fmt.Errorf("x: %w", bondgraph.ErrUnknownSymbol), "error: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderError(plainStyles(), tt.err)
			if out != tt.prefix+tt.err.Error() {
				t.Errorf("got %q, want prefix %q", out, tt.prefix)
			}
		})
	}
}

func TestGetTheme(t *testing.T) {
	if GetTheme("ocean").Name != "ocean" {
		t.Error("expected ocean theme")
	}
	if GetTheme("nope").Name != "minimal" {
		t.Error("expected fallback to minimal")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names out of sync")
	}
}
