package algebra

import (
	"html"
	"strconv"
	"strings"
)

type style struct {
	sub   func(string) string
	sup   func(int) string
	dot   string
	times string
	name  func(string) string
}

var textStyle = style{
	sub:   subscript,
	sup:   superscript,
	dot:   "\u0307",
	times: "·",
	name:  func(s string) string { return s },
}

var markupStyle = style{
	sub:   func(s string) string { return "<sub>" + html.EscapeString(s) + "</sub>" },
	sup:   func(n int) string { return "<sup>" + strconv.Itoa(n) + "</sup>" },
	dot:   "&#775;",
	times: "&middot;",
	name:  html.EscapeString,
}

func (s Symbol) String() string { return render(s, textStyle) }
func (s Symbol) Markup() string { return render(s, markupStyle) }

func (c Constant) String() string { return render(c, textStyle) }
func (c Constant) Markup() string { return render(c, markupStyle) }

func (p *Product) String() string { return render(p, textStyle) }
func (p *Product) Markup() string { return render(p, markupStyle) }

func (s *Sum) String() string { return render(s, textStyle) }
func (s *Sum) Markup() string { return render(s, markupStyle) }

func render(e Expr, st style) string {
	switch x := e.(type) {
	case Symbol:
		return renderSymbol(x, st)
	case Constant:
		return strconv.FormatFloat(x.v, 'g', -1, 64)
	case *Product:
		return renderProduct(x, st)
	case *Sum:
		return renderSum(x, st)
	}
	return "?"
}

func renderSymbol(s Symbol, st style) string {
	if !s.Valid() {
		return "?"
	}
	spec := s.arena.spec(s.handle)
	var b strings.Builder
	b.WriteString(st.name(spec.Name))
	if spec.Differential {
		b.WriteString(st.dot)
	}
	if len(spec.Labels) > 0 {
		b.WriteString(st.sub(strings.Join(spec.Labels, ",")))
	}
	return b.String()
}

func renderProduct(p *Product, st style) string {
	num := renderFactors(p.num, st)
	if len(p.den) == 0 {
		return num
	}
	if num == "" {
		num = "1"
	}
	den := renderFactors(p.den, st)
	if len(p.den) > 1 {
		den = "(" + den + ")"
	}
	return num + "/" + den
}

// renderFactors keeps stored order; a symbol repeated in the list is written
// once, at its first position, with an exponent.
func renderFactors(list []Expr, st style) string {
	parts := make([]string, 0, len(list))
	seen := make([]bool, len(list))
	for i, e := range list {
		if seen[i] {
			continue
		}
		if s, ok := e.(Symbol); ok {
			n := 1
			for j := i + 1; j < len(list); j++ {
				if t, ok := list[j].(Symbol); ok && t.Is(s) {
					seen[j] = true
					n++
				}
			}
			part := render(s, st)
			if n > 1 {
				part += st.sup(n)
			}
			parts = append(parts, part)
			continue
		}
		part := render(e, st)
		switch e.(type) {
		case *Sum, *Product:
			part = "(" + part + ")"
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, st.times)
}

func renderSum(s *Sum, st style) string {
	if s.IsEmpty() {
		return "0"
	}
	var b strings.Builder
	for i, e := range s.added {
		if i > 0 {
			b.WriteString(" + ")
		}
		b.WriteString(renderTerm(e, st))
	}
	for i, e := range s.subtracted {
		if i == 0 && len(s.added) == 0 {
			b.WriteString("-")
		} else {
			b.WriteString(" - ")
		}
		b.WriteString(renderTerm(e, st))
	}
	return b.String()
}

func renderTerm(e Expr, st style) string {
	if _, ok := e.(*Sum); ok {
		return "(" + render(e, st) + ")"
	}
	return render(e, st)
}

var subscripts = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
	'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉',
	'+': '₊', '-': '₋', '=': '₌', '(': '₍', ')': '₎',
	'a': 'ₐ', 'e': 'ₑ', 'h': 'ₕ', 'i': 'ᵢ', 'j': 'ⱼ',
	'k': 'ₖ', 'l': 'ₗ', 'm': 'ₘ', 'n': 'ₙ', 'o': 'ₒ',
	'p': 'ₚ', 'r': 'ᵣ', 's': 'ₛ', 't': 'ₜ', 'u': 'ᵤ',
	'v': 'ᵥ', 'x': 'ₓ', ',': ',',
}

// subscript maps s to subscript runes, falling back to "_s" when any rune has
// no subscript form.
func subscript(s string) string {
	var b strings.Builder
	for _, r := range s {
		sr, ok := subscripts[r]
		if !ok {
			return "_" + s
		}
		b.WriteRune(sr)
	}
	return b.String()
}

var superscripts = []rune{'⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹'}

func superscript(n int) string {
	var b strings.Builder
	for _, r := range strconv.Itoa(n) {
		b.WriteRune(superscripts[r-'0'])
	}
	return b.String()
}
