package bondgraph

import "github.com/san-kum/bondsim/internal/algebra"

// Bond carries power from one element to another. It owns the symbols of
// its conjugate variables.
type Bond struct {
	ID   string
	From Element
	To   Element

	Effort       algebra.Symbol
	Flow         algebra.Symbol
	Displacement algebra.Symbol
	Momentum     algebra.Symbol
	// Rates of displacement and momentum.
	DisplacementRate algebra.Symbol
	MomentumRate     algebra.Symbol
}

func newBond(arena *algebra.Arena, id string, from, to Element) *Bond {
	labels := []string{id}
	return &Bond{
		ID:               id,
		From:             from,
		To:               to,
		Effort:           arena.NewSymbol(algebra.SymbolSpec{Name: "e", Labels: labels, Power: true}),
		Flow:             arena.NewSymbol(algebra.SymbolSpec{Name: "f", Labels: labels, Power: true}),
		Displacement:     arena.NewSymbol(algebra.SymbolSpec{Name: "q", Labels: labels, Energy: true}),
		Momentum:         arena.NewSymbol(algebra.SymbolSpec{Name: "p", Labels: labels, Energy: true}),
		DisplacementRate: arena.NewSymbol(algebra.SymbolSpec{Name: "q", Labels: labels, Differential: true}),
		MomentumRate:     arena.NewSymbol(algebra.SymbolSpec{Name: "p", Labels: labels, Differential: true}),
	}
}

// Inward reports whether b points into el.
func (b *Bond) Inward(el Element) bool {
	return b.To == el
}

// Symbols lists every symbol the bond owns.
func (b *Bond) Symbols() []algebra.Symbol {
	return []algebra.Symbol{b.Effort, b.Flow, b.Displacement, b.Momentum, b.DisplacementRate, b.MomentumRate}
}
