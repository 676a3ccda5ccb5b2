package algebra

import (
	"fmt"
	"sync"
)

// Handle addresses one symbol inside an Arena.
type Handle uint32

// SymbolSpec describes a quantity when it is allocated.
type SymbolSpec struct {
	Name   string
	Labels []string // one connection label, or two for a modulus

	Power        bool
	Energy       bool
	Independent  bool
	Differential bool
}

type symbolInfo struct {
	spec SymbolSpec
}

// Arena owns every symbol of one model. Symbols from different arenas are
// never equal.
type Arena struct {
	mu      sync.RWMutex
	symbols []symbolInfo
}

func NewArena() *Arena {
	return &Arena{symbols: make([]symbolInfo, 0, 32)}
}

// NewSymbol allocates a fresh quantity. Call it exactly once per quantity and
// reuse the returned value for every reference.
func (a *Arena) NewSymbol(spec SymbolSpec) Symbol {
	labels := make([]string, len(spec.Labels))
	copy(labels, spec.Labels)
	spec.Labels = labels

	a.mu.Lock()
	defer a.mu.Unlock()
	a.symbols = append(a.symbols, symbolInfo{spec: spec})
	return Symbol{handle: Handle(len(a.symbols) - 1), arena: a}
}

func (a *Arena) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.symbols)
}

// Symbol returns the symbol previously allocated under h.
func (a *Arena) Symbol(h Handle) (Symbol, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if int(h) >= len(a.symbols) {
		return Symbol{}, fmt.Errorf("handle %d: %w", h, ErrForeignSymbol)
	}
	return Symbol{handle: h, arena: a}, nil
}

// Lookup finds the first symbol with the given name and labels.
func (a *Arena) Lookup(name string, labels ...string) (Symbol, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for i, info := range a.symbols {
		if info.spec.Name != name || len(info.spec.Labels) != len(labels) {
			continue
		}
		match := true
		for j := range labels {
			if info.spec.Labels[j] != labels[j] {
				match = false
				break
			}
		}
		if match {
			return Symbol{handle: Handle(i), arena: a}, true
		}
	}
	return Symbol{}, false
}

// Symbols lists every allocated symbol in allocation order.
func (a *Arena) Symbols() []Symbol {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]Symbol, len(a.symbols))
	for i := range a.symbols {
		out[i] = Symbol{handle: Handle(i), arena: a}
	}
	return out
}

func (a *Arena) spec(h Handle) SymbolSpec {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.symbols[h].spec
}

// Symbol is a borrowed reference to one arena-owned quantity.
type Symbol struct {
	handle Handle
	arena  *Arena
}

func (Symbol) isExpr() {}

func (s Symbol) Handle() Handle { return s.handle }

// Valid reports whether s was allocated by an arena.
func (s Symbol) Valid() bool { return s.arena != nil }

// Is reports identity: same arena, same handle.
func (s Symbol) Is(other Symbol) bool {
	return s.arena == other.arena && s.handle == other.handle
}

func (s Symbol) Name() string { return s.arena.spec(s.handle).Name }

func (s Symbol) Labels() []string {
	labels := s.arena.spec(s.handle).Labels
	out := make([]string, len(labels))
	copy(out, labels)
	return out
}

func (s Symbol) IsPowerVariable() bool  { return s.arena.spec(s.handle).Power }
func (s Symbol) IsEnergyVariable() bool { return s.arena.spec(s.handle).Energy }
func (s Symbol) IsIndependent() bool    { return s.arena.spec(s.handle).Independent }
func (s Symbol) IsDifferential() bool   { return s.arena.spec(s.handle).Differential }
