package bondgraph

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/san-kum/bondsim/internal/algebra"
)

// Derived is one governing equation and the element that produced it.
type Derived struct {
	Element  string
	Equation algebra.Equation
}

// Model is a bond graph. It owns the symbol arena of all its quantities. A
// Model is not safe for concurrent use.
type Model struct {
	Name string

	registry *Registry
	arena    *algebra.Arena
	elements []Element
	byName   map[string]Element
	bonds    []*Bond
}

func NewModel(name string) *Model {
	return NewModelWithRegistry(name, DefaultRegistry)
}

func NewModelWithRegistry(name string, r *Registry) *Model {
	return &Model{
		Name:     name,
		registry: r,
		arena:    algebra.NewArena(),
		byName:   make(map[string]Element),
	}
}

func (m *Model) Arena() *algebra.Arena { return m.arena }

func (m *Model) AddElement(kind Kind, name string) (Element, error) {
	if _, ok := m.byName[name]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateElement, name)
	}
	el, err := m.registry.New(kind, name)
	if err != nil {
		return nil, err
	}
	m.elements = append(m.elements, el)
	m.byName[name] = el
	return el, nil
}

func (m *Model) Element(name string) (Element, bool) {
	el, ok := m.byName[name]
	return el, ok
}

func (m *Model) Elements() []Element {
	out := make([]Element, len(m.elements))
	copy(out, m.elements)
	return out
}

func (m *Model) Bonds() []*Bond {
	out := make([]*Bond, len(m.bonds))
	copy(out, m.bonds)
	return out
}

// Connect adds a bond pointing from one element to another. An empty id
// numbers the bond by position, starting at 1.
func (m *Model) Connect(from, to, id string) (*Bond, error) {
	src, ok := m.byName[from]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownElement, from)
	}
	dst, ok := m.byName[to]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownElement, to)
	}
	if id == "" {
		id = strconv.Itoa(len(m.bonds) + 1)
	}
	for _, b := range m.bonds {
		if b.ID == id {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateBond, id)
		}
	}

	b := newBond(m.arena, id, src, dst)
	src.attach(b)
	dst.attach(b)
	m.bonds = append(m.bonds, b)
	return b, nil
}

// Validate checks every element's bond count.
func (m *Model) Validate() error {
	var errs []error
	for _, el := range m.elements {
		n := len(el.Bonds())
		min, max := el.Ports()
		if n < min || (max >= 0 && n > max) {
			errs = append(errs, &ElementError{
				Element: el.Name(),
				Wrapped: fmt.Errorf("%w: %s has %d", ErrPortCount, el.Kind(), n),
			})
		}
	}
	return errors.Join(errs...)
}

// Derive generates every element's governing equations in element order.
func (m *Model) Derive() ([]Derived, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	for _, el := range m.elements {
		el.bind(m.arena)
	}

	var out []Derived
	for _, el := range m.elements {
		eqs, err := el.Equations()
		if err != nil {
			return nil, &ElementError{Element: el.Name(), Wrapped: err}
		}
		for _, eq := range eqs {
			out = append(out, Derived{Element: el.Name(), Equation: eq})
		}
	}
	return out, nil
}

// SolveFor derives the model and solves every equation that mentions target.
// The first failure aborts the whole attempt.
func (m *Model) SolveFor(target algebra.Symbol) ([]Derived, error) {
	derived, err := m.Derive()
	if err != nil {
		return nil, err
	}
	return solveDerived(target, derived)
}

// Symbol resolves a reference of the form "name" or "name:label[,label]".
// A leading "d" on q or p names the rate, as in "dq:2". Parameters are
// allocated on first derivation, so the model is bound before the lookup.
func (m *Model) Symbol(ref string) (algebra.Symbol, error) {
	if err := m.Validate(); err == nil {
		for _, el := range m.elements {
			el.bind(m.arena)
		}
	}

	name, labels := ParseSymbolRef(ref)
	if name == "dq" || name == "dp" {
		for _, s := range m.arena.Symbols() {
			if s.IsDifferential() && s.Name() == name[1:] && slices.Equal(s.Labels(), labels) {
				return s, nil
			}
		}
		return algebra.Symbol{}, fmt.Errorf("%w: %s", ErrUnknownSymbol, ref)
	}

	s, ok := m.arena.Lookup(name, labels...)
	if !ok {
		return algebra.Symbol{}, fmt.Errorf("%w: %s", ErrUnknownSymbol, ref)
	}
	return s, nil
}

// ParseSymbolRef splits "n:1,2" into the name and its labels.
func ParseSymbolRef(ref string) (string, []string) {
	name, rest, found := strings.Cut(ref, ":")
	if !found || rest == "" {
		return name, nil
	}
	return name, strings.Split(rest, ",")
}
