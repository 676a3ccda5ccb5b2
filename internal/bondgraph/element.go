package bondgraph

import (
	"fmt"

	"github.com/san-kum/bondsim/internal/algebra"
)

type Kind string

const (
	KindEffortSource Kind = "Se"
	KindFlowSource   Kind = "Sf"
	KindResistor     Kind = "R"
	KindCapacitor    Kind = "C"
	KindInertia      Kind = "I"
	KindTransformer  Kind = "TF"
	KindGyrator      Kind = "GY"
	KindZeroJunction Kind = "0"
	KindOneJunction  Kind = "1"
)

// Element is one node of a bond graph.
type Element interface {
	Name() string
	Kind() Kind
	Bonds() []*Bond
	// Ports returns the allowed bond count; max < 0 means unbounded.
	Ports() (min, max int)
	Equations() ([]algebra.Equation, error)

	attach(b *Bond)
	bind(arena *algebra.Arena)
}

type base struct {
	name  string
	kind  Kind
	bonds []*Bond
}

func (b *base) Name() string       { return b.name }
func (b *base) Kind() Kind         { return b.kind }
func (b *base) attach(bond *Bond)  { b.bonds = append(b.bonds, bond) }
func (b *base) bind(*algebra.Arena) {}

func (b *base) Bonds() []*Bond {
	out := make([]*Bond, len(b.bonds))
	copy(out, b.bonds)
	return out
}

// OnePort is a source, resistor, capacitor or inertia. Its parameter symbol
// takes the label of its bond.
type OnePort struct {
	base
	paramName string
	param     algebra.Symbol
}

func newOnePort(kind Kind, name, param string) *OnePort {
	return &OnePort{base: base{name: name, kind: kind}, paramName: param}
}

func (o *OnePort) Ports() (int, int) { return 1, 1 }

// Parameter returns the element's parameter symbol; it is invalid until the
// owning model has been derived once.
func (o *OnePort) Parameter() algebra.Symbol { return o.param }

func (o *OnePort) bind(arena *algebra.Arena) {
	if o.param.Valid() || len(o.bonds) == 0 {
		return
	}
	o.param = arena.NewSymbol(algebra.SymbolSpec{
		Name:        o.paramName,
		Labels:      []string{o.bonds[0].ID},
		Independent: o.kind == KindEffortSource || o.kind == KindFlowSource,
	})
}

func (o *OnePort) Equations() ([]algebra.Equation, error) {
	b := o.bonds[0]
	switch o.kind {
	case KindEffortSource:
		return []algebra.Equation{algebra.NewEquation(b.Effort, o.param)}, nil
	case KindFlowSource:
		return []algebra.Equation{algebra.NewEquation(b.Flow, o.param)}, nil
	case KindResistor:
		return []algebra.Equation{algebra.NewEquation(b.Effort, algebra.Multiply(o.param, b.Flow))}, nil
	case KindCapacitor:
		e, err := algebra.Divide(b.Displacement, o.param)
		if err != nil {
			return nil, err
		}
		return []algebra.Equation{
			algebra.NewEquation(b.Effort, e),
			algebra.NewEquation(b.DisplacementRate, b.Flow),
		}, nil
	case KindInertia:
		f, err := algebra.Divide(b.Momentum, o.param)
		if err != nil {
			return nil, err
		}
		return []algebra.Equation{
			algebra.NewEquation(b.Flow, f),
			algebra.NewEquation(b.MomentumRate, b.Effort),
		}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownKind, o.kind)
}

// TwoPort is a transformer or gyrator between one inward and one outward
// bond. Its modulus carries both bond labels.
type TwoPort struct {
	base
	paramName string
	modulus   algebra.Symbol
}

func newTwoPort(kind Kind, name, param string) *TwoPort {
	return &TwoPort{base: base{name: name, kind: kind}, paramName: param}
}

func (t *TwoPort) Ports() (int, int) { return 2, 2 }

func (t *TwoPort) Modulus() algebra.Symbol { return t.modulus }

func (t *TwoPort) bind(arena *algebra.Arena) {
	if t.modulus.Valid() || len(t.bonds) != 2 {
		return
	}
	in, out, err := t.sides()
	if err != nil {
		return
	}
	t.modulus = arena.NewSymbol(algebra.SymbolSpec{
		Name:   t.paramName,
		Labels: []string{in.ID, out.ID},
	})
}

// sides returns the inward and outward bonds.
func (t *TwoPort) sides() (in, out *Bond, err error) {
	for _, b := range t.bonds {
		if b.Inward(t) {
			in = b
		} else {
			out = b
		}
	}
	if in == nil || out == nil {
		return nil, nil, fmt.Errorf("%w: %s needs one inward and one outward bond", ErrPortCount, t.kind)
	}
	return in, out, nil
}

func (t *TwoPort) Equations() ([]algebra.Equation, error) {
	in, out, err := t.sides()
	if err != nil {
		return nil, err
	}
	switch t.kind {
	case KindTransformer:
		return []algebra.Equation{
			algebra.NewEquation(in.Effort, algebra.Multiply(t.modulus, out.Effort)),
			algebra.NewEquation(out.Flow, algebra.Multiply(t.modulus, in.Flow)),
		}, nil
	case KindGyrator:
		return []algebra.Equation{
			algebra.NewEquation(in.Effort, algebra.Multiply(t.modulus, out.Flow)),
			algebra.NewEquation(out.Effort, algebra.Multiply(t.modulus, in.Flow)),
		}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownKind, t.kind)
}

// Junction shares one variable across all its bonds and balances the other.
// A 0-junction shares effort and balances flow; a 1-junction the reverse.
type Junction struct {
	base
}

func newJunction(kind Kind, name string) *Junction {
	return &Junction{base: base{name: name, kind: kind}}
}

func (j *Junction) Ports() (int, int) { return 2, -1 }

func (j *Junction) Equations() ([]algebra.Equation, error) {
	shared := func(b *Bond) algebra.Symbol { return b.Effort }
	balanced := func(b *Bond) algebra.Symbol { return b.Flow }
	if j.kind == KindOneJunction {
		shared, balanced = balanced, shared
	}

	first := j.bonds[0]
	eqs := make([]algebra.Equation, 0, len(j.bonds))
	for _, b := range j.bonds[1:] {
		eqs = append(eqs, algebra.NewEquation(shared(first), shared(b)))
	}
	return append(eqs, algebra.NewEquation(balanced(first), j.balance(balanced))), nil
}

// balance solves the signed power balance for the first bond's variable:
// inward bonds count positive.
func (j *Junction) balance(v func(*Bond) algebra.Symbol) algebra.Expr {
	first := j.bonds[0]
	var acc algebra.Expr = algebra.EmptySum()
	for _, b := range j.bonds[1:] {
		if b.Inward(j) != first.Inward(j) {
			acc = algebra.Add(acc, v(b))
		} else {
			acc = algebra.Subtract(acc, v(b))
		}
	}
	return acc
}
