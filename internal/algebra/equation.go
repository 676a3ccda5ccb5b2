package algebra

import "github.com/hashicorp/go-set/v3"

// Equation is Left = Right.
type Equation struct {
	Left  Expr
	Right Expr
}

func NewEquation(left, right Expr) Equation {
	return Equation{Left: left, Right: right}
}

func (e Equation) String() string {
	return render(e.Left, textStyle) + " = " + render(e.Right, textStyle)
}

func (e Equation) Markup() string {
	return render(e.Left, markupStyle) + " = " + render(e.Right, markupStyle)
}

// Equal compares both sides structurally.
func (e Equation) Equal(other Equation) bool {
	return Equal(e.Left, other.Left) && Equal(e.Right, other.Right)
}

// Mentions reports whether s occurs anywhere in the equation.
func (e Equation) Mentions(s Symbol) bool {
	return occurs(s, e.Left) || occurs(s, e.Right)
}

// Symbols lists the distinct symbols of the equation, left side first.
func (e Equation) Symbols() []Symbol {
	var out []Symbol
	seen := set.New[Symbol](0)
	collect(e.Left, seen, &out)
	collect(e.Right, seen, &out)
	return out
}

// Solve moves every right-hand term containing target onto the left side. It
// makes one pass and does not divide through by the target's coefficient, so
// the result may be only partially isolated. Solve fails without touching eq
// when target occurs in any denominator.
func Solve(target Symbol, eq Equation) (Equation, error) {
	if inDenominator(target, eq.Left) || inDenominator(target, eq.Right) {
		return eq, &SolveError{Target: target, Equation: eq, Wrapped: ErrSymbolInDenominator}
	}

	right, ok := eq.Right.(*Sum)
	if !ok {
		return eq, nil
	}

	left := eq.Left
	kept := &Sum{}
	for _, e := range right.added {
		if inNumerator(target, e) {
			left = Subtract(left, e)
			continue
		}
		kept.added = append(kept.added, e)
	}
	for _, e := range right.subtracted {
		if inNumerator(target, e) {
			left = Add(left, e)
			continue
		}
		kept.subtracted = append(kept.subtracted, e)
	}
	return Equation{Left: left, Right: FoldSum(kept)}, nil
}

// occurs reports whether s appears anywhere in e.
func occurs(s Symbol, e Expr) bool {
	switch x := e.(type) {
	case Symbol:
		return x.Is(s)
	case *Product:
		return anyOccurs(s, x.num) || anyOccurs(s, x.den)
	case *Sum:
		return anyOccurs(s, x.added) || anyOccurs(s, x.subtracted)
	}
	return false
}

func anyOccurs(s Symbol, list []Expr) bool {
	for _, e := range list {
		if occurs(s, e) {
			return true
		}
	}
	return false
}

// inNumerator reports whether s appears in the numerator portion of e.
func inNumerator(s Symbol, e Expr) bool {
	if p, ok := e.(*Product); ok {
		return anyOccurs(s, p.num)
	}
	return occurs(s, e)
}

// inDenominator reports whether s is reachable through any denominator
// position of e.
func inDenominator(s Symbol, e Expr) bool {
	switch x := e.(type) {
	case *Product:
		if anyOccurs(s, x.den) {
			return true
		}
		for _, n := range x.num {
			if inDenominator(s, n) {
				return true
			}
		}
	case *Sum:
		for _, n := range x.entries() {
			if inDenominator(s, n) {
				return true
			}
		}
	}
	return false
}

func collect(e Expr, seen *set.Set[Symbol], out *[]Symbol) {
	switch x := e.(type) {
	case Symbol:
		if seen.Insert(x) {
			*out = append(*out, x)
		}
	case *Product:
		for _, n := range x.num {
			collect(n, seen, out)
		}
		for _, d := range x.den {
			collect(d, seen, out)
		}
	case *Sum:
		for _, n := range x.entries() {
			collect(n, seen, out)
		}
	}
}
