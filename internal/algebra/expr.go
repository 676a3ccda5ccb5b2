package algebra

// Expr is one of Symbol, Constant, *Product or *Sum.
type Expr interface {
	String() string
	Markup() string
	isExpr()
}

// Constant is a real-valued leaf.
type Constant struct {
	v float64
}

func Const(v float64) Constant { return Constant{v: v} }

func (Constant) isExpr() {}

func (c Constant) Value() float64 { return c.v }

var (
	zero = Const(0)
	one  = Const(1)
)

// Product is the product of num over the product of den. No den entry is a
// Product with its own denominator.
type Product struct {
	num []Expr
	den []Expr
}

func (*Product) isExpr() {}

// Numerator returns a copy of the numerator factors.
func (p *Product) Numerator() []Expr { return cloneList(p.num) }

// Denominator returns a copy of the denominator factors.
func (p *Product) Denominator() []Expr { return cloneList(p.den) }

// NumeratorExpr returns the numerator factors as one expression.
func (p *Product) NumeratorExpr() Expr {
	return Reduce(&Product{num: cloneList(p.num)})
}

// DenominatorExpr returns the denominator factors as one expression, or
// Constant(1) when there are none.
func (p *Product) DenominatorExpr() Expr {
	return Reduce(&Product{num: cloneList(p.den)})
}

// Sum is added entries minus subtracted entries. A Sum with no entries is the
// additive identity.
type Sum struct {
	added      []Expr
	subtracted []Expr
}

func (*Sum) isExpr() {}

// EmptySum returns the additive identity as a Sum.
func EmptySum() *Sum { return &Sum{} }

func (s *Sum) Added() []Expr      { return cloneList(s.added) }
func (s *Sum) Subtracted() []Expr { return cloneList(s.subtracted) }

// IsEmpty reports whether s has no entries at all.
func (s *Sum) IsEmpty() bool { return len(s.added) == 0 && len(s.subtracted) == 0 }

// entries returns added and subtracted entries as one list.
func (s *Sum) entries() []Expr {
	out := make([]Expr, 0, len(s.added)+len(s.subtracted))
	out = append(out, s.added...)
	return append(out, s.subtracted...)
}

func cloneList(xs []Expr) []Expr {
	if len(xs) == 0 {
		return nil
	}
	out := make([]Expr, len(xs))
	copy(out, xs)
	return out
}

func concat(lists ...[]Expr) []Expr {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	out := make([]Expr, 0, n)
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

func isConst(e Expr, v float64) bool {
	c, ok := e.(Constant)
	return ok && c.v == v
}

// isZero reports whether e is the additive identity in either of its forms.
func isZero(e Expr) bool {
	if s, ok := e.(*Sum); ok {
		return s.IsEmpty()
	}
	return isConst(e, 0)
}
