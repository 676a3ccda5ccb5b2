package algebra

// Reduce unwraps a degenerate product: no factors is Constant(1), a single
// numerator factor is that factor. Anything else is returned unchanged.
func Reduce(p *Product) Expr {
	switch {
	case len(p.num) == 0 && len(p.den) == 0:
		return one
	case len(p.num) == 1 && len(p.den) == 0:
		return p.num[0]
	}
	return p
}

// Rationalize flattens nested fractions, cancels symbols that appear in both
// the numerator and the denominator one pair at a time, and reduces.
func Rationalize(p *Product) Expr {
	num := make([]Expr, 0, len(p.num))
	den := make([]Expr, 0, len(p.den))
	for _, e := range p.num {
		num, den = splice(num, den, e)
	}
	for _, e := range p.den {
		den, num = splice(den, num, e)
	}

	for _, e := range num {
		if isZero(e) {
			return zero
		}
	}

	for i := 0; i < len(num); {
		if cancelSymbol(num[i], den) {
			j := indexSymbol(den, num[i].(Symbol))
			num = append(num[:i], num[i+1:]...)
			den = append(den[:j], den[j+1:]...)
			continue
		}
		i++
	}

	return Reduce(&Product{num: num, den: den})
}

// splice appends e to upper, moving the factors of a nested product onto the
// matching side of the fraction bar.
func splice(upper, lower []Expr, e Expr) ([]Expr, []Expr) {
	p, ok := e.(*Product)
	if !ok {
		return append(upper, e), lower
	}
	for _, n := range p.num {
		upper, lower = splice(upper, lower, n)
	}
	for _, d := range p.den {
		lower, upper = splice(lower, upper, d)
	}
	return upper, lower
}

func cancelSymbol(e Expr, den []Expr) bool {
	s, ok := e.(Symbol)
	return ok && indexSymbol(den, s) >= 0
}

func indexSymbol(list []Expr, s Symbol) int {
	for i, e := range list {
		if t, ok := e.(Symbol); ok && t.Is(s) {
			return i
		}
	}
	return -1
}

// FoldSum canonicalizes a freshly assembled sum. Nested sums are spliced in,
// entries equal on both sides cancel, constants merge into one, and empty or
// single-entry sums collapse.
func FoldSum(s *Sum) Expr {
	added := make([]Expr, 0, len(s.added))
	subtracted := make([]Expr, 0, len(s.subtracted))
	for _, e := range s.added {
		added, subtracted = spliceSum(added, subtracted, e)
	}
	for _, e := range s.subtracted {
		subtracted, added = spliceSum(subtracted, added, e)
	}

	total := 0.0
	added, total = dropConstants(added, total, 1)
	subtracted, total = dropConstants(subtracted, total, -1)

	for i := 0; i < len(added); {
		j := indexEqual(subtracted, added[i])
		if j >= 0 {
			added = append(added[:i], added[i+1:]...)
			subtracted = append(subtracted[:j], subtracted[j+1:]...)
			continue
		}
		i++
	}

	if len(added) == 0 && len(subtracted) == 0 {
		return Const(total)
	}
	switch {
	case total > 0:
		added = append(added, Const(total))
	case total < 0:
		subtracted = append(subtracted, Const(-total))
	}
	if len(added) == 1 && len(subtracted) == 0 {
		return added[0]
	}
	return &Sum{added: added, subtracted: subtracted}
}

func spliceSum(same, opposite []Expr, e Expr) ([]Expr, []Expr) {
	s, ok := e.(*Sum)
	if !ok {
		return append(same, e), opposite
	}
	for _, a := range s.added {
		same, opposite = spliceSum(same, opposite, a)
	}
	for _, b := range s.subtracted {
		opposite, same = spliceSum(opposite, same, b)
	}
	return same, opposite
}

func dropConstants(list []Expr, total, sign float64) ([]Expr, float64) {
	out := list[:0]
	for _, e := range list {
		if c, ok := e.(Constant); ok {
			total += sign * c.v
			continue
		}
		out = append(out, e)
	}
	return out, total
}

func indexEqual(list []Expr, e Expr) int {
	for i, x := range list {
		if Equal(x, e) {
			return i
		}
	}
	return -1
}

// CommonDenominator rewrites s as a single fraction. The denominator is every
// entry's denominator concatenated; each entry's numerator is multiplied by
// the denominators of all the other entries. The numerator is always a Sum.
func CommonDenominator(s *Sum) *Product {
	num, den := commonDenominator(s)
	ns, ok := num.(*Sum)
	if !ok {
		ns = &Sum{}
		if !isZero(num) {
			ns.added = []Expr{num}
		}
	}
	return &Product{num: []Expr{ns}, den: den}
}

type fraction struct {
	num      Expr
	den      []Expr
	negative bool
}

func commonDenominator(s *Sum) (Expr, []Expr) {
	parts := make([]fraction, 0, len(s.added)+len(s.subtracted))
	for _, e := range s.added {
		parts = append(parts, asFraction(e, false))
	}
	for _, e := range s.subtracted {
		parts = append(parts, asFraction(e, true))
	}

	var den []Expr
	for _, f := range parts {
		den = append(den, f.den...)
	}

	b := &SumBuilder{}
	for i, f := range parts {
		term := f.num
		for j, other := range parts {
			if i == j {
				continue
			}
			for _, d := range other.den {
				term = Multiply(term, d)
			}
		}
		if f.negative {
			b.Sub(term)
		} else {
			b.Add(term)
		}
	}
	return b.Build(), den
}

func asFraction(e Expr, negative bool) fraction {
	if p, ok := e.(*Product); ok {
		return fraction{
			num:      Reduce(&Product{num: cloneList(p.num)}),
			den:      cloneList(p.den),
			negative: negative,
		}
	}
	return fraction{num: e, negative: negative}
}
