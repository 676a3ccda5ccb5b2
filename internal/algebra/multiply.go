package algebra

// Multiply returns a*b, normalized.
func Multiply(a, b Expr) Expr {
	switch x := a.(type) {
	case Symbol:
		switch y := b.(type) {
		case Symbol:
			return Rationalize(&Product{num: []Expr{x, y}})
		case Constant:
			return Multiply(y, x)
		case *Product:
			return multiplyProduct(y, x)
		case *Sum:
			return distribute(y, x)
		}
	case Constant:
		switch y := b.(type) {
		case Symbol:
			if x.v == 1 {
				return y
			}
			if x.v == 0 {
				return zero
			}
			return Rationalize(&Product{num: []Expr{x, y}})
		case Constant:
			return Const(x.v * y.v)
		case *Product:
			if x.v == 1 {
				return y
			}
			if x.v == 0 {
				return zero
			}
			return multiplyProduct(y, x)
		case *Sum:
			if x.v == 1 {
				return y
			}
			if x.v == 0 {
				return zero
			}
			return distribute(y, x)
		}
	case *Product:
		switch y := b.(type) {
		case Symbol:
			return multiplyProduct(x, y)
		case Constant:
			return Multiply(y, x)
		case *Product:
			return multiplyProducts(x, y)
		case *Sum:
			return distribute(y, x)
		}
	case *Sum:
		switch y := b.(type) {
		case Symbol:
			return Multiply(y, x)
		case Constant:
			return Multiply(y, x)
		case *Product:
			return Multiply(y, x)
		case *Sum:
			return multiplySums(x, y)
		}
	}
	panic(badShapes("multiply", a, b))
}

// multiplyProduct appends a non-product factor x to p.
func multiplyProduct(p *Product, x Expr) Expr {
	rp, ok := Reduce(p).(*Product)
	if !ok {
		return Multiply(Reduce(p), x)
	}
	return Rationalize(&Product{
		num: concat(rp.num, []Expr{x}),
		den: rp.den,
	})
}

func multiplyProducts(p, q *Product) Expr {
	rp, okp := Reduce(p).(*Product)
	rq, okq := Reduce(q).(*Product)
	if !okp || !okq {
		return Multiply(Reduce(p), Reduce(q))
	}
	return Rationalize(&Product{
		num: concat(rp.num, rq.num),
		den: concat(rp.den, rq.den),
	})
}

// distribute multiplies x into every entry of s.
func distribute(s *Sum, x Expr) Expr {
	if s.IsEmpty() {
		return zero
	}
	out := &Sum{
		added:      make([]Expr, 0, len(s.added)),
		subtracted: make([]Expr, 0, len(s.subtracted)),
	}
	for _, e := range s.added {
		out.added = append(out.added, Multiply(x, e))
	}
	for _, e := range s.subtracted {
		out.subtracted = append(out.subtracted, Multiply(x, e))
	}
	return FoldSum(out)
}

func multiplySums(a, b *Sum) Expr {
	if a.IsEmpty() || b.IsEmpty() {
		return zero
	}
	var acc Expr = EmptySum()
	for _, e := range a.added {
		acc = Add(acc, distribute(b, e))
	}
	for _, e := range a.subtracted {
		acc = Subtract(acc, distribute(b, e))
	}
	return acc
}
