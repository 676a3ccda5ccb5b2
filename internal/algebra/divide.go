package algebra

// Divide returns a/b, normalized. It fails with ErrDivideByZero when b is the
// additive identity.
func Divide(a, b Expr) (Expr, error) {
	if isZero(b) {
		return nil, ErrDivideByZero
	}

	switch x := a.(type) {
	case Symbol:
		switch y := b.(type) {
		case Symbol:
			if x.Is(y) {
				return one, nil
			}
			return Rationalize(&Product{num: []Expr{x}, den: []Expr{y}}), nil
		case Constant:
			if y.v == 1 {
				return x, nil
			}
			return Rationalize(&Product{num: []Expr{x}, den: []Expr{y}}), nil
		case *Product:
			return divideByProduct(x, y)
		case *Sum:
			return divideBySum(x, y)
		}
	case Constant:
		switch y := b.(type) {
		case Symbol:
			if x.v == 0 {
				return zero, nil
			}
			return Rationalize(&Product{num: []Expr{x}, den: []Expr{y}}), nil
		case Constant:
			return Const(x.v / y.v), nil
		case *Product:
			if x.v == 0 {
				return zero, nil
			}
			return divideByProduct(x, y)
		case *Sum:
			if x.v == 0 {
				return zero, nil
			}
			return divideBySum(x, y)
		}
	case *Product:
		switch y := b.(type) {
		case Symbol:
			return divideProduct(x, y)
		case Constant:
			if y.v == 1 {
				return x, nil
			}
			return divideProduct(x, y)
		case *Product:
			return divideProducts(x, y)
		case *Sum:
			return divideBySum(x, y)
		}
	case *Sum:
		if x.IsEmpty() {
			return zero, nil
		}
		switch y := b.(type) {
		case Symbol:
			return spread(x, y)
		case Constant:
			if y.v == 1 {
				return x, nil
			}
			return spread(x, y)
		case *Product:
			return spread(x, y)
		case *Sum:
			if Equal(x, y) {
				return one, nil
			}
			return divideBySum(x, y)
		}
	}
	panic(badShapes("divide", a, b))
}

// divideByProduct puts x over q: q's denominator moves up, its numerator
// moves down.
func divideByProduct(x Expr, q *Product) (Expr, error) {
	rq, ok := Reduce(q).(*Product)
	if !ok {
		return Divide(x, Reduce(q))
	}
	return Rationalize(&Product{
		num: concat([]Expr{x}, rq.den),
		den: rq.num,
	}), nil
}

func divideProduct(p *Product, x Expr) (Expr, error) {
	rp, ok := Reduce(p).(*Product)
	if !ok {
		return Divide(Reduce(p), x)
	}
	return Rationalize(&Product{
		num: rp.num,
		den: concat(rp.den, []Expr{x}),
	}), nil
}

func divideProducts(p, q *Product) (Expr, error) {
	rp, okp := Reduce(p).(*Product)
	rq, okq := Reduce(q).(*Product)
	if !okp || !okq {
		return Divide(Reduce(p), Reduce(q))
	}
	return Rationalize(&Product{
		num: concat(rp.num, rq.den),
		den: concat(rp.den, rq.num),
	}), nil
}

// divideBySum rewrites s over a common denominator and inverts it. A Sum
// dividend is brought over its own common denominator first, so no fraction
// is left inside the result's numerator.
func divideBySum(x Expr, s *Sum) (Expr, error) {
	num, den := commonDenominator(s)
	if isZero(num) {
		return nil, ErrDivideByZero
	}
	var under []Expr
	if xs, ok := x.(*Sum); ok {
		x, under = commonDenominator(xs)
		if isZero(x) {
			return zero, nil
		}
	}
	return Rationalize(&Product{
		num: concat([]Expr{x}, den),
		den: concat([]Expr{num}, under),
	}), nil
}

// spread divides every entry of s by x.
func spread(s *Sum, x Expr) (Expr, error) {
	out := &Sum{
		added:      make([]Expr, 0, len(s.added)),
		subtracted: make([]Expr, 0, len(s.subtracted)),
	}
	for _, e := range s.added {
		q, err := Divide(e, x)
		if err != nil {
			return nil, err
		}
		out.added = append(out.added, q)
	}
	for _, e := range s.subtracted {
		q, err := Divide(e, x)
		if err != nil {
			return nil, err
		}
		out.subtracted = append(out.subtracted, q)
	}
	return FoldSum(out), nil
}
