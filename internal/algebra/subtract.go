package algebra

// Subtract returns a-b, normalized.
func Subtract(a, b Expr) Expr {
	switch x := a.(type) {
	case Symbol:
		switch y := b.(type) {
		case Symbol:
			if x.Is(y) {
				return zero
			}
			return difference(x, y)
		case Constant:
			if y.v == 0 {
				return x
			}
			return difference(x, y)
		case *Product:
			return difference(x, y)
		case *Sum:
			return Negate(subtractFromSum(y, x))
		}
	case Constant:
		switch y := b.(type) {
		case Symbol:
			if x.v == 0 {
				return Negate(y)
			}
			return difference(x, y)
		case Constant:
			return Const(x.v - y.v)
		case *Product:
			if x.v == 0 {
				return Negate(y)
			}
			return difference(x, y)
		case *Sum:
			return Negate(subtractFromSum(y, x))
		}
	case *Product:
		switch y := b.(type) {
		case Symbol:
			return difference(x, y)
		case Constant:
			if y.v == 0 {
				return x
			}
			return difference(x, y)
		case *Product:
			return difference(x, y)
		case *Sum:
			return Negate(subtractFromSum(y, x))
		}
	case *Sum:
		switch y := b.(type) {
		case Symbol:
			return subtractFromSum(x, y)
		case Constant:
			return subtractFromSum(x, y)
		case *Product:
			return subtractFromSum(x, y)
		case *Sum:
			return subtractSums(x, y)
		}
	}
	panic(badShapes("subtract", a, b))
}

// Negate returns -e.
func Negate(e Expr) Expr {
	switch x := e.(type) {
	case Constant:
		return Const(-x.v)
	case *Sum:
		if x.IsEmpty() {
			return x
		}
		return FoldSum(&Sum{added: x.subtracted, subtracted: x.added})
	}
	return FoldSum(&Sum{subtracted: []Expr{e}})
}

func difference(a, b Expr) Expr {
	return FoldSum(&Sum{added: []Expr{a}, subtracted: []Expr{b}})
}

func subtractFromSum(s *Sum, x Expr) Expr {
	if s.IsEmpty() {
		return Negate(x)
	}
	if isConst(x, 0) {
		return s
	}
	return FoldSum(&Sum{added: s.added, subtracted: concat(s.subtracted, []Expr{x})})
}

func subtractSums(a, b *Sum) Expr {
	if b.IsEmpty() {
		return a
	}
	if a.IsEmpty() {
		return Negate(b)
	}
	return FoldSum(&Sum{
		added:      concat(a.added, b.subtracted),
		subtracted: concat(a.subtracted, b.added),
	})
}
