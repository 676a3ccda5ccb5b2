package algebra

import "fmt"

// Add returns a+b, normalized.
func Add(a, b Expr) Expr {
	switch x := a.(type) {
	case Symbol:
		switch y := b.(type) {
		case Symbol:
			return pair(x, y)
		case Constant:
			if y.v == 0 {
				return x
			}
			return pair(x, y)
		case *Product:
			return pair(x, y)
		case *Sum:
			return addToSum(y, x)
		}
	case Constant:
		switch y := b.(type) {
		case Symbol:
			return Add(y, x)
		case Constant:
			return Const(x.v + y.v)
		case *Product:
			return Add(y, x)
		case *Sum:
			return addToSum(y, x)
		}
	case *Product:
		switch y := b.(type) {
		case Symbol:
			return Add(y, x)
		case Constant:
			if y.v == 0 {
				return x
			}
			return pair(x, y)
		case *Product:
			return pair(x, y)
		case *Sum:
			return addToSum(y, x)
		}
	case *Sum:
		switch y := b.(type) {
		case Symbol:
			return addToSum(x, y)
		case Constant:
			return addToSum(x, y)
		case *Product:
			return addToSum(x, y)
		case *Sum:
			return addSums(x, y)
		}
	}
	panic(badShapes("add", a, b))
}

func pair(a, b Expr) Expr {
	return FoldSum(&Sum{added: []Expr{a, b}})
}

func addToSum(s *Sum, x Expr) Expr {
	if s.IsEmpty() {
		return x
	}
	if isConst(x, 0) {
		return s
	}
	return FoldSum(&Sum{added: concat(s.added, []Expr{x}), subtracted: s.subtracted})
}

func addSums(a, b *Sum) Expr {
	if b.IsEmpty() {
		return a
	}
	if a.IsEmpty() {
		return b
	}
	return FoldSum(&Sum{
		added:      concat(a.added, b.added),
		subtracted: concat(a.subtracted, b.subtracted),
	})
}

func badShapes(op string, a, b Expr) string {
	return fmt.Sprintf("algebra: %s of unsupported operands %T and %T", op, a, b)
}
