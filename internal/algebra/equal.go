package algebra

// Equal reports structural equality. Symbols compare by identity, constants by
// value, and products and sums as multisets of their entries. The empty Sum
// and Constant(0) are the same value.
func Equal(a, b Expr) bool {
	if isZero(a) && isZero(b) {
		return true
	}
	switch x := a.(type) {
	case Symbol:
		y, ok := b.(Symbol)
		return ok && x.Is(y)
	case Constant:
		y, ok := b.(Constant)
		return ok && x.v == y.v
	case *Product:
		y, ok := b.(*Product)
		return ok && sameMultiset(x.num, y.num) && sameMultiset(x.den, y.den)
	case *Sum:
		y, ok := b.(*Sum)
		return ok && sameMultiset(x.added, y.added) && sameMultiset(x.subtracted, y.subtracted)
	}
	return false
}

// sameMultiset matches every entry of xs against a distinct, unused entry of ys.
func sameMultiset(xs, ys []Expr) bool {
	if len(xs) != len(ys) {
		return false
	}
	used := make([]bool, len(ys))
	for _, x := range xs {
		found := false
		for j, y := range ys {
			if used[j] || !Equal(x, y) {
				continue
			}
			used[j] = true
			found = true
			break
		}
		if !found {
			return false
		}
	}
	return true
}
