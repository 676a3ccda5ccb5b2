package algebra

// ProductBuilder accumulates factors. Build normalizes them into an immutable
// expression and resets the builder. A builder must not be shared between
// goroutines.
type ProductBuilder struct {
	num []Expr
	den []Expr
}

func (b *ProductBuilder) Mul(e Expr) *ProductBuilder {
	b.num = append(b.num, e)
	return b
}

func (b *ProductBuilder) Div(e Expr) *ProductBuilder {
	b.den = append(b.den, e)
	return b
}

func (b *ProductBuilder) Build() (Expr, error) {
	num, den := b.num, b.den
	b.num, b.den = nil, nil
	for _, d := range den {
		if isZero(d) {
			return nil, ErrDivideByZero
		}
	}
	return Rationalize(&Product{num: num, den: den}), nil
}

// SumBuilder accumulates signed entries. Build folds them into an immutable
// expression and resets the builder.
type SumBuilder struct {
	added      []Expr
	subtracted []Expr
}

func (b *SumBuilder) Add(e Expr) *SumBuilder {
	b.added = append(b.added, e)
	return b
}

func (b *SumBuilder) Sub(e Expr) *SumBuilder {
	b.subtracted = append(b.subtracted, e)
	return b
}

func (b *SumBuilder) Build() Expr {
	s := &Sum{added: b.added, subtracted: b.subtracted}
	b.added, b.subtracted = nil, nil
	return FoldSum(s)
}

// NewProduct builds num over den.
func NewProduct(num, den []Expr) (Expr, error) {
	b := &ProductBuilder{num: cloneList(num), den: cloneList(den)}
	return b.Build()
}

// NewSum builds the sum of added minus the sum of subtracted.
func NewSum(added, subtracted []Expr) Expr {
	b := &SumBuilder{added: cloneList(added), subtracted: cloneList(subtracted)}
	return b.Build()
}
