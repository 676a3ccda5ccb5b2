package algebra_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bondsim/internal/algebra"
)

var _ = Describe("Arithmetic", func() {
	var (
		arena   *algebra.Arena
		x, y, z algebra.Symbol
		shapes  map[string]algebra.Expr
	)

	BeforeEach(func() {
		arena = algebra.NewArena()
		x = symbol(arena, "x")
		y = symbol(arena, "y")
		z = symbol(arena, "z")
		shapes = map[string]algebra.Expr{
			"symbol":   x,
			"constant": algebra.Const(3),
			"product":  mustDivide(y, z),
			"sum":      algebra.Subtract(algebra.Add(x, z), y),
		}
	})

	names := []string{"symbol", "constant", "product", "sum"}

	Describe("commutativity", func() {
		for _, a := range names {
			for _, b := range names {
				a, b := a, b
				It("adds "+a+" and "+b+" in either order", func() {
					Expect(algebra.Add(shapes[a], shapes[b])).To(EqualExpr(algebra.Add(shapes[b], shapes[a])))
				})
				It("multiplies "+a+" and "+b+" in either order", func() {
					Expect(algebra.Multiply(shapes[a], shapes[b])).To(EqualExpr(algebra.Multiply(shapes[b], shapes[a])))
				})
			}
		}
	})

	Describe("antisymmetry", func() {
		for _, a := range names {
			for _, b := range names {
				a, b := a, b
				It("subtracts "+b+" from "+a+" as the negated reverse", func() {
					Expect(algebra.Subtract(shapes[a], shapes[b])).To(EqualExpr(algebra.Negate(algebra.Subtract(shapes[b], shapes[a]))))
				})
				It("divides "+a+" by "+b+" into a flat fraction", func() {
					q, err := algebra.Divide(shapes[a], shapes[b])
					Expect(err).NotTo(HaveOccurred())
					if p, ok := q.(*algebra.Product); ok {
						for _, f := range append(p.Numerator(), p.Denominator()...) {
							Expect(f).NotTo(BeAssignableToTypeOf(&algebra.Product{}))
						}
					}
				})
			}
		}

		It("subtracts a sum from a product", func() {
			want := algebra.NewSum([]algebra.Expr{y, shapes["product"]}, []algebra.Expr{x, z})
			Expect(algebra.Subtract(shapes["product"], shapes["sum"])).To(EqualExpr(want))
		})

		It("divides a product by a sum", func() {
			want, err := algebra.NewProduct([]algebra.Expr{y}, []algebra.Expr{z, shapes["sum"]})
			Expect(err).NotTo(HaveOccurred())
			Expect(mustDivide(shapes["product"], shapes["sum"])).To(EqualExpr(want))
		})

		It("divides a sum by a product", func() {
			xz, err := algebra.NewProduct([]algebra.Expr{x, z}, []algebra.Expr{y})
			Expect(err).NotTo(HaveOccurred())
			zz, err := algebra.NewProduct([]algebra.Expr{z, z}, []algebra.Expr{y})
			Expect(err).NotTo(HaveOccurred())
			want := algebra.NewSum([]algebra.Expr{xz, zz}, []algebra.Expr{z})
			Expect(mustDivide(shapes["sum"], shapes["product"])).To(EqualExpr(want))
		})

		It("brings a fractional dividend sum over its denominator", func() {
			dividend := algebra.Add(x, mustDivide(y, z))
			divisor := algebra.Add(mustDivide(x, z), y)
			want, err := algebra.NewProduct(
				[]algebra.Expr{algebra.Add(algebra.Multiply(x, z), y)},
				[]algebra.Expr{algebra.Add(x, algebra.Multiply(y, z))},
			)
			Expect(err).NotTo(HaveOccurred())

			got := mustDivide(dividend, divisor)
			Expect(got).To(EqualExpr(want))
			Expect(got.String()).To(Equal("(x·z + y)/(x + y·z)"))
		})
	})

	Describe("identities", func() {
		for _, name := range names {
			name := name
			It("leaves "+name+" unchanged when multiplied by one", func() {
				Expect(algebra.Multiply(shapes[name], algebra.Const(1))).To(EqualExpr(shapes[name]))
				Expect(algebra.Multiply(algebra.Const(1), shapes[name])).To(EqualExpr(shapes[name]))
			})
			It("leaves "+name+" unchanged when the empty sum is added", func() {
				Expect(algebra.Add(shapes[name], algebra.EmptySum())).To(EqualExpr(shapes[name]))
				Expect(algebra.Add(algebra.EmptySum(), shapes[name])).To(EqualExpr(shapes[name]))
			})
			It("leaves "+name+" unchanged when divided by one", func() {
				Expect(mustDivide(shapes[name], algebra.Const(1))).To(EqualExpr(shapes[name]))
			})
			It("yields zero when "+name+" is multiplied by the empty sum", func() {
				Expect(algebra.Multiply(shapes[name], algebra.EmptySum())).To(Equal(algebra.Const(0)))
			})
		}

		It("divides a symbol by itself to one", func() {
			Expect(mustDivide(x, x)).To(Equal(algebra.Const(1)))
		})

		It("subtracts a symbol from itself to zero", func() {
			Expect(algebra.Subtract(x, x)).To(Equal(algebra.Const(0)))
		})

		It("does not cancel distinct symbols sharing a name", func() {
			other := symbol(arena, "x")
			q := mustDivide(x, other)
			Expect(q).To(BeAssignableToTypeOf(&algebra.Product{}))
			Expect(q.String()).To(Equal("x/x"))
		})
	})

	Describe("cancellation", func() {
		It("restores the numerator after dividing and multiplying", func() {
			Expect(algebra.Multiply(mustDivide(x, y), y)).To(EqualExpr(x))
			Expect(algebra.Multiply(y, mustDivide(x, y))).To(EqualExpr(x))
		})

		It("flattens a product of fractions", func() {
			w := symbol(arena, "w")
			got := algebra.Multiply(mustDivide(x, y), mustDivide(z, w))
			p, ok := got.(*algebra.Product)
			Expect(ok).To(BeTrue())
			Expect(p.Numerator()).To(HaveLen(2))
			Expect(p.Denominator()).To(HaveLen(2))
		})

		It("flattens a fraction of fractions", func() {
			w := symbol(arena, "w")
			got := mustDivide(mustDivide(x, y), mustDivide(z, w))
			want, err := algebra.NewProduct([]algebra.Expr{x, w}, []algebra.Expr{y, z})
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(EqualExpr(want))
			for _, d := range got.(*algebra.Product).Denominator() {
				Expect(d).To(BeAssignableToTypeOf(x))
			}
		})

		It("cancels one matched pair at a time", func() {
			xx := algebra.Multiply(x, x)
			Expect(mustDivide(xx, x)).To(EqualExpr(x))
		})
	})

	Describe("distribution", func() {
		var a, b, c algebra.Symbol
		var s algebra.Expr

		BeforeEach(func() {
			a = symbol(arena, "a")
			b = symbol(arena, "b")
			c = symbol(arena, "c")
			s = algebra.NewSum([]algebra.Expr{a, b}, []algebra.Expr{c})
		})

		for _, factor := range []string{"symbol", "constant"} {
			factor := factor
			It("distributes a "+factor+" over every entry", func() {
				f := shapes[factor]
				want := algebra.NewSum(
					[]algebra.Expr{algebra.Multiply(f, a), algebra.Multiply(f, b)},
					[]algebra.Expr{algebra.Multiply(f, c)},
				)
				Expect(algebra.Multiply(f, s)).To(EqualExpr(want))
				Expect(algebra.Multiply(s, f)).To(EqualExpr(want))
			})
		}

		It("divides every entry of a sum by a symbol", func() {
			want := algebra.NewSum(
				[]algebra.Expr{mustDivide(a, x), mustDivide(b, x)},
				[]algebra.Expr{mustDivide(c, x)},
			)
			Expect(mustDivide(s, x)).To(EqualExpr(want))
		})

		It("multiplies two sums term by term", func() {
			got := algebra.Multiply(algebra.Add(a, b), algebra.Subtract(x, y))
			want := algebra.NewSum(
				[]algebra.Expr{algebra.Multiply(a, x), algebra.Multiply(b, x)},
				[]algebra.Expr{algebra.Multiply(a, y), algebra.Multiply(b, y)},
			)
			Expect(got).To(EqualExpr(want))
		})
	})

	Describe("sums", func() {
		It("concatenates two sums", func() {
			got := algebra.Add(algebra.Subtract(x, y), algebra.Subtract(z, x))
			Expect(got).To(EqualExpr(algebra.Subtract(z, y)))
		})

		It("swaps the second operand's signs when subtracting sums", func() {
			got := algebra.Subtract(algebra.Add(x, y), algebra.Subtract(z, y))
			want := algebra.NewSum([]algebra.Expr{x, y, y}, []algebra.Expr{z})
			Expect(got).To(EqualExpr(want))
		})

		It("negates when a sum is subtracted from a symbol", func() {
			got := algebra.Subtract(x, algebra.Add(y, z))
			Expect(got).To(EqualExpr(algebra.NewSum([]algebra.Expr{x}, []algebra.Expr{y, z})))
		})

		It("merges constants into one", func() {
			got := algebra.Add(algebra.Add(x, algebra.Const(2)), algebra.Const(3))
			Expect(got).To(EqualExpr(algebra.NewSum([]algebra.Expr{x, algebra.Const(5)}, nil)))
		})
	})

	Describe("common denominator", func() {
		It("round trips a sum of fractions", func() {
			a, b, c, d, e, f := symbol(arena, "a"), symbol(arena, "b"), symbol(arena, "c"),
				symbol(arena, "d"), symbol(arena, "e"), symbol(arena, "f")
			s := algebra.NewSum(
				[]algebra.Expr{mustDivide(a, b), mustDivide(c, d)},
				[]algebra.Expr{mustDivide(e, f)},
			).(*algebra.Sum)

			cd := algebra.CommonDenominator(s)
			Expect(cd.Numerator()).To(HaveLen(1))
			Expect(cd.Numerator()[0]).To(BeAssignableToTypeOf(&algebra.Sum{}))
			Expect(cd.Denominator()).To(HaveLen(3))

			back := mustDivide(cd.Numerator()[0], cd.DenominatorExpr())
			Expect(back).To(EqualExpr(s))
		})

		It("divides by a sum through its common denominator", func() {
			got := mustDivide(x, algebra.Add(mustDivide(y, z), algebra.Const(1)))
			want, err := algebra.NewProduct([]algebra.Expr{x, z}, []algebra.Expr{algebra.Add(y, z)})
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(EqualExpr(want))
		})
	})

	Describe("divide by zero", func() {
		It("fails for the empty sum", func() {
			_, err := algebra.Divide(algebra.Const(5), algebra.EmptySum())
			Expect(err).To(MatchError(algebra.ErrDivideByZero))
		})

		It("fails for every dividend shape", func() {
			for _, name := range names {
				_, err := algebra.Divide(shapes[name], algebra.EmptySum())
				Expect(err).To(MatchError(algebra.ErrDivideByZero), name)
			}
		})

		It("fails for a zero constant", func() {
			_, err := algebra.Divide(x, algebra.Const(0))
			Expect(err).To(MatchError(algebra.ErrDivideByZero))
		})

		It("fails for a builder with a zero divisor", func() {
			b := &algebra.ProductBuilder{}
			_, err := b.Mul(x).Div(algebra.EmptySum()).Build()
			Expect(err).To(MatchError(algebra.ErrDivideByZero))
		})

		It("yields zero for a builder with an empty sum factor", func() {
			p, err := algebra.NewProduct([]algebra.Expr{algebra.EmptySum(), x}, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(p).To(Equal(algebra.Const(0)))
			Expect(algebra.Equal(p, algebra.Const(0))).To(BeTrue())

			b := &algebra.ProductBuilder{}
			p, err = b.Mul(y).Mul(algebra.EmptySum()).Div(z).Build()
			Expect(err).NotTo(HaveOccurred())
			Expect(p).To(Equal(algebra.Const(0)))
		})

		It("yields zero when the empty sum is divided", func() {
			Expect(mustDivide(algebra.EmptySum(), x)).To(Equal(algebra.Const(0)))
		})
	})

	Describe("equality", func() {
		It("ignores entry order", func() {
			Expect(algebra.Add(x, y)).To(EqualExpr(algebra.Add(y, x)))
			Expect(algebra.Multiply(x, y)).To(EqualExpr(algebra.Multiply(y, x)))
		})

		It("does not reuse a matched entry", func() {
			xx := algebra.NewSum([]algebra.Expr{x, x}, nil)
			xy := algebra.NewSum([]algebra.Expr{x, y}, nil)
			Expect(algebra.Equal(xx, xy)).To(BeFalse())
			Expect(algebra.Equal(xy, xx)).To(BeFalse())
		})

		It("compares constants by value", func() {
			Expect(algebra.Equal(algebra.Const(2), algebra.Const(2))).To(BeTrue())
			Expect(algebra.Equal(algebra.Const(2), x)).To(BeFalse())
		})

		It("treats the empty sum as zero", func() {
			Expect(algebra.Equal(algebra.EmptySum(), algebra.Const(0))).To(BeTrue())
		})
	})
})
