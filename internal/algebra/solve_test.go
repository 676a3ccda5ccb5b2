package algebra_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bondsim/internal/algebra"
)

var _ = Describe("Solve", func() {
	var (
		arena      *algebra.Arena
		q1, c1, i2 algebra.Symbol
	)

	BeforeEach(func() {
		arena = algebra.NewArena()
		q1 = symbol(arena, "q", "1")
		c1 = symbol(arena, "C", "1")
		i2 = symbol(arena, "i", "2")
	})

	It("moves a subtracted target onto the left side", func() {
		eq := algebra.NewEquation(q1, algebra.NewSum([]algebra.Expr{c1}, []algebra.Expr{i2}))

		got, err := algebra.Solve(i2, eq)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Left).To(EqualExpr(algebra.NewSum([]algebra.Expr{q1, i2}, nil)))
		Expect(got.Right).To(EqualExpr(c1))
	})

	It("moves an added product term as a subtraction", func() {
		r := symbol(arena, "R", "1")
		rf := algebra.Multiply(r, i2)
		eq := algebra.NewEquation(q1, algebra.NewSum([]algebra.Expr{rf, c1}, nil))

		got, err := algebra.Solve(i2, eq)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Left).To(EqualExpr(algebra.Subtract(q1, rf)))
		Expect(got.Right).To(EqualExpr(c1))
	})

	It("makes a single pass without dividing out the coefficient", func() {
		twice := algebra.Multiply(algebra.Const(2), i2)
		eq := algebra.NewEquation(q1, algebra.NewSum([]algebra.Expr{i2, twice}, nil))

		got, err := algebra.Solve(i2, eq)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Left).To(EqualExpr(algebra.NewSum([]algebra.Expr{q1}, []algebra.Expr{i2, twice})))
		Expect(got.Right).To(Equal(algebra.Const(0)))
	})

	It("leaves a non-sum right side alone", func() {
		eq := algebra.NewEquation(q1, algebra.Multiply(c1, i2))

		got, err := algebra.Solve(i2, eq)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Equal(eq)).To(BeTrue())
	})

	Describe("denominator precondition", func() {
		It("fails when the target divides the right side", func() {
			eq := algebra.NewEquation(q1, mustDivide(c1, i2))

			got, err := algebra.Solve(i2, eq)
			Expect(err).To(MatchError(algebra.ErrSymbolInDenominator))
			Expect(got.Equal(eq)).To(BeTrue())

			var solveErr *algebra.SolveError
			Expect(errors.As(err, &solveErr)).To(BeTrue())
			Expect(solveErr.Target.Is(i2)).To(BeTrue())
		})

		It("fails when the target divides the left side", func() {
			eq := algebra.NewEquation(mustDivide(q1, i2), c1)

			_, err := algebra.Solve(i2, eq)
			Expect(err).To(MatchError(algebra.ErrSymbolInDenominator))
		})

		It("finds the target inside a sum in a denominator", func() {
			under := mustDivide(c1, algebra.Add(q1, i2))
			eq := algebra.NewEquation(q1, algebra.Add(c1, under))

			left, right := eq.Left, eq.Right
			_, err := algebra.Solve(i2, eq)
			Expect(err).To(MatchError(algebra.ErrSymbolInDenominator))
			Expect(eq.Left).To(EqualExpr(left))
			Expect(eq.Right).To(EqualExpr(right))
		})
	})
})

var _ = Describe("Scenarios", func() {
	var arena *algebra.Arena

	BeforeEach(func() {
		arena = algebra.NewArena()
	})

	It("adds two resistances on different connections", func() {
		r1 := symbol(arena, "R", "1")
		r2 := symbol(arena, "R", "2")

		sum := algebra.Add(r1, r2)
		Expect(sum).To(EqualExpr(algebra.NewSum([]algebra.Expr{r1, r2}, nil)))
		Expect(sum.String()).To(Equal("R₁ + R₂"))
	})

	It("cancels a resistance multiplied in and divided out", func() {
		c1 := symbol(arena, "C", "1")
		r2 := symbol(arena, "R", "2")

		Expect(mustDivide(algebra.Multiply(c1, r2), r2)).To(EqualExpr(c1))
	})
})
