// Package algebra is a small rewriting engine for rational expressions over
// physical-quantity symbols and numeric constants.
//
// Expressions come in four shapes:
//
//   - [Symbol]: one physical quantity, allocated once by an [Arena]
//   - [Constant]: a real value
//   - [Product]: numerator factors over denominator factors
//   - [Sum]: added entries minus subtracted entries
//
// [Add], [Subtract], [Multiply] and [Divide] dispatch on the concrete pair of
// shapes and always return a normalized value: Products are rationalized
// (identical symbols cancelled across the fraction bar) and Sums are folded
// (constants merged, singletons unwrapped). Values are never mutated after
// they are returned.
//
// # Equality
//
// [Equal] compares Products and Sums as multisets, so a+b equals b+a without
// any canonical ordering. Symbols compare by handle: two symbols with the same
// name and labels are still distinct quantities.
//
// # Equations
//
//	eq := algebra.NewEquation(q1, algebra.Subtract(c1, i2))
//	solved, err := algebra.Solve(i2, eq)
//
// [Solve] makes a single pass moving target terms to the left side. It fails
// with [ErrSymbolInDenominator] when the target sits under a fraction bar.
//
// # Thread Safety
//
// Expression values are immutable and safe to share. [Arena] allocation is
// synchronized; builders are not and must stay on one goroutine.
package algebra
