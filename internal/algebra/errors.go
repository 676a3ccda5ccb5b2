package algebra

import (
	"errors"
	"fmt"
)

// Domain errors for expression arithmetic and solving.
var (
	// ErrDivideByZero indicates a divisor that is the additive identity.
	ErrDivideByZero = errors.New("algebra: divide by zero")

	// ErrSymbolInDenominator indicates a solve target under a fraction bar.
	ErrSymbolInDenominator = errors.New("algebra: symbol in denominator")

	// ErrForeignSymbol indicates a symbol handle not owned by the arena.
	ErrForeignSymbol = errors.New("algebra: symbol not allocated by this arena")
)

// SolveError wraps a solve failure with the target and the untouched equation.
type SolveError struct {
	Target   Symbol
	Equation Equation
	Wrapped  error
}

func (e *SolveError) Error() string {
	return fmt.Sprintf("solve for %s in %s: %v", e.Target, e.Equation, e.Wrapped)
}

func (e *SolveError) Unwrap() error {
	return e.Wrapped
}
