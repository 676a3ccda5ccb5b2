package bondgraph

import (
	"context"
	"fmt"
	"sync"

	"github.com/san-kum/bondsim/internal/algebra"
)

// Solution is the outcome of solving a model for one target.
type Solution struct {
	Target  algebra.Symbol
	Derived []Derived
	Err     error
}

// SolveAll derives the model once and solves for each target concurrently.
// A failing target keeps its error in its Solution and does not stop the
// others. Results are in target order.
func (m *Model) SolveAll(ctx context.Context, targets []algebra.Symbol) ([]Solution, error) {
	derived, err := m.Derive()
	if err != nil {
		return nil, err
	}

	results := make([]Solution, len(targets))

	var wg sync.WaitGroup
	for i, target := range targets {
		wg.Add(1)
		go func(idx int, target algebra.Symbol) {
			defer wg.Done()

			results[idx].Target = target
			if err := ctx.Err(); err != nil {
				results[idx].Err = err
				return
			}
			results[idx].Derived, results[idx].Err = solveDerived(target, derived)
		}(i, target)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// solveDerived only reads the derived equations, so several targets can
// share one derivation.
func solveDerived(target algebra.Symbol, derived []Derived) ([]Derived, error) {
	var out []Derived
	for _, d := range derived {
		if !d.Equation.Mentions(target) {
			continue
		}
		eq, err := algebra.Solve(target, d.Equation)
		if err != nil {
			return nil, &ElementError{Element: d.Element, Wrapped: err}
		}
		out = append(out, Derived{Element: d.Element, Equation: eq})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSymbol, target)
	}
	return out, nil
}
