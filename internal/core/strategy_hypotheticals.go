package core

import "errors"

// Hypotheticals resolves puzzles the cheap strategies alone cannot finish.
// For each unresolved cell and each trial kind (black first, then white, in
// row-major coordinate order for reproducibility), it clones the grid,
// applies the trial mark, and runs an inner Solver (configured without
// Hypotheticals, to bound recursion depth) to a fixed point:
//
//   - inner Contradiction: the real grid must take the opposite kind.
//   - inner solves to completion: the real grid takes the trial kind (sound
//     only under the assumption the puzzle has a unique solution).
//   - inner gets stuck with neither: try the next (coord, kind).
//
// At most one mark is applied per Apply call.
type Hypotheticals struct {
	inner *Solver
}

// NewHypotheticals configures the recursive sub-solve with the given inner
// strategy list — typically the cheap strategies (4.4.1-4.4.6), never
// including another Hypotheticals, so recursion is bounded to depth 2.
func NewHypotheticals(innerStrategies []Strategy) *Hypotheticals {
	return &Hypotheticals{inner: NewSolver(innerStrategies)}
}

func (*Hypotheticals) Name() string { return "Hypotheticals" }

func (h *Hypotheticals) Apply(g *Grid) (bool, error) {
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			coord := Coord{row, col}
			if _, _, ok := g.CellState(coord); ok {
				continue
			}

			for _, trial := range [2]State{Black(), White()} {
				clone := g.Clone()
				err := clone.MarkCell(coord, trial)
				if err == nil {
					err = h.inner.Solve(clone)
				}

				switch {
				case err == nil:
					// Inner solve completed: trial kind is forced (assumes a
					// unique solution; see the "trial solves" design note).
					if markErr := g.MarkCell(coord, trial); markErr != nil {
						return false, markErr
					}
					return true, nil
				case errors.Is(err, ErrContradiction):
					opposite := Black()
					if trial.Kind == KindBlack {
						opposite = White()
					}
					if markErr := g.MarkCell(coord, opposite); markErr != nil {
						return false, markErr
					}
					return true, nil
				case errors.Is(err, ErrNoStrategyApplies):
					// Inconclusive; try the next (coord, kind).
				default:
					return false, err
				}
			}
		}
	}

	return false, nil
}
