package core

// Solver drives a Grid by invoking an ordered list of Strategies until the
// grid is complete, a Strategy reports a Contradiction, or a fixed point
// is reached with the grid still incomplete. The order is the priority:
// cheaper, more specific strategies should come first.
type Solver struct {
	strategies []Strategy
}

// NewSolver builds a Solver from an ordered strategy list.
func NewSolver(strategies []Strategy) *Solver {
	return &Solver{strategies: strategies}
}

// DefaultStrategies returns the seven strategies of spec.md §4.4 in their
// specified priority order, with Hypotheticals configured to recurse into
// the same cheap strategies minus itself (bounding recursion to depth 2).
func DefaultStrategies() []Strategy {
	cheap := []Strategy{
		CompleteIslands{},
		SingleLiberties{},
		DualLiberties{},
		AvoidPools{},
		UnreachableCells{},
		Confinement{},
	}
	full := append(append([]Strategy(nil), cheap...), NewHypotheticals(cheap))
	return full
}

// Solve runs the default strategy pipeline against g with a silent logger.
func Solve(g *Grid) error {
	return NewSolver(DefaultStrategies()).Solve(g)
}

// Solve runs s's strategies against g until completion or the first error,
// logging nothing.
func (s *Solver) Solve(g *Grid) error {
	return s.SolveWithLogger(g, NoopLogger{})
}

// SolveWithLogger is Solve, but reports before/after progress through
// logger.
func (s *Solver) SolveWithLogger(g *Grid, logger Logger) error {
	for !g.IsComplete() {
		logger.BeforeApply(g)

		applied := false
		for _, strategy := range s.strategies {
			ok, err := strategy.Apply(g)
			if err != nil {
				return err
			}
			if ok {
				applied = true
				logger.StrategyApplied(strategy.Name())
				break
			}
		}

		if !applied {
			logger.NoStrategyApplies()
			if err := g.DetectContradictions(); err != nil {
				return err
			}
			return ErrNoStrategyApplies
		}
	}

	return g.DetectContradictions()
}
