package core

import "fmt"

// cheapStrategyByName builds the single named cheap (non-Hypotheticals)
// strategy, for callers that assemble their own pipeline order (e.g. a
// YAML-configured batch run) instead of using DefaultStrategies.
func cheapStrategyByName(name string) (Strategy, bool) {
	switch name {
	case "CompleteIslands":
		return CompleteIslands{}, true
	case "SingleLiberties":
		return SingleLiberties{}, true
	case "DualLiberties":
		return DualLiberties{}, true
	case "AvoidPools":
		return AvoidPools{}, true
	case "UnreachableCells":
		return UnreachableCells{}, true
	case "Confinement":
		return Confinement{}, true
	default:
		return nil, false
	}
}

// StrategiesByName resolves an ordered list of strategy names into
// Strategies, for configuration-driven callers outside this package.
// "Hypotheticals" resolves to a Hypotheticals recursing into every cheap
// strategy named earlier in the list (or all six, if none were named yet).
func StrategiesByName(names []string) ([]Strategy, error) {
	var cheapSoFar []Strategy
	var result []Strategy

	for _, name := range names {
		if name == "Hypotheticals" {
			base := cheapSoFar
			if len(base) == 0 {
				base = []Strategy{CompleteIslands{}, SingleLiberties{}, DualLiberties{}, AvoidPools{}, UnreachableCells{}, Confinement{}}
			}
			result = append(result, NewHypotheticals(base))
			continue
		}
		s, ok := cheapStrategyByName(name)
		if !ok {
			return nil, fmt.Errorf("core: unknown strategy %q", name)
		}
		cheapSoFar = append(cheapSoFar, s)
		result = append(result, s)
	}

	return result, nil
}
