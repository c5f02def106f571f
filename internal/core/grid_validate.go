package core

import "fmt"

// ValidateComplete is the independent R1-R4 checker: it re-derives every
// rule directly from a finished Grid's region and cell state, without
// relying on any bookkeeping a Strategy or MarkCell may have skipped. It is
// the check a test (or a caller distrustful of how a grid was produced)
// should run against a "solved" grid, as opposed to DetectContradictions,
// which only catches invariant violations reachable incrementally during a
// solve.
func ValidateComplete(g *Grid) error {
	if !g.IsComplete() {
		return fmt.Errorf("core: grid is not complete")
	}

	blackRegions := 0
	for _, r := range g.Regions() {
		switch r.State.Kind {
		case KindNumbered:
			if len(r.Coords) != r.State.Clue {
				return fmt.Errorf("%w: island at %+v has %d cells, clue is %d", ErrContradiction, r.Coords[0], len(r.Coords), r.State.Clue)
			}
		case KindWhite:
			return fmt.Errorf("%w: white cells at %+v belong to no island", ErrContradiction, r.Coords[0])
		case KindBlack:
			blackRegions++
		}
	}
	if g.TotalBlackCells > 0 && blackRegions != 1 {
		return fmt.Errorf("%w: sea is split into %d disconnected regions, want 1", ErrContradiction, blackRegions)
	}

	for row := 1; row < g.Rows; row++ {
		for col := 1; col < g.Cols; col++ {
			allBlack := true
			for _, c := range [4]Coord{{row - 1, col - 1}, {row - 1, col}, {row, col - 1}, {row, col}} {
				state, _, ok := g.CellState(c)
				if !ok || state.Kind != KindBlack {
					allBlack = false
					break
				}
			}
			if allBlack {
				return fmt.Errorf("%w: 2x2 pool of black cells at %+v", ErrContradiction, Coord{row - 1, col - 1})
			}
		}
	}

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			coord := Coord{row, col}
			state, regionID, ok := g.CellState(coord)
			if !ok || state.Kind != KindNumbered {
				continue
			}
			for _, adj := range g.ValidNeighbors(coord) {
				adjState, adjRegionID, adjOk := g.CellState(adj)
				if adjOk && adjState.Kind == KindNumbered && adjRegionID != regionID {
					return fmt.Errorf("%w: distinct islands touch at %+v and %+v", ErrContradiction, coord, adj)
				}
			}
		}
	}

	return nil
}
