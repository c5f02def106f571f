package core

import "fmt"

// AvoidPools scans every 2x2 window for patterns that would, if left
// unresolved, allow an all-black "pool" (forbidden by R3):
//   - three black cells plus one unresolved cell: the unresolved cell must
//     be white, since completing the pool is illegal.
//   - two black cells plus two unresolved cells u1, u2: if u1 would be
//     unreachable assuming u2 were black, then u2 being black would force
//     u1 black too, completing the pool — so u2 must be white. Symmetrically
//     for u1.
type AvoidPools struct{}

func (AvoidPools) Name() string { return "AvoidPools" }

func (AvoidPools) Apply(g *Grid) (bool, error) {
	marks := NewMarkSet()

	for row := 1; row < g.Rows; row++ {
		for col := 1; col < g.Cols; col++ {
			window := [4]Coord{
				{row - 1, col - 1},
				{row - 1, col},
				{row, col - 1},
				{row, col},
			}

			var black, unresolved []Coord
			for _, c := range window {
				state, _, ok := g.CellState(c)
				switch {
				case ok && state.Kind == KindBlack:
					black = append(black, c)
				case !ok:
					unresolved = append(unresolved, c)
				}
			}

			switch {
			case len(black) == 4:
				return false, fmt.Errorf("%w: 2x2 pool of black cells at %+v", ErrContradiction, window[0])
			case len(black) == 3 && len(unresolved) == 1:
				marks.White(unresolved[0])
			case len(black) == 2 && len(unresolved) == 2:
				u1, u2 := unresolved[0], unresolved[1]
				if IsCellUnreachable(g, u1, []Coord{u2}) {
					marks.White(u2)
				}
				if IsCellUnreachable(g, u2, []Coord{u1}) {
					marks.White(u1)
				}
			}
		}
	}

	return marks.Apply(g)
}
