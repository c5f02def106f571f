package core

// UnreachableCells marks every unresolved cell black that IsCellUnreachable
// reports no numbered region could ever grow to include, given the marks
// already buffered by this same pass.
type UnreachableCells struct{}

func (UnreachableCells) Name() string { return "UnreachableCells" }

func (UnreachableCells) Apply(g *Grid) (bool, error) {
	marks := NewMarkSet()

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			coord := Coord{row, col}
			if _, _, ok := g.CellState(coord); ok {
				continue
			}
			assumeBlack := make([]Coord, 0, len(marks.black))
			for c := range marks.black {
				assumeBlack = append(assumeBlack, c)
			}
			if IsCellUnreachable(g, coord, assumeBlack) {
				marks.Black(coord)
			}
		}
	}

	return marks.Apply(g)
}
