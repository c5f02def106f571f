package core

// Confinement has two parts, both buffered then applied atomically:
//
// (a) for each unresolved cell c and each region r: if r would be confined
// (unable to reach its required size) assuming c is forbidden territory,
// then c must take r's kind instead — r needs it to grow.
//
// (b) for each incomplete numbered region r and each liberty c of r: if
// assuming r claims c (plus c's unresolved neighbors, plus the liberties
// of any white region adjacent to c) would confine some *other* numbered
// region, then r cannot extend through c — c must be black.
type Confinement struct{}

func (Confinement) Name() string { return "Confinement" }

func (Confinement) Apply(g *Grid) (bool, error) {
	marks := NewMarkSet()

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			coord := Coord{row, col}
			if _, _, ok := g.CellState(coord); ok {
				continue
			}
			for _, r := range g.Regions() {
				confined, err := IsRegionConfined(g, r.ID, []Coord{coord})
				if err != nil {
					return false, err
				}
				if !confined {
					continue
				}
				if r.State.Kind == KindBlack {
					marks.Black(coord)
				} else {
					marks.White(coord)
				}
			}
		}
	}

	for _, r := range g.Regions() {
		if r.State.Kind != KindNumbered || !g.isRegionIncomplete(r) {
			continue
		}
		for _, c := range r.Unknowns {
			assumeVisited := []Coord{c}
			assumeVisited = append(assumeVisited, g.ValidUnknownNeighbors(c)...)

			for _, adj := range g.ValidNeighbors(c) {
				state, regionID, ok := g.CellState(adj)
				if !ok || state.Kind != KindWhite {
					continue
				}
				assumeVisited = append(assumeVisited, g.Region(regionID).Unknowns...)
			}

			for _, other := range g.Regions() {
				if other.ID == r.ID || other.State.Kind != KindNumbered {
					continue
				}
				confined, err := IsRegionConfined(g, other.ID, assumeVisited)
				if err != nil {
					return false, err
				}
				if confined {
					marks.Black(c)
				}
			}
		}
	}

	return marks.Apply(g)
}
