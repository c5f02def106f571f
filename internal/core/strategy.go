package core

import "fmt"

// Strategy is a single forced-move inference rule. Apply reads the grid
// (and may call the reachability/confinement analyzers), buffers any
// forced marks, then applies them atomically. It returns true iff it made
// at least one mark.
type Strategy interface {
	Name() string
	Apply(g *Grid) (bool, error)
}

// MarkSet buffers intended marks into two disjoint coordinate sets so a
// strategy's scan sees a consistent snapshot of the grid; marks are only
// applied once the scan completes. A coordinate buffered into both sets is
// a contradiction.
type MarkSet struct {
	white map[Coord]bool
	black map[Coord]bool
}

// NewMarkSet returns an empty MarkSet.
func NewMarkSet() *MarkSet {
	return &MarkSet{white: map[Coord]bool{}, black: map[Coord]bool{}}
}

// White buffers coord to be marked white.
func (m *MarkSet) White(coord Coord) { m.white[coord] = true }

// Black buffers coord to be marked black.
func (m *MarkSet) Black(coord Coord) { m.black[coord] = true }

// Empty reports whether no marks have been buffered.
func (m *MarkSet) Empty() bool { return len(m.white) == 0 && len(m.black) == 0 }

// Apply marks every buffered coordinate on g. Returns true iff anything was
// buffered.
func (m *MarkSet) Apply(g *Grid) (bool, error) {
	if m.Empty() {
		return false, nil
	}
	for coord := range m.white {
		if m.black[coord] {
			return false, fmt.Errorf("%w: %+v buffered as both white and black", ErrContradiction, coord)
		}
	}
	for coord := range m.black {
		if err := g.MarkCell(coord, Black()); err != nil {
			return false, err
		}
	}
	for coord := range m.white {
		if err := g.MarkCell(coord, White()); err != nil {
			return false, err
		}
	}
	return true, nil
}
