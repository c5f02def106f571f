// Package core implements the Nurikabe deductive solving engine: the
// incremental region model, reachability/confinement analyzers, the forced-
// move strategies, the fixed-point solver loop, and the hypothetical-trial
// search layer.
package core

import "fmt"

// Kind classifies a Region (and, once assigned, a Cell's resolved state).
type Kind int

const (
	KindWhite Kind = iota
	KindBlack
	KindNumbered
)

func (k Kind) String() string {
	switch k {
	case KindWhite:
		return "white"
	case KindBlack:
		return "black"
	case KindNumbered:
		return "numbered"
	default:
		return "unknown"
	}
}

// State is a cell or region's resolved kind. Clue is meaningful only when
// Kind is KindNumbered.
type State struct {
	Kind Kind
	Clue int
}

// White returns the island (non-clue) state.
func White() State { return State{Kind: KindWhite} }

// Black returns the sea state.
func Black() State { return State{Kind: KindBlack} }

// Numbered returns the clue state fixing an island's final size to n.
func Numbered(n int) State { return State{Kind: KindNumbered, Clue: n} }

// IsWhite reports whether the state is white or numbered (the two kinds
// that are equivalent for island connectivity).
func (s State) IsWhite() bool { return s.Kind == KindWhite || s.Kind == KindNumbered }

// Coord is a (row, col) position in the grid. Row and Col are both
// zero-based.
type Coord struct {
	Row, Col int
}

// RegionID is an opaque handle into the Grid's region arena. It must never
// be dereferenced without the Grid that issued it.
type RegionID int

const noRegion RegionID = -1

type cellSlot struct {
	resolved bool
	state    State
	region   RegionID
}

// Region is a maximal orthogonally-connected set of resolved cells of
// equivalent kind, plus the unresolved cells orthogonally adjacent to it
// (its "liberties").
type Region struct {
	ID       RegionID
	State    State
	Coords   []Coord
	Unknowns []Coord
}

func (r *Region) has(coord Coord) bool {
	for _, c := range r.Coords {
		if c == coord {
			return true
		}
	}
	return false
}

func (r *Region) hasUnknown(coord Coord) bool {
	for _, c := range r.Unknowns {
		if c == coord {
			return true
		}
	}
	return false
}

func (r *Region) removeUnknown(coord Coord) {
	for i, c := range r.Unknowns {
		if c == coord {
			r.Unknowns = append(r.Unknowns[:i], r.Unknowns[i+1:]...)
			return
		}
	}
}

// Clue is a single given: a coordinate paired with the positive integer
// fixing its island's final size.
type Clue struct {
	Coord Coord
	N     int
}

// Grid owns every Cell and Region of one puzzle instance. No other
// component may hold a mutable handle to a Grid while it is being mutated.
type Grid struct {
	Rows, Cols      int
	cells           []cellSlot
	regions         []*Region
	freeList        []RegionID
	TotalBlackCells int
}

// New constructs a Grid from its dimensions and clues. Each clue becomes a
// singleton numbered region whose Unknowns is its orthogonal in-bounds
// neighborhood.
func New(rows, cols int, clues []Clue) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("core: invalid grid dimensions %dx%d", rows, cols)
	}

	g := &Grid{
		Rows:    rows,
		Cols:    cols,
		cells:   make([]cellSlot, rows*cols),
		regions: nil,
	}
	for i := range g.cells {
		g.cells[i].region = noRegion
	}

	seen := make(map[Coord]bool, len(clues))
	totalWhite := 0
	for _, clue := range clues {
		if clue.N <= 0 {
			return nil, fmt.Errorf("core: clue at %+v must be positive, got %d", clue.Coord, clue.N)
		}
		if !g.inBounds(clue.Coord) {
			return nil, fmt.Errorf("core: clue coord %+v out of bounds", clue.Coord)
		}
		if seen[clue.Coord] {
			return nil, fmt.Errorf("core: duplicate clue at %+v", clue.Coord)
		}
		seen[clue.Coord] = true
	}
	for _, clue := range clues {
		for _, n := range g.ValidNeighbors(clue.Coord) {
			if seen[n] {
				return nil, fmt.Errorf("core: clues at %+v and %+v are orthogonally adjacent", clue.Coord, n)
			}
		}
	}

	for _, clue := range clues {
		state := Numbered(clue.N)
		id := g.insertRegion(&Region{
			State:    state,
			Coords:   []Coord{clue.Coord},
			Unknowns: g.ValidNeighbors(clue.Coord),
		})
		slot := g.slot(clue.Coord)
		slot.resolved = true
		slot.state = state
		slot.region = id
		totalWhite += clue.N
	}

	g.TotalBlackCells = rows*cols - totalWhite
	return g, nil
}

func (g *Grid) inBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

func (g *Grid) index(c Coord) int { return c.Row*g.Cols + c.Col }

func (g *Grid) slot(c Coord) *cellSlot { return &g.cells[g.index(c)] }

// ValidNeighbors returns up to four in-bounds orthogonal neighbors.
func (g *Grid) ValidNeighbors(c Coord) []Coord {
	candidates := [4]Coord{
		{c.Row - 1, c.Col},
		{c.Row + 1, c.Col},
		{c.Row, c.Col - 1},
		{c.Row, c.Col + 1},
	}
	out := make([]Coord, 0, 4)
	for _, n := range candidates {
		if g.inBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// ValidUnknownNeighbors is ValidNeighbors restricted to unresolved cells.
func (g *Grid) ValidUnknownNeighbors(c Coord) []Coord {
	neighbors := g.ValidNeighbors(c)
	out := neighbors[:0:0]
	for _, n := range neighbors {
		if !g.slot(n).resolved {
			out = append(out, n)
		}
	}
	return out
}

// CellState reports a coordinate's state and, if resolved, its region id.
// ok is false for unresolved cells.
func (g *Grid) CellState(c Coord) (state State, region RegionID, ok bool) {
	slot := g.slot(c)
	if !slot.resolved {
		return State{}, noRegion, false
	}
	return slot.state, slot.region, true
}

// Region looks up a region by id. Returns nil if the id is free.
func (g *Grid) Region(id RegionID) *Region {
	if id < 0 || int(id) >= len(g.regions) {
		return nil
	}
	return g.regions[id]
}

// Regions returns every live region, in ascending id order.
func (g *Grid) Regions() []*Region {
	out := make([]*Region, 0, len(g.regions))
	for _, r := range g.regions {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

func (g *Grid) insertRegion(r *Region) RegionID {
	if n := len(g.freeList); n > 0 {
		id := g.freeList[n-1]
		g.freeList = g.freeList[:n-1]
		r.ID = id
		g.regions[id] = r
		return id
	}
	id := RegionID(len(g.regions))
	r.ID = id
	g.regions = append(g.regions, r)
	return id
}

func (g *Grid) removeRegion(id RegionID) {
	g.regions[id] = nil
	g.freeList = append(g.freeList, id)
}

// MarkCell resolves coord to state (White or Black). It fails with
// ErrContradiction only if the cell is already resolved; all other
// invariant violations surface later via DetectContradictions.
func (g *Grid) MarkCell(coord Coord, state State) error {
	if state.Kind == KindNumbered {
		return fmt.Errorf("core: MarkCell state must be White or Black, got %v", state)
	}
	slot := g.slot(coord)
	if slot.resolved {
		return fmt.Errorf("%w: cell %+v already resolved", ErrContradiction, coord)
	}

	id := g.insertRegion(&Region{
		State:    state,
		Coords:   []Coord{coord},
		Unknowns: g.ValidUnknownNeighbors(coord),
	})
	slot.resolved = true
	slot.state = state
	slot.region = id

	for _, adj := range g.ValidNeighbors(coord) {
		adjSlot := g.slot(adj)
		if !adjSlot.resolved {
			continue
		}
		adjRegion := g.Region(adjSlot.region)
		adjRegion.removeUnknown(coord)

		equivalent := (adjRegion.State.IsWhite() && state.Kind == KindWhite) ||
			(adjRegion.State.Kind == KindBlack && state.Kind == KindBlack)
		if equivalent {
			g.fuseRegions(adjRegion.ID, g.slot(coord).region)
		}
	}

	return nil
}

// fuseRegions merges region2 into region1's identifier, keeping the
// numbered identifier when one side is numbered (deterministic: the lower
// identifier otherwise).
func (g *Grid) fuseRegions(id1, id2 RegionID) {
	if id1 == id2 {
		return
	}

	r2 := g.Region(id2)
	if r2.State.Kind == KindNumbered {
		g.fuseRegions(id2, id1)
		return
	}
	r1 := g.Region(id1)
	if r1.State.Kind != KindNumbered && id2 < id1 {
		g.fuseRegions(id2, id1)
		return
	}

	kept := g.Region(id1)
	absorbed := g.Region(id2)

	kept.Coords = append(kept.Coords, absorbed.Coords...)
	for _, c := range absorbed.Coords {
		g.slot(c).region = id1
	}
	for _, u := range absorbed.Unknowns {
		if !kept.hasUnknown(u) {
			kept.Unknowns = append(kept.Unknowns, u)
		}
	}

	g.removeRegion(id2)
}

// IsComplete reports whether every cell is resolved.
func (g *Grid) IsComplete() bool {
	marked := 0
	for _, r := range g.regions {
		if r != nil {
			marked += len(r.Coords)
		}
	}
	return marked == g.Rows*g.Cols
}

// isRegionIncomplete: white is always incomplete; numbered(n) needs
// len(coords) < n; black needs len(coords) < TotalBlackCells.
func (g *Grid) isRegionIncomplete(r *Region) bool {
	switch r.State.Kind {
	case KindWhite:
		return true
	case KindNumbered:
		return len(r.Coords) < r.State.Clue
	case KindBlack:
		return len(r.Coords) < g.TotalBlackCells
	default:
		return false
	}
}

// isRegionOverfilled: numbered(n) overfills past n; black overfills past
// TotalBlackCells; white never overfills.
func (g *Grid) isRegionOverfilled(r *Region) bool {
	switch r.State.Kind {
	case KindNumbered:
		return len(r.Coords) > r.State.Clue
	case KindBlack:
		return len(r.Coords) > g.TotalBlackCells
	default:
		return false
	}
}

func (g *Grid) isRegionClosed(r *Region) bool {
	return len(r.Unknowns) == 0
}

// DetectContradictions fails ErrContradiction if any region is closed while
// still incomplete, or overfilled.
func (g *Grid) DetectContradictions() error {
	for _, r := range g.Regions() {
		if g.isRegionOverfilled(r) {
			return fmt.Errorf("%w: region %d (%s) overfilled with %d cells", ErrContradiction, r.ID, r.State.Kind, len(r.Coords))
		}
		if g.isRegionClosed(r) && g.isRegionIncomplete(r) {
			return fmt.Errorf("%w: region %d (%s) closed with only %d cells", ErrContradiction, r.ID, r.State.Kind, len(r.Coords))
		}
	}
	return nil
}

// Clone deep-copies the grid: a new cell array and a new region arena with
// identifiers reproduced verbatim. Used exclusively by the Hypotheticals
// strategy to try a mark without mutating the caller's grid.
func (g *Grid) Clone() *Grid {
	clone := &Grid{
		Rows:            g.Rows,
		Cols:            g.Cols,
		TotalBlackCells: g.TotalBlackCells,
		cells:           make([]cellSlot, len(g.cells)),
		regions:         make([]*Region, len(g.regions)),
		freeList:        append([]RegionID(nil), g.freeList...),
	}
	copy(clone.cells, g.cells)
	for i, r := range g.regions {
		if r == nil {
			continue
		}
		clone.regions[i] = &Region{
			ID:       r.ID,
			State:    r.State,
			Coords:   append([]Coord(nil), r.Coords...),
			Unknowns: append([]Coord(nil), r.Unknowns...),
		}
	}
	return clone
}
