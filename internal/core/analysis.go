package core

// IsCellUnreachable determines whether the unresolved coord must be black
// because no numbered region could ever be extended to include it.
// assumeBlack is extra cells treated as black for this query, used by
// strategies preparing a batch of marks. Resolved cells are always
// reachable (false).
func IsCellUnreachable(g *Grid, coord Coord, assumeBlack []Coord) bool {
	if _, _, ok := g.CellState(coord); ok {
		return false
	}

	maxWhiteSlack := 0
	for _, r := range g.Regions() {
		if r.State.Kind != KindNumbered {
			continue
		}
		if slack := r.State.Clue - len(r.Coords); slack > maxWhiteSlack {
			maxWhiteSlack = slack
		}
	}

	explored := map[Coord]bool{coord: true}
	for _, c := range assumeBlack {
		explored[c] = true
	}

	type frame struct {
		coord Coord
		depth int
	}
	queue := []frame{{coord, 1}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		adjNumbered := map[RegionID]bool{}
		adjWhite := map[RegionID]bool{}
		for _, adj := range g.ValidNeighbors(cur.coord) {
			_, regionID, ok := g.CellState(adj)
			if !ok {
				continue
			}
			region := g.Region(regionID)
			switch region.State.Kind {
			case KindNumbered:
				adjNumbered[regionID] = true
			case KindWhite:
				adjWhite[regionID] = true
			}
		}

		if len(adjNumbered) >= 2 {
			// Cannot be the fusion point for two distinct clues (R4).
			continue
		}

		extra := cur.depth
		for id := range adjWhite {
			extra += len(g.Region(id).Coords)
		}

		if len(adjNumbered) == 1 {
			var regionID RegionID
			for id := range adjNumbered {
				regionID = id
			}
			region := g.Region(regionID)
			if extra+len(region.Coords) <= region.State.Clue {
				return false
			}
			continue
		}

		if len(adjWhite) > 0 {
			if extra+1 <= maxWhiteSlack {
				return false
			}
			continue
		}

		for _, adj := range g.ValidUnknownNeighbors(cur.coord) {
			if !explored[adj] {
				explored[adj] = true
				queue = append(queue, frame{adj, cur.depth + 1})
			}
		}
	}

	return true
}

// isRegionLikeComplete reports whether a region of the given state and
// size has reached its required size. White regions are never "complete"
// under this predicate since they always need to reach a numbered region.
func (g *Grid) isRegionLikeComplete(state State, size int) bool {
	switch state.Kind {
	case KindBlack:
		return size >= g.TotalBlackCells
	case KindNumbered:
		return size >= state.Clue
	default:
		return false
	}
}

// IsRegionConfined decides whether regionID can still grow to its required
// size, treating assumeVisited as forbidden territory. Returns
// ErrContradiction if the flood reveals two distinct numbered regions
// would have to join.
func IsRegionConfined(g *Grid, regionID RegionID, assumeVisited []Coord) (bool, error) {
	region := g.Region(regionID)

	open := append([]Coord(nil), region.Unknowns...)

	visited := map[Coord]bool{}
	for _, c := range region.Coords {
		visited[c] = true
	}
	for _, c := range assumeVisited {
		visited[c] = true
	}

	closed := map[Coord]bool{}
	for _, c := range region.Coords {
		closed[c] = true
	}

	for len(open) > 0 {
		coord := open[0]
		open = open[1:]

		if visited[coord] {
			continue
		}
		visited[coord] = true

		if g.isRegionLikeComplete(region.State, len(closed)) {
			return false, nil
		}

		_, otherID, resolved := g.CellState(coord)
		var other *Region
		if resolved {
			other = g.Region(otherID)
		}

		switch region.State.Kind {
		case KindNumbered:
			if resolved {
				switch other.State.Kind {
				case KindNumbered:
					return false, ErrContradiction
				case KindBlack:
					continue
				}
				// white: fall through to consume
			} else {
				blocked := false
				for _, adj := range g.ValidNeighbors(coord) {
					_, adjRegionID, adjResolved := g.CellState(adj)
					if !adjResolved {
						continue
					}
					adjRegion := g.Region(adjRegionID)
					if adjRegion.State.Kind == KindNumbered && adjRegionID != regionID {
						blocked = true
						break
					}
				}
				if blocked {
					continue
				}
			}
		case KindWhite:
			if resolved {
				switch other.State.Kind {
				case KindNumbered:
					return false, nil
				case KindBlack:
					continue
				}
			}
		case KindBlack:
			if resolved && other.State.Kind != KindBlack {
				continue
			}
		}

		if resolved {
			for _, c := range other.Coords {
				if !closed[c] {
					closed[c] = true
				}
			}
			for _, c := range other.Coords {
				visited[c] = true
			}
			open = append(open, other.Unknowns...)
		} else {
			closed[coord] = true
			visited[coord] = true
			open = append(open, g.ValidNeighbors(coord)...)
		}
	}

	return !g.isRegionLikeComplete(region.State, len(closed)), nil
}
