package core

import "errors"

// ErrContradiction means the grid's invariants cannot be satisfied: a cell
// was re-marked, two distinct clue regions touched, a 2x2 pool of black
// cells formed, a region closed while still incomplete, or a region
// overfilled.
var ErrContradiction = errors.New("nurikabe: contradiction")

// ErrNoStrategyApplies means the solver reached a fixed point with the grid
// still incomplete and no latent contradiction. The puzzle is either
// unsolvable by the configured strategies or pathological.
var ErrNoStrategyApplies = errors.New("nurikabe: no strategy applies")
