// Package puzzles loads a pre-authored set of Nurikabe puzzles from a JSON
// file and serves them by index, by seed, or by date.
package puzzles

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"os"
	"sync"
	"time"

	"nurikabe/internal/core"
	"nurikabe/pkg/constants"
)

// Puzzle is one pre-authored puzzle: its textual grid (see core.ParseGrid)
// plus display metadata.
type Puzzle struct {
	Name       string `json:"name"`
	Source     string `json:"source"`
	Difficulty string `json:"difficulty"`
	Grid       string `json:"grid"`
}

// PuzzleFile is the top-level structure of the puzzle set JSON file.
type PuzzleFile struct {
	Version int      `json:"version"`
	Count   int      `json:"count"`
	Puzzles []Puzzle `json:"puzzles"`
}

// Loader serves a fixed, in-memory set of puzzles loaded from disk.
type Loader struct {
	puzzles []Puzzle
	mu      sync.RWMutex
}

var (
	globalLoader *Loader
	loadOnce     sync.Once
	loadErr      error
)

// Load reads a puzzle set from a JSON file.
func Load(path string) (*Loader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("puzzles: failed to read puzzle file: %w", err)
	}

	var file PuzzleFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("puzzles: failed to parse puzzle file: %w", err)
	}

	for _, p := range file.Puzzles {
		if !validDifficulty(p.Difficulty) {
			return nil, fmt.Errorf("puzzles: puzzle %q has unrecognized difficulty %q", p.Name, p.Difficulty)
		}
	}

	return &Loader{puzzles: file.Puzzles}, nil
}

func validDifficulty(d string) bool {
	switch d {
	case constants.DifficultyEasy, constants.DifficultyMedium, constants.DifficultyHard:
		return true
	default:
		return false
	}
}

// LoadGlobal loads path into the process-wide Loader, exactly once.
func LoadGlobal(path string) error {
	loadOnce.Do(func() {
		globalLoader, loadErr = Load(path)
	})
	return loadErr
}

// Global returns the process-wide Loader set up by LoadGlobal.
func Global() *Loader {
	return globalLoader
}

// SetGlobal overrides the process-wide Loader. Exposed for tests.
func SetGlobal(l *Loader) {
	globalLoader = l
}

// NewLoaderFromPuzzles builds a Loader directly from puzzle data, bypassing
// the file system. Exposed for tests.
func NewLoaderFromPuzzles(puzzles []Puzzle) *Loader {
	return &Loader{puzzles: puzzles}
}

// Count returns the number of loaded puzzles.
func (l *Loader) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.puzzles)
}

// GetPuzzle returns the puzzle at index, parsed into a Grid.
func (l *Loader) GetPuzzle(index int) (*core.Grid, Puzzle, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if index < 0 || index >= len(l.puzzles) {
		return nil, Puzzle{}, fmt.Errorf("puzzles: index %d out of range (0-%d)", index, len(l.puzzles)-1)
	}
	p := l.puzzles[index]

	g, err := core.ParseGrid(p.Grid)
	if err != nil {
		return nil, Puzzle{}, fmt.Errorf("puzzles: puzzle %d (%s): %w", index, p.Name, err)
	}
	return g, p, nil
}

// GetPuzzleBySeed deterministically maps seed to a puzzle index via an
// FNV-64a hash, and returns that puzzle.
func (l *Loader) GetPuzzleBySeed(seed string) (g *core.Grid, p Puzzle, index int, err error) {
	l.mu.RLock()
	count := len(l.puzzles)
	l.mu.RUnlock()

	if count == 0 {
		return nil, Puzzle{}, 0, fmt.Errorf("puzzles: no puzzles loaded")
	}

	h := fnv.New64a()
	h.Write([]byte(seed))
	index = int(h.Sum64() % uint64(count)) //nolint:gosec // count is bounded by slice length

	g, p, err = l.GetPuzzle(index)
	return g, p, index, err
}

// GetDailyPuzzle returns the puzzle assigned to date's UTC calendar day.
func (l *Loader) GetDailyPuzzle(date time.Time) (g *core.Grid, p Puzzle, index int, err error) {
	seed := "daily:" + date.UTC().Format(constants.DateFormat)
	return l.GetPuzzleBySeed(seed)
}

// GetTodayPuzzle returns the puzzle assigned to the current UTC calendar day.
func (l *Loader) GetTodayPuzzle() (g *core.Grid, p Puzzle, index int, err error) {
	return l.GetDailyPuzzle(time.Now())
}
