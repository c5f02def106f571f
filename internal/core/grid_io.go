package core

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseGrid parses the textual puzzle format: optional header lines
// starting with '#' (ignored), then R rows of exactly C cells each, where
// '.' is unresolved, 'W' is white, 'B' is black, and a run of one or more
// decimal digits is a single clue cell.
func ParseGrid(input string) (*Grid, error) {
	lines := strings.Split(input, "\n")

	i := 0
	for i < len(lines) && strings.HasPrefix(lines[i], "#") {
		i++
	}
	rows := lines[i:]
	// Trailing blank line from a final "\n" is not part of the grid.
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("core: empty puzzle text")
	}

	type pending struct {
		coord Coord
		state State
	}

	numCols := -1
	var clues []Clue
	var resolved []pending

	for r, line := range rows {
		cells, err := parseRow(line)
		if err != nil {
			return nil, fmt.Errorf("core: row %d: %w", r, err)
		}
		if numCols == -1 {
			numCols = len(cells)
		} else if len(cells) != numCols {
			return nil, fmt.Errorf("core: row %d has %d columns, expected %d", r, len(cells), numCols)
		}
		for c, cell := range cells {
			coord := Coord{Row: r, Col: c}
			switch cell.kind {
			case parsedNumbered:
				clues = append(clues, Clue{Coord: coord, N: cell.n})
			case parsedWhite:
				resolved = append(resolved, pending{coord, White()})
			case parsedBlack:
				resolved = append(resolved, pending{coord, Black()})
			}
		}
	}

	g, err := New(len(rows), numCols, clues)
	if err != nil {
		return nil, err
	}
	for _, p := range resolved {
		if err := g.MarkCell(p.coord, p.state); err != nil {
			return nil, err
		}
	}
	return g, nil
}

type parsedKind int

const (
	parsedUnknown parsedKind = iota
	parsedWhite
	parsedBlack
	parsedNumbered
)

type parsedCell struct {
	kind parsedKind
	n    int
}

func parseRow(line string) ([]parsedCell, error) {
	var cells []parsedCell
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		switch {
		case runes[i] == '.':
			cells = append(cells, parsedCell{kind: parsedUnknown})
		case runes[i] == 'W':
			cells = append(cells, parsedCell{kind: parsedWhite})
		case runes[i] == 'B':
			cells = append(cells, parsedCell{kind: parsedBlack})
		case runes[i] >= '0' && runes[i] <= '9':
			j := i
			for j < len(runes) && runes[j] >= '0' && runes[j] <= '9' {
				j++
			}
			n, err := strconv.Atoi(string(runes[i:j]))
			if err != nil {
				return nil, fmt.Errorf("invalid clue digits %q: %w", string(runes[i:j]), err)
			}
			cells = append(cells, parsedCell{kind: parsedNumbered, n: n})
			i = j - 1
		default:
			return nil, fmt.Errorf("unexpected character %q", runes[i])
		}
	}
	return cells, nil
}

// ToInputString serializes the grid back to the textual puzzle format, with
// no trailing newline after the final row.
func (g *Grid) ToInputString() string {
	var sb strings.Builder
	for row := 0; row < g.Rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < g.Cols; col++ {
			state, _, ok := g.CellState(Coord{Row: row, Col: col})
			switch {
			case !ok:
				sb.WriteByte('.')
			case state.Kind == KindNumbered:
				sb.WriteString(strconv.Itoa(state.Clue))
			case state.Kind == KindWhite:
				sb.WriteByte('W')
			case state.Kind == KindBlack:
				sb.WriteByte('B')
			}
		}
	}
	return sb.String()
}
