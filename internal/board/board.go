package board

import (
	"strings"
)

// Special cell values
const (
	InvalidCell = -1
	CellCount   = 81
)

// Board is a 9x9 Sudoku board of candidate sets, indexed by linear position
// (0-80, row-major). It is a plain value: assignment produces an independent
// snapshot, which the search stack relies on.
type Board [CellCount]Set

// New returns a fully unconstrained board: every cell open with all nine
// candidates.
func New() Board {
	var b Board
	for pos := range b {
		b[pos] = Initial()
	}
	return b
}

// ParseLine builds a board from an 81-character puzzle line. '0' leaves a
// cell open, '1'-'9' commits the digit and eliminates it from the cell's
// peers. The resulting board may be contradictory if the givens conflict;
// that is for propagation to detect, not ParseLine.
func ParseLine(line string) (Board, error) {
	if err := ValidateLine(line); err != nil {
		return Board{}, err
	}

	acts := NewActions()
	for pos := 0; pos < CellCount; pos++ {
		if ch := line[pos]; ch != '0' {
			acts.Put(pos, int(ch-'0'))
		}
	}

	b := New()
	acts.Apply(&b)
	return b, nil
}

// Meet intersects every cell of o into b.
func (b *Board) Meet(o *Board) {
	for pos := range b {
		b[pos] = b[pos].Intersect(o[pos])
	}
}

// Valid reports whether every cell still has at least one candidate.
func (b *Board) Valid() bool {
	for _, cell := range b {
		if !cell.Valid() {
			return false
		}
	}
	return true
}

// Solved reports whether every cell has been committed.
func (b *Board) Solved() bool {
	for _, cell := range b {
		if !cell.Fixed() {
			return false
		}
	}
	return true
}

// String returns the board as an 81-character string.
// Committed cells are '1'-'9', open cells are '0'.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(CellCount)

	for _, cell := range b {
		if cell.Fixed() {
			sb.WriteByte('0' + byte(cell.Back()))
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

// Format returns a human-readable board representation with grid lines.
func (b *Board) Format() string {
	var sb strings.Builder
	line := "+-------+-------+-------+\n"
	sb.WriteString(line)

	for row := 0; row < 9; row++ {
		sb.WriteString("| ")
		for col := 0; col < 9; col++ {
			cell := b[MakePos(row, col)]
			if cell.Fixed() {
				sb.WriteByte('0' + byte(cell.Back()))
			} else {
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')

			if (col+1)%3 == 0 {
				sb.WriteString("| ")
			}
		}
		sb.WriteString("\n")

		if (row+1)%3 == 0 {
			sb.WriteString(line)
		}
	}

	return sb.String()
}
