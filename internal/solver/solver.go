package solver

import (
	"errors"

	"github.com/bitgrid/sudoku/internal/board"
)

var (
	ErrInvalidPuzzle = errors.New("puzzle givens violate Sudoku constraints")
	ErrNoSolution    = errors.New("puzzle has no solution")
	ErrNoBranch      = errors.New("no branch cell on an unsolved board")
)

// Stats describes the work a solve performed.
type Stats struct {
	// Nodes is the number of boards taken off the search stack, including
	// the initial one.
	Nodes int
	// Branches is the number of boards pushed during search. Zero means
	// propagation alone solved the puzzle.
	Branches int
}

// Solver resolves a single puzzle: constraint propagation first, then
// depth-first branch-and-prune over an explicit stack of board snapshots
// when propagation stalls short of a full solution.
type Solver struct {
	Board board.Board
	Stats Stats

	// stack holds independent board snapshots, deepest branch on top.
	// Entries are plain values; no two share storage.
	stack []board.Board
}

// New creates a solver for the given board.
func New(b board.Board) *Solver {
	return &Solver{Board: b}
}

// Solve attempts to solve the puzzle.
// Returns the solved board or an error if unsolvable.
//
// ErrInvalidPuzzle means the givens were already contradictory,
// ErrNoSolution that search exhausted every branch, and ErrNoBranch that
// search reached a board neither solved nor splittable — a bug, not bad
// input. Contradictions hit while exploring a branch are not errors; the
// branch is pruned and search continues.
func (s *Solver) Solve() (board.Board, error) {
	if !Propagate(&s.Board) {
		return board.Board{}, ErrInvalidPuzzle
	}

	s.stack = append(s.stack[:0], s.Board)

	for len(s.stack) > 0 {
		current := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		s.Stats.Nodes++

		if current.Solved() {
			s.Board = current
			return current, nil
		}

		pos := chooseBranchCell(&current)
		if pos == board.InvalidCell {
			return board.Board{}, ErrNoBranch
		}

		for d := 1; d <= 9; d++ {
			if !current[pos].Has(d) {
				continue
			}
			next := current
			board.NewActions().Put(pos, d).Apply(&next)
			if Propagate(&next) {
				s.stack = append(s.stack, next)
				s.Stats.Branches++
			}
		}
	}

	return board.Board{}, ErrNoSolution
}

// chooseBranchCell picks the open cell to split search on: fewest remaining
// candidates first, ties broken by lowest position. Returns InvalidCell only
// on a solved or contradictory board, both of which callers rule out first.
func chooseBranchCell(b *board.Board) int {
	for p := 2; p <= 8; p++ {
		for pos := 0; pos < board.CellCount; pos++ {
			if b[pos].Possibilities() == p {
				return pos
			}
		}
	}
	return board.InvalidCell
}
