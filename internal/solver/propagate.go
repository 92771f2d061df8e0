package solver

import (
	"github.com/bitgrid/sudoku/internal/board"
)

// Deduction techniques in priority order. After any technique produces an
// action the loop restarts at the cheapest one, so expensive techniques only
// run once the cheaper ones are exhausted.
const (
	techObviousSingleton = iota
	techHiddenSingleton
	techObviousPair
	techCount
)

// Propagate applies deduction techniques to b until none fires, mutating b
// in place. Returns false if the board is (or becomes) contradictory, true
// once deductions converge — the board may still have open cells.
func Propagate(b *board.Board) bool {
	technique := techObviousSingleton
	for technique < techCount {
		if !b.Valid() {
			return false
		}
		var acts *board.Actions
		switch technique {
		case techObviousSingleton:
			acts = obviousSingletons(b)
		case techHiddenSingleton:
			acts = hiddenSingletons(b)
		case techObviousPair:
			acts = obviousPairs(b)
		}
		if acts.Count() > 0 {
			acts.Apply(b)
			technique = techObviousSingleton
		} else {
			technique++
		}
	}
	return true
}

// obviousSingletons commits every open cell that has exactly one remaining
// candidate. One full scan, collecting all of them into a single batch.
func obviousSingletons(b *board.Board) *board.Actions {
	acts := board.NewActions()
	for pos := 0; pos < board.CellCount; pos++ {
		if cell := b[pos]; cell.IsSingleton() {
			acts.Put(pos, cell.Back())
		}
	}
	return acts
}

// hiddenSingletons finds digits that fit only one open cell of a unit.
// Units are scanned in rows, boxes, columns order; the first unit yielding
// any deduction ends the scan, since the loop in Propagate restarts from the
// cheapest technique and will come back around.
func hiddenSingletons(b *board.Board) *board.Actions {
	acts := board.NewActions()
	for _, unit := range board.Groups {
		var counts [10]int
		var where [10]int

		for _, pos := range unit {
			cell := b[pos]
			if cell.Fixed() {
				continue
			}
			for d := 1; d <= 9; d++ {
				if cell.Has(d) {
					counts[d]++
					where[d] = pos
				}
			}
		}

		found := false
		for d := 1; d <= 9; d++ {
			if counts[d] != 1 {
				continue
			}
			found = true
			acts.Put(where[d], d)
		}
		if found {
			return acts
		}
	}
	return acts
}

// obviousPairs finds two open cells of a unit sharing an identical
// two-candidate set and eliminates those two digits from the unit's other
// open cells. Pairs are tried in ascending index order; the first pair that
// actually eliminates anything ends the scan. Cells already disjoint from
// the pair, or already reduced to exactly the pair, are skipped.
func obviousPairs(b *board.Board) *board.Actions {
	acts := board.NewActions()
	for _, unit := range board.Groups {
		var cells [9]board.Set
		for i, pos := range unit {
			cells[i] = b[pos]
		}

		for left := 0; left < 8; left++ {
			if cells[left].Possibilities() != 2 {
				continue
			}
			for right := left + 1; right < 9; right++ {
				if cells[right] != cells[left] {
					continue
				}
				pairDigits := cells[left].Intersect(board.Without(0))

				for i := 0; i < 9; i++ {
					if i == left || i == right || cells[i].Fixed() {
						continue
					}
					common := cells[i].Intersect(pairDigits)
					if common == 0 || common == pairDigits {
						continue
					}
					for d := 1; d <= 9; d++ {
						if pairDigits.Has(d) {
							acts.Disable(unit[i], d)
						}
					}
				}
				if acts.Count() > 0 {
					return acts
				}
			}
		}
	}
	return acts
}
