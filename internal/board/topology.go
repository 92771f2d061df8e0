package board

// Group sizes
const (
	GroupCount = 27
	PeerCount  = 20
)

// Precomputed lookup tables for the fixed 9×9 geometry.
// Built once at init from pure geometry, read-only thereafter; every puzzle
// solved in the process shares them.
var (
	// Rows, Cols and Boxes hold the 9 cell positions of each unit.
	Rows  [9][9]int
	Cols  [9][9]int
	Boxes [9][9]int

	// Groups lists all 27 units in rows, boxes, columns order. Deduction
	// techniques scan units in exactly this order.
	Groups [GroupCount][9]int

	// Peers holds, per cell, the 20 other cells sharing a row, column or
	// box with it, in ascending position order.
	Peers [CellCount][PeerCount]int
)

// MakePos transforms a row and column into a linear position.
// Returns InvalidCell if row and/or col are invalid.
func MakePos(row, col int) int {
	if row < 0 || row >= 9 || col < 0 || col >= 9 {
		return InvalidCell
	}
	return 9*row + col
}

// boxOf returns the box index of a position.
func boxOf(pos int) int {
	return 3*(pos/27) + (pos%9)/3
}

// init fills the unit and peer tables.
func init() {
	for pos := 0; pos < CellCount; pos++ {
		row, col := pos/9, pos%9
		Rows[row][col] = pos
		Cols[col][row] = pos
	}
	for box := 0; box < 9; box++ {
		top := 27*(box/3) + 3*(box%3)
		for i := 0; i < 9; i++ {
			Boxes[box][i] = top + 9*(i/3) + i%3
		}
	}

	for i := 0; i < 9; i++ {
		Groups[i] = Rows[i]
		Groups[9+i] = Boxes[i]
		Groups[18+i] = Cols[i]
	}

	for pos := 0; pos < CellCount; pos++ {
		var seen [CellCount]bool
		units := [3][9]int{
			Rows[pos/9],
			Cols[pos%9],
			Boxes[boxOf(pos)],
		}
		n := 0
		for _, unit := range units {
			for _, peer := range unit {
				if peer == pos || seen[peer] {
					continue
				}
				seen[peer] = true
				n++
			}
		}
		if n != PeerCount {
			panic("board: peer table construction broken")
		}
		n = 0
		for peer := 0; peer < CellCount; peer++ {
			if seen[peer] {
				Peers[pos][n] = peer
				n++
			}
		}
	}
}
