package board

import (
	"errors"
	"fmt"
)

var (
	ErrBadLine = errors.New("puzzle line must be 81 characters of 0-9")
)

// ValidateLine checks that a puzzle line is exactly 81 characters, each a
// decimal digit. ParseLine runs this before touching the board; callers
// reading untrusted input may run it earlier for a cheaper rejection.
func ValidateLine(line string) error {
	if len(line) != CellCount {
		return fmt.Errorf("%w: got %d characters", ErrBadLine, len(line))
	}
	for pos := 0; pos < CellCount; pos++ {
		if ch := line[pos]; ch < '0' || ch > '9' {
			return fmt.Errorf("%w: invalid character %q at position %d", ErrBadLine, ch, pos)
		}
	}
	return nil
}
