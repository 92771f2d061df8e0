package board

// Actions is a batch of pending cell mutations, accumulated as a board-wide
// mask and applied to a Board in a single meet. The mask starts out as the
// identity (every cell unconstrained), so untouched cells pass through
// unchanged. Applying the same log twice is a harmless no-op since the meet
// is idempotent.
type Actions struct {
	mask  Board
	count int
}

// NewActions returns an empty action log.
func NewActions() *Actions {
	return &Actions{mask: New()}
}

// Fix commits digit d at pos: after Apply the cell holds exactly d with the
// open marker cleared. Returns the log for chaining.
func (a *Actions) Fix(pos, d int) *Actions {
	a.mask[pos] = Single(d)
	a.count++
	return a
}

// Disable removes digit d from the candidates at pos, leaving the open
// marker untouched. Returns the log for chaining.
func (a *Actions) Disable(pos, d int) *Actions {
	a.mask[pos] = a.mask[pos].Intersect(Without(d))
	a.count++
	return a
}

// Put commits digit d at pos and removes d from all 20 peers of pos in the
// same batch. This is the only way deduction and search commit a value: the
// peer eliminations land atomically with the commitment.
func (a *Actions) Put(pos, d int) *Actions {
	for _, peer := range Peers[pos] {
		a.Disable(peer, d)
	}
	return a.Fix(pos, d)
}

// Apply meets the accumulated mask into b. The board may come out invalid if
// the batch contradicts it; callers check Valid.
func (a *Actions) Apply(b *Board) {
	b.Meet(&a.mask)
}

// Count returns the number of primitive operations accumulated. Zero means
// the batch would change nothing.
func (a *Actions) Count() int {
	return a.count
}
