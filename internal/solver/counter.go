package solver

import (
	"math/rand"

	"github.com/jswint/gridlock/internal/board"
)

// UniqueLimit is the solution cap used for uniqueness checks: counting
// stops the instant a second solution turns up.
const UniqueLimit = 2

// Counter counts the completions of a partially-filled board, capped at
// a small limit. The cap plus the most-constrained-cell ordering is what
// keeps repeated uniqueness checks affordable during carving; an
// unbounded count would be exponential on sparse 9×9 grids.
type Counter struct {
	rng *rand.Rand
}

// NewCounter creates a counter. rng randomizes candidate order so no
// particular completion is systematically found first; a nil rng keeps
// the deterministic ascending order.
func NewCounter(rng *rand.Rand) *Counter {
	return &Counter{rng: rng}
}

// Count returns the number of completions of b, capped at limit.
// A result equal to limit means "at least limit", never an exact count.
// A fully-filled board counts as its own single completion when valid.
// b is left unmodified.
func (c *Counter) Count(b *board.Board, limit int) int {
	if limit < 1 {
		return 0
	}
	if !b.IsValid() {
		return 0
	}

	work := b.Clone()
	found := 0
	c.count(work, limit, &found)
	return found
}

// IsUnique reports whether b has exactly one completion.
func (c *Counter) IsUnique(b *board.Board) bool {
	return c.Count(b, UniqueLimit) == 1
}

func (c *Counter) count(b *board.Board, limit int, found *int) {
	if *found >= limit {
		return
	}

	pos, candidates := mrvCell(b)
	if pos == -1 {
		// No blank cells remain: one full solution.
		*found++
		return
	}
	if len(candidates) == 0 {
		// Some blank cell admits no value: dead branch.
		return
	}

	if c.rng != nil {
		c.rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
	}

	for _, val := range candidates {
		if *found >= limit {
			return
		}
		b.SetForce(pos, val)
		c.count(b, limit, found)
		b.Clear(pos)
	}
}

// mrvCell finds the blank cell with the fewest legal candidates, ties
// broken by row-major scan order. Returns (-1, nil) when no blank cells
// remain. A cell with zero candidates short-circuits the scan since no
// other cell can make the branch viable.
func mrvCell(b *board.Board) (int, []board.Cell) {
	mrvPos := -1
	mrvCount := b.Size() + 1
	var mrvCandidates []board.Cell

	for pos := 0; pos < b.Cells(); pos++ {
		if !b.Get(pos).IsBlank() {
			continue
		}

		candidates := b.Candidates(pos)
		if len(candidates) < mrvCount {
			mrvPos = pos
			mrvCount = len(candidates)
			mrvCandidates = candidates

			if mrvCount <= 1 {
				break
			}
		}
	}

	return mrvPos, mrvCandidates
}
