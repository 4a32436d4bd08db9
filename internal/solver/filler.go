package solver

import (
	"errors"
	"math/rand"

	"github.com/jswint/gridlock/internal/board"
)

var ErrNoSolution = errors.New("board has no valid completion")

// maxCompleteAttempts bounds how many times Complete retries a fresh
// pre-seeded board before falling back to an unseeded fill.
const maxCompleteAttempts = 32

// Filler completes boards into full valid solutions using randomized
// recursive backtracking.
type Filler struct {
	rng *rand.Rand
}

// NewFiller creates a filler drawing candidate order from rng.
func NewFiller(rng *rand.Rand) *Filler {
	return &Filler{rng: rng}
}

// Complete produces a fully-populated random solution of the given size.
// A few random legal placements seed the board before the backtracking
// fill for variety across runs; a seed that turns out unsatisfiable is
// discarded and the attempt restarts from an empty board.
func (f *Filler) Complete(size int) (*board.Board, error) {
	for _i := 0; _i < maxCompleteAttempts; _i++ {
		b, err := board.New(size)
		if err != nil {
			return nil, err
		}
		f.preSeed(b, size)
		if f.Fill(b) {
			return b, nil
		}
	}

	// Unseeded fill from an empty board always succeeds for the
	// supported sizes; the error path guards against future bugs only.
	b, err := board.New(size)
	if err != nil {
		return nil, err
	}
	if !f.Fill(b) {
		return nil, ErrNoSolution
	}
	return b, nil
}

// Fill completes a partially-filled board in place, returning whether a
// full completion was found. Cells are visited in row-major order and
// candidate values are tried in a freshly randomized order at each cell;
// on failure the board is restored to its state at the call.
func (f *Filler) Fill(b *board.Board) bool {
	pos := firstBlank(b)
	if pos == -1 {
		return true
	}

	candidates := b.Candidates(pos)
	f.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for _, val := range candidates {
		b.SetForce(pos, val)
		if f.Fill(b) {
			return true
		}
		b.Clear(pos)
	}

	return false
}

// preSeed makes up to count random legal placements on b. Each placement
// is legal at the time it is made, but the seeded board as a whole may
// have no completion; Complete handles that by discarding the attempt.
func (f *Filler) preSeed(b *board.Board, count int) {
	for _i := 0; _i < count; _i++ {
		pos := f.rng.Intn(b.Cells())
		if !b.Get(pos).IsBlank() {
			continue
		}
		candidates := b.Candidates(pos)
		if len(candidates) == 0 {
			continue
		}
		b.SetForce(pos, candidates[f.rng.Intn(len(candidates))])
	}
}

// firstBlank returns the first blank position in row-major order,
// or -1 if the board is full.
func firstBlank(b *board.Board) int {
	for pos := 0; pos < b.Cells(); pos++ {
		if b.Get(pos).IsBlank() {
			return pos
		}
	}
	return -1
}
