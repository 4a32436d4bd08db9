package generator

import (
	"math"
	"math/rand"
	"time"

	"github.com/jswint/gridlock/internal/board"
	"github.com/jswint/gridlock/internal/solver"
)

// Generator creates puzzles with a guaranteed unique solution.
type Generator struct {
	options *Options
	rng     *rand.Rand
	filler  *solver.Filler
	counter *solver.Counter
}

// New creates a puzzle generator with the given options.
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions(9)
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	return &Generator{
		options: options,
		rng:     rng,
		filler:  solver.NewFiller(rng),
		counter: solver.NewCounter(rng),
	}
}

// Generate creates a new puzzle.
// Returns the puzzle (clue grid) and its full solution.
func (g *Generator) Generate() (puzzle *board.Board, solution *board.Board, err error) {
	if _, err = board.ShapeOf(g.options.Size); err != nil {
		return nil, nil, err
	}

	solution, err = g.filler.Complete(g.options.Size)
	if err != nil {
		return nil, nil, err
	}

	return g.carve(solution), solution, nil
}

// carve removes clues from a complete solution while preserving
// uniqueness. Cells are visited in a random order, optionally paired
// with their point-symmetric partner; each removal is kept only if the
// bounded solution count stays at exactly 1, and a cell is never
// reconsidered once decided either way.
func (g *Generator) carve(solution *board.Board) *board.Board {
	puzzle := solution.Clone()
	cells := puzzle.Cells()
	target := int(math.Round(g.options.BlankFraction * float64(cells)))

	var deadline time.Time
	if g.options.Timeout > 0 {
		deadline = time.Now().Add(g.options.Timeout)
	}

	settled := make([]bool, cells)
	blanked := 0

	for _, pos := range g.rng.Perm(cells) {
		if blanked >= target {
			break
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			break
		}
		if settled[pos] {
			continue
		}

		group := []int{pos}
		if g.options.Symmetric {
			if partner := cells - 1 - pos; partner != pos && !settled[partner] {
				group = append(group, partner)
			}
		}

		removed := make([]board.Cell, len(group))
		for i, p := range group {
			removed[i] = puzzle.Get(p)
			puzzle.Clear(p)
		}

		if g.counter.Count(puzzle, solver.UniqueLimit) != 1 {
			// Removal admits a second solution: restore and keep as clues.
			for i, p := range group {
				puzzle.SetForce(p, removed[i])
			}
		} else {
			blanked += len(group)
		}

		for _, p := range group {
			settled[p] = true
		}
	}

	return puzzle
}

// GenerateForSize is a convenience function generating a puzzle with
// default options for the given board size.
func GenerateForSize(size int) (*board.Board, *board.Board, error) {
	return New(DefaultOptions(size)).Generate()
}
