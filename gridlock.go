// Package gridlock generates Latin-square-style logic puzzles with row,
// column, and rectangular-box constraints for board sizes 4, 6, and 9.
// Every generated puzzle is guaranteed to have exactly one solution.
//
// The search internals live under internal/; callers only ever see clue
// and solution grids plus a uniqueness predicate for externally loaded
// puzzles.
package gridlock

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jswint/gridlock/internal/board"
	"github.com/jswint/gridlock/internal/generator"
	"github.com/jswint/gridlock/internal/solver"
)

// Grid is a square cell matrix. 0 marks a blank cell; filled cells hold
// a value in [1, size].
type Grid [][]int

// Puzzle bundles a generated clue grid with its full solution.
// Clues is the playable state; Solution is retained for the lifetime of
// the puzzle for hint and correctness checks.
type Puzzle struct {
	ID       string
	Size     int
	Clues    Grid
	Solution Grid
}

// Options tunes puzzle generation. The zero value of any field falls
// back to the default for the chosen size.
type Options struct {
	// BlankFraction is the target fraction of cells to blank out
	// (default 0.6). The achieved fraction may fall short when further
	// removals would break uniqueness.
	BlankFraction float64

	// Symmetric carves point-symmetric cell pairs. Defaults on for 9×9.
	Symmetric *bool

	// Seed makes generation reproducible (0 = random).
	Seed int64

	// Timeout bounds carving time per puzzle (default 10s); on expiry
	// the best puzzle so far is returned, still uniquely solvable.
	Timeout time.Duration
}

// Generate creates a puzzle of the given size (4, 6, or 9) with default
// carving options. This is the sole entry point external code needs.
func Generate(size int) (*Puzzle, error) {
	return GenerateWith(size, Options{})
}

// GenerateSeeded is Generate with a fixed random seed, producing the
// same puzzle on every run.
func GenerateSeeded(size int, seed int64) (*Puzzle, error) {
	return GenerateWith(size, Options{Seed: seed})
}

// GenerateWith creates a puzzle of the given size with explicit options.
func GenerateWith(size int, o Options) (*Puzzle, error) {
	opts := generator.DefaultOptions(size)
	if o.BlankFraction != 0 {
		opts.BlankFraction = o.BlankFraction
	}
	if o.Symmetric != nil {
		opts.Symmetric = *o.Symmetric
	}
	if o.Seed != 0 {
		opts.Seed = o.Seed
	}
	if o.Timeout != 0 {
		opts.Timeout = o.Timeout
	}

	clues, solution, err := generator.New(opts).Generate()
	if err != nil {
		return nil, err
	}
	return &Puzzle{
		ID:       uuid.NewString(),
		Size:     size,
		Clues:    gridOf(clues),
		Solution: gridOf(solution),
	}, nil
}

// GenerateAll generates one puzzle per requested size concurrently.
// Each generation owns its grids, so no synchronization beyond the
// result map is needed.
func GenerateAll(sizes ...int) (map[int]*Puzzle, error) {
	var mu sync.Mutex
	out := make(map[int]*Puzzle, len(sizes))

	var g errgroup.Group
	for _, size := range sizes {
		size := size
		g.Go(func() error {
			p, err := Generate(size)
			if err != nil {
				return fmt.Errorf("size %d: %w", size, err)
			}
			mu.Lock()
			out[size] = p
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// CheckUnique reports whether an externally loaded clue grid admits
// exactly one solution. A grid that violates the row/column/box
// constraints outright is simply not unique and yields false; a grid
// with unusable dimensions or cell values is an error.
func CheckUnique(clues Grid) (bool, error) {
	b, err := boardOf(clues)
	if err != nil {
		return false, err
	}
	if b == nil {
		return false, nil
	}
	return solver.NewCounter(nil).IsUnique(b), nil
}

// gridOf copies a board into a caller-owned Grid.
func gridOf(b *board.Board) Grid {
	size := b.Size()
	g := make(Grid, size)
	for row := 0; row < size; row++ {
		g[row] = make([]int, size)
		for col := 0; col < size; col++ {
			g[row][col] = int(b.Get(b.Pos(row, col)))
		}
	}
	return g
}

// boardOf converts a Grid into a Board. Returns an error for unusable
// input (bad size, non-square rows, out-of-range values) and a nil
// board with nil error when the grid merely violates puzzle rules.
func boardOf(g Grid) (*board.Board, error) {
	size := len(g)
	b, err := board.New(size)
	if err != nil {
		return nil, err
	}
	for row, cells := range g {
		if len(cells) != size {
			return nil, fmt.Errorf("row %d has %d cells, want %d", row, len(cells), size)
		}
		for col, v := range cells {
			if v == 0 {
				continue
			}
			if v < 0 || v > size {
				return nil, fmt.Errorf("cell (%d,%d): %w: got %d, board size %d",
					row, col, board.ErrInvalidValue, v, size)
			}
			if err := b.Set(b.Pos(row, col), board.Cell(v)); err != nil {
				// Duplicate in a row, column, or box.
				return nil, nil
			}
		}
	}
	return b, nil
}
