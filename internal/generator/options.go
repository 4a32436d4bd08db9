package generator

import "time"

// Options configures puzzle generation behavior.
type Options struct {
	// Size is the board side length: 4, 6, or 9.
	Size int

	// BlankFraction is the target fraction of cells to blank out.
	// Carving stops early if uniqueness cannot survive further removals,
	// so the achieved fraction may fall short of the target.
	BlankFraction float64

	// Symmetric carves point-symmetric cell pairs together, giving the
	// clue pattern 180° rotational symmetry.
	Symmetric bool

	// Seed makes generation reproducible (0 = random).
	Seed int64

	// Timeout bounds the carving loop; on expiry the puzzle so far is
	// returned, which is always still uniquely solvable.
	Timeout time.Duration
}

// DefaultBlankFraction matches the density the engine was tuned for.
const DefaultBlankFraction = 0.6

// DefaultOptions returns standard generator options for a board size.
// Symmetric carving defaults on only for 9×9 boards; the small sizes
// rarely reach a useful blank fraction when cells come out in pairs.
func DefaultOptions(size int) *Options {
	return &Options{
		Size:          size,
		BlankFraction: DefaultBlankFraction,
		Symmetric:     size == 9,
		Seed:          0,
		Timeout:       10 * time.Second,
	}
}
