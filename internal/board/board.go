package board

import (
	"fmt"
	"strings"
)

// Cell is a single grid value. Blank marks an unfilled cell; filled
// cells hold a value in [1, size].
type Cell uint8

// Blank is the unfilled cell value.
const Blank Cell = 0

// IsBlank reports whether the cell is unfilled.
func (c Cell) IsBlank() bool { return c == Blank }

// Board represents a square puzzle grid of size 4, 6, or 9 with
// row, column, and rectangular-box uniqueness constraints.
type Board struct {
	size  int
	shape Shape
	cells []Cell

	// Bitmasks track placed values in each unit (row/col/box).
	// Bit i represents value i+1 (bit 0 = value 1).
	// This allows for O(1) legality checks.
	rowMasks []uint
	colMasks []uint
	boxMasks []uint

	// allMask has the low `size` bits set: the candidate mask of a
	// cell with no constraints.
	allMask uint

	// emptyCount tracks unfilled cells for quick completion checks.
	// Once initialized, emptyCount should only be touched inside
	// Set, SetForce, and Clear.
	emptyCount int
}

// New creates an empty Board of the given size.
// Sizes outside {4, 6, 9} are rejected with ErrUnsupportedSize.
func New(size int) (*Board, error) {
	shape, err := ShapeOf(size)
	if err != nil {
		return nil, err
	}
	return &Board{
		size:       size,
		shape:      shape,
		cells:      make([]Cell, size*size),
		rowMasks:   make([]uint, size),
		colMasks:   make([]uint, size),
		boxMasks:   make([]uint, size),
		allMask:    (1 << size) - 1,
		emptyCount: size * size,
	}, nil
}

// MustNew is New for sizes already known to be supported; it panics
// otherwise. Intended for callers past the boundary validation.
func MustNew(size int) *Board {
	b, err := New(size)
	if err != nil {
		panic(err)
	}
	return b
}

// NewFromString creates a Board from a size*size character string.
// Use '.' or '0' for blank cells, '1'..'9' for filled cells; values
// above the board size are rejected.
func NewFromString(s string, size int) (*Board, error) {
	b, err := New(size)
	if err != nil {
		return nil, err
	}
	if len(s) != b.Cells() {
		return nil, fmt.Errorf("string must be exactly %d characters, got %d", b.Cells(), len(s))
	}
	for pos := 0; pos < b.Cells(); pos++ {
		ch := s[pos]
		switch {
		case ch == '.' || ch == '0':
			// Blank cell, already initialized
		case ch >= '1' && ch <= '9':
			if err := b.Set(pos, Cell(ch-'0')); err != nil {
				return nil, fmt.Errorf("invalid board at position %d: %w", pos, err)
			}
		default:
			return nil, fmt.Errorf("invalid character '%c' at position %d", ch, pos)
		}
	}
	return b, nil
}

// Clone creates an independent copy of the Board.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	clone := *b
	clone.cells = append([]Cell(nil), b.cells...)
	clone.rowMasks = append([]uint(nil), b.rowMasks...)
	clone.colMasks = append([]uint(nil), b.colMasks...)
	clone.boxMasks = append([]uint(nil), b.boxMasks...)
	return &clone
}

// Size returns the board's side length.
func (b *Board) Size() int { return b.size }

// Cells returns the total number of cells on the board.
func (b *Board) Cells() int { return b.size * b.size }

// Shape returns the board's box tiling.
func (b *Board) Shape() Shape { return b.shape }

// Pos transforms a row and column into a linear position.
// Returns -1 if row and/or col are out of bounds.
func (b *Board) Pos(row, col int) int {
	if row < 0 || row >= b.size || col < 0 || col >= b.size {
		return -1
	}
	return row*b.size + col
}

// RowCol transforms a linear position into its row and column.
func (b *Board) RowCol(pos int) (row, col int) {
	return pos / b.size, pos % b.size
}

// box returns the box index containing pos. The box origin is
// row - row%BoxRows, col - col%BoxCols; boxes are numbered row-major.
func (b *Board) box(pos int) int {
	row, col := b.RowCol(pos)
	return (row/b.shape.BoxRows)*(b.size/b.shape.BoxCols) + col/b.shape.BoxCols
}

// Set attempts to place a value 1..size at the given position.
// Returns an error if the placement violates the puzzle rules or the
// parameters are invalid.
func (b *Board) Set(pos int, val Cell) error {
	if err := b.validatePosition(pos); err != nil {
		return err
	}
	if err := b.validateValue(val); err != nil {
		return err
	}
	if val == Blank {
		return b.Clear(pos)
	}
	if b.cells[pos] != Blank {
		b.Clear(pos)
	}

	row, col, box := pos/b.size, pos%b.size, b.box(pos)
	mask := uint(1) << (val - 1)

	if b.rowMasks[row]&mask != 0 {
		return fmt.Errorf("%w: value %d already in row %d", ErrIllegalMove, val, row)
	}
	if b.colMasks[col]&mask != 0 {
		return fmt.Errorf("%w: value %d already in column %d", ErrIllegalMove, val, col)
	}
	if b.boxMasks[box]&mask != 0 {
		return fmt.Errorf("%w: value %d already in box %d", ErrIllegalMove, val, box)
	}

	// Modify the board only once we know it's legal to do so
	b.cells[pos] = val
	b.rowMasks[row] |= mask
	b.colMasks[col] |= mask
	b.boxMasks[box] |= mask
	b.emptyCount--

	return nil
}

// SetForce places a value without validation checks.
// Use only when certain the move is valid.
func (b *Board) SetForce(pos int, val Cell) {
	row, col, box := pos/b.size, pos%b.size, b.box(pos)
	mask := uint(1) << (val - 1)

	b.cells[pos] = val
	b.rowMasks[row] |= mask
	b.colMasks[col] |= mask
	b.boxMasks[box] |= mask
	b.emptyCount--
}

// Clear removes the value at the given position.
// Returns an error if the position is invalid.
// No harm is done calling Clear on an already blank cell.
func (b *Board) Clear(pos int) error {
	if err := b.validatePosition(pos); err != nil {
		return err
	}

	val := b.cells[pos]
	if val == Blank {
		return nil
	}

	row, col, box := pos/b.size, pos%b.size, b.box(pos)
	mask := uint(1) << (val - 1)

	b.cells[pos] = Blank
	b.rowMasks[row] &^= mask
	b.colMasks[col] &^= mask
	b.boxMasks[box] &^= mask
	b.emptyCount++

	return nil
}

// Get returns the value at the given position.
// Returns Blank for out-of-bounds positions.
func (b *Board) Get(pos int) Cell {
	if !b.isValidPosition(pos) {
		return Blank
	}
	return b.cells[pos]
}

// IsLegal reports whether placing val at the given blank position
// would keep the board consistent. This is the single rule-legality
// predicate; every search routine goes through it (or the equivalent
// CandidatesMask) rather than re-deriving row/col/box checks.
func (b *Board) IsLegal(pos int, val Cell) bool {
	if !b.isValidPosition(pos) || val < 1 || int(val) > b.size {
		return false
	}
	mask := uint(1) << (val - 1)
	return b.rowMasks[pos/b.size]&mask == 0 &&
		b.colMasks[pos%b.size]&mask == 0 &&
		b.boxMasks[b.box(pos)]&mask == 0
}

// CandidatesMask returns the bitmask of legal values for a position.
// A returned 0 indicates an unsolvable board or an invalid position.
func (b *Board) CandidatesMask(pos int) uint {
	if !b.isValidPosition(pos) {
		return 0
	}
	return b.allMask &^ b.rowMasks[pos/b.size] &^ b.colMasks[pos%b.size] &^ b.boxMasks[b.box(pos)]
}

// Candidates returns a slice of legal values 1..size for a position.
// An empty slice indicates an unsolvable board or an invalid position.
func (b *Board) Candidates(pos int) []Cell {
	mask := b.CandidatesMask(pos)
	candidates := make([]Cell, 0, b.size)
	for v := 1; v <= b.size; v++ {
		if mask&(uint(1)<<(v-1)) != 0 {
			candidates = append(candidates, Cell(v))
		}
	}
	return candidates
}

// EmptyCount returns the number of blank cells on the board.
func (b *Board) EmptyCount() int { return b.emptyCount }

// ClueCount returns the number of filled cells on the board.
func (b *Board) ClueCount() int { return b.Cells() - b.emptyCount }

// String returns the board as a size*size character string.
// Blank cells are represented as '.', filled cells as '1'..'9'.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.Cells())
	for _, cell := range b.cells {
		if cell == Blank {
			sb.WriteByte('.')
		} else {
			sb.WriteByte('0' + byte(cell))
		}
	}
	return sb.String()
}

// Format returns a human-readable board representation with box rules.
func (b *Board) Format() string {
	var sb strings.Builder

	segment := strings.Repeat("-", 2*b.shape.BoxCols+1)
	segments := make([]string, b.size/b.shape.BoxCols)
	for i := range segments {
		segments[i] = segment
	}
	line := "+" + strings.Join(segments, "+") + "+\n"

	sb.WriteString(line)
	for row := 0; row < b.size; row++ {
		sb.WriteString("| ")
		for col := 0; col < b.size; col++ {
			val := b.Get(b.Pos(row, col))
			if val == Blank {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(val))
			}
			sb.WriteByte(' ')

			if (col+1)%b.shape.BoxCols == 0 {
				sb.WriteString("| ")
			}
		}
		sb.WriteString("\n")

		if (row+1)%b.shape.BoxRows == 0 {
			sb.WriteString(line)
		}
	}
	return sb.String()
}
